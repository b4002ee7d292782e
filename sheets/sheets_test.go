package sheets

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The records exist to mirror the Sheets API wire form, so the JSON field
// names and the absent-vs-zero distinction are the contract under test.
func TestGridRangeWireForm(t *testing.T) {
	t.Run("absent fields are omitted", func(t *testing.T) {
		data, err := sonic.Marshal(&GridRange{
			StartColumnIndex: Int(0),
			EndColumnIndex:   Int(10),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"startColumnIndex":0,"endColumnIndex":10}`, string(data))
	})

	t.Run("zero indexes survive a round trip", func(t *testing.T) {
		wire := `{"sheetId":0,"startColumnIndex":0,"startRowIndex":0,"endColumnIndex":5,"endRowIndex":5}`
		var gr GridRange
		require.NoError(t, sonic.Unmarshal([]byte(wire), &gr))
		require.NotNil(t, gr.SheetID)
		assert.Equal(t, int64(0), *gr.SheetID)
		assert.Equal(t, 0, *gr.StartColumnIndex)
		assert.Equal(t, 5, *gr.EndRowIndex)

		data, err := sonic.Marshal(&gr)
		require.NoError(t, err)
		assert.JSONEq(t, wire, string(data))
	})

	t.Run("unbounded range stays unbounded", func(t *testing.T) {
		var gr GridRange
		require.NoError(t, sonic.Unmarshal([]byte(`{"sheetId":2}`), &gr))
		assert.Nil(t, gr.StartColumnIndex)
		assert.Nil(t, gr.EndColumnIndex)
		assert.Nil(t, gr.StartRowIndex)
		assert.Nil(t, gr.EndRowIndex)
	})
}

func TestGridCoordinateWireForm(t *testing.T) {
	var gc GridCoordinate
	require.NoError(t, sonic.Unmarshal([]byte(`{"sheetId":1,"columnIndex":3,"rowIndex":0}`), &gc))
	assert.Equal(t, int64(1), *gc.SheetID)
	assert.Equal(t, 3, *gc.ColumnIndex)
	assert.Equal(t, 0, *gc.RowIndex)

	data, err := sonic.Marshal(&GridCoordinate{ColumnIndex: Int(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"columnIndex":3}`, string(data))
}
