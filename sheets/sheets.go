// Package sheets holds the record shapes this library exchanges with the
// Google Sheets API. The API is not called from here; these types exist so
// the conversion core can read and write the same fields the wire form
// carries. Optional members are pointers, keeping "absent" distinct from a
// legitimate zero index.
package sheets

// Sheet describes a sheet within a spreadsheet.
type Sheet struct {
	Title string `json:"title"`
	ID    int64  `json:"id"`
}

// GridRange is a rectangular region on a sheet. Start indexes are
// inclusive and end indexes exclusive, per the Sheets API convention. A nil
// index leaves that side of the range unbounded.
type GridRange struct {
	SheetID          *int64 `json:"sheetId,omitempty"`
	StartColumnIndex *int   `json:"startColumnIndex,omitempty"`
	EndColumnIndex   *int   `json:"endColumnIndex,omitempty"`
	StartRowIndex    *int   `json:"startRowIndex,omitempty"`
	EndRowIndex      *int   `json:"endRowIndex,omitempty"`
}

// GridCoordinate is a single cell position on a sheet, zero-indexed.
type GridCoordinate struct {
	SheetID     *int64 `json:"sheetId,omitempty"`
	ColumnIndex *int   `json:"columnIndex,omitempty"`
	RowIndex    *int   `json:"rowIndex,omitempty"`
}

// Int returns a pointer to v, for populating optional index fields inline.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v, for populating optional id fields inline.
func Int64(v int64) *int64 { return &v }
