package sheetrange

import (
	"fmt"
	"strconv"

	"github.com/witanlabs/sheetrange/sheets"
)

// boundsShape is the exhaustive classification of bound combinations a
// notation string can express. Anything else is shapeInvalid.
type boundsShape int

const (
	// shapeInvalid is any bound combination a notation string cannot express.
	shapeInvalid boundsShape = iota
	// shapeUnbounded has no bounds at all: the whole sheet.
	shapeUnbounded
	// shapeBox has all four bounds, collapsing to a single cell when start
	// and end coincide.
	shapeBox
	// shapeColumnRange has both column bounds and no end row, with an
	// optional row anchor on the start, e.g. A:C or A4:C.
	shapeColumnRange
	// shapeRowRange has both row bounds and no end column, with an optional
	// column anchor on the start, e.g. 2:6 or B2:6.
	shapeRowRange
)

func (r *Range) shape() boundsShape {
	switch {
	case r.startColumn == nil && r.endColumn == nil && r.startRow == nil && r.endRow == nil:
		return shapeUnbounded
	case r.startColumn != nil && r.endColumn != nil && r.startRow != nil && r.endRow != nil:
		return shapeBox
	case r.startColumn != nil && r.endColumn != nil && r.endRow == nil:
		return shapeColumnRange
	case r.endColumn == nil && r.startRow != nil && r.endRow != nil:
		return shapeRowRange
	default:
		return shapeInvalid
	}
}

// Notation renders the model as an A1 notation string such as
// "Sheet1!A1:C10", "'My Sheet'!A4:C" or "Sheet1". The sheet name must be
// set, and the bounds must form one of the four expressible shapes: a full
// box, a column range (optionally row-anchored at the start), a row range
// (optionally column-anchored at the start), or no bounds at all.
func (r *Range) Notation() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.sheetName == "" {
		return "", fmt.Errorf("%w: sheet name is not set: cannot build a notation string", ErrInvalidState)
	}
	notation := escapeSheetName(r.sheetName)

	switch r.shape() {
	case shapeUnbounded:
		return notation, nil
	case shapeBox:
		start := columnLetters(*r.startColumn) + strconv.Itoa(*r.startRow+1)
		end := columnLetters(*r.endColumn) + strconv.Itoa(*r.endRow+1)
		if start == end {
			return notation + "!" + start, nil
		}
		return notation + "!" + start + ":" + end, nil
	case shapeColumnRange:
		startRow := ""
		if r.startRow != nil {
			startRow = strconv.Itoa(*r.startRow + 1)
		}
		return notation + "!" + columnLetters(*r.startColumn) + startRow + ":" + columnLetters(*r.endColumn), nil
	case shapeRowRange:
		startColumn := ""
		if r.startColumn != nil {
			startColumn = columnLetters(*r.startColumn)
		}
		return notation + "!" + startColumn + strconv.Itoa(*r.startRow+1) + ":" + strconv.Itoa(*r.endRow+1), nil
	default:
		return "", fmt.Errorf("%w: illegal combination of bounds set", ErrInvalidState)
	}
}

// GridRange exports the model as a GridRange record. End bounds are
// reported exclusive, per the Sheets API convention; unset fields stay nil.
func (r *Range) GridRange() (*sheets.GridRange, error) {
	if r.err != nil {
		return nil, r.err
	}
	gr := &sheets.GridRange{
		SheetID:          copyInt64(r.sheetID),
		StartColumnIndex: copyInt(r.startColumn),
		StartRowIndex:    copyInt(r.startRow),
	}
	if r.endColumn != nil {
		gr.EndColumnIndex = intp(*r.endColumn + 1)
	}
	if r.endRow != nil {
		gr.EndRowIndex = intp(*r.endRow + 1)
	}
	return gr, nil
}

// StartGridCoordinate exports the start cell as a GridCoordinate record,
// zero-indexed and inclusive; unset fields stay nil.
func (r *Range) StartGridCoordinate() (*sheets.GridCoordinate, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &sheets.GridCoordinate{
		SheetID:     copyInt64(r.sheetID),
		ColumnIndex: copyInt(r.startColumn),
		RowIndex:    copyInt(r.startRow),
	}, nil
}

// EndGridCoordinate exports the end cell as a GridCoordinate record,
// zero-indexed and inclusive; unset fields stay nil.
func (r *Range) EndGridCoordinate() (*sheets.GridCoordinate, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &sheets.GridCoordinate{
		SheetID:     copyInt64(r.sheetID),
		ColumnIndex: copyInt(r.endColumn),
		RowIndex:    copyInt(r.endRow),
	}, nil
}

// copyInt and copyInt64 detach exported records from the model, so mutating
// one cannot reach into the other.
func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
