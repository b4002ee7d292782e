package sheetrange

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/witanlabs/sheetrange/sheets"
)

// Sheet names may be 1 to 99 characters; the Sheets UI enforces the same
// upper bound.
const sheetNameMaxLength = 100

var cellTokenRe = regexp.MustCompile(`^([A-Z]*)([0-9]*)$`)

// Range is a mutable bounds model for a rectangular cell region: an
// optional sheet name and id plus up to four optional zero-indexed bounds,
// both ends inclusive. The zero value has everything unset, which is a
// valid model meaning "the whole sheet" once a name is supplied.
//
// Mutators record the first failure and turn later calls into no-ops, so a
// chain reads straight through; exporters and Err surface the failure. A
// failed mutator leaves the model exactly as it was.
type Range struct {
	sheetName   string
	sheetID     *int64
	startColumn *int
	endColumn   *int
	startRow    *int
	endRow      *int

	err error
}

// ForSheetName starts a range covering the whole of the named sheet.
func ForSheetName(name string) *Range {
	return new(Range).WithSheetName(name)
}

// ForSheet starts a range from a Sheet record, carrying over its title and
// id. A nil record is a missing-input error.
func ForSheet(sheet *sheets.Sheet) *Range {
	r := new(Range)
	if sheet == nil {
		r.err = fmt.Errorf("%w: sheet record is nil", ErrMissingInput)
		return r
	}
	return r.WithSheetName(sheet.Title).WithSheetID(sheet.ID)
}

// ForGridRange starts a range from a GridRange record. The record's
// exclusive end indexes become inclusive bounds. Absent fields stay unset:
// an absent end index leaves that axis unbounded, and an end index present
// without its start index fails the way WithEndColumn/WithEndRow do.
func ForGridRange(gr *sheets.GridRange) *Range {
	r := new(Range)
	if gr == nil {
		r.err = fmt.Errorf("%w: grid range record is nil", ErrMissingInput)
		return r
	}
	if gr.SheetID != nil {
		r.WithSheetID(*gr.SheetID)
	}
	if gr.StartColumnIndex != nil {
		r.WithStartColumn(*gr.StartColumnIndex)
	}
	if gr.StartRowIndex != nil {
		r.WithStartRow(*gr.StartRowIndex)
	}
	if gr.EndColumnIndex != nil {
		r.WithEndColumn(*gr.EndColumnIndex - 1)
	}
	if gr.EndRowIndex != nil {
		r.WithEndRow(*gr.EndRowIndex - 1)
	}
	return r
}

// ForStartGridCoordinate starts a range anchored at the given coordinate.
// Only the start column and row are seeded; pair with WithWidth/WithHeight
// or the WithEnd... mutators to bound it.
func ForStartGridCoordinate(gc *sheets.GridCoordinate) *Range {
	r := new(Range)
	if gc == nil {
		r.err = fmt.Errorf("%w: grid coordinate record is nil", ErrMissingInput)
		return r
	}
	if gc.SheetID != nil {
		r.WithSheetID(*gc.SheetID)
	}
	if gc.ColumnIndex != nil {
		r.WithStartColumn(*gc.ColumnIndex)
	}
	if gc.RowIndex != nil {
		r.WithStartRow(*gc.RowIndex)
	}
	return r
}

// SheetName reports the sheet name, or "" when unset.
func (r *Range) SheetName() string { return r.sheetName }

// SheetID reports the sheet id and whether one has been set.
func (r *Range) SheetID() (int64, bool) {
	if r.sheetID == nil {
		return 0, false
	}
	return *r.sheetID, true
}

// Err reports the first failure latched by a mutator, if any.
func (r *Range) Err() error { return r.err }

// WithSheetName sets or overwrites the sheet name.
func (r *Range) WithSheetName(name string) *Range {
	if r.err != nil {
		return r
	}
	if len(name) == 0 || len(name) >= sheetNameMaxLength {
		r.err = fmt.Errorf("%w: sheet name must be between 1 and %d characters", ErrInvalidArgument, sheetNameMaxLength-1)
		return r
	}
	r.sheetName = name
	return r
}

// WithSheetID sets or overwrites the sheet id.
func (r *Range) WithSheetID(id int64) *Range {
	if r.err != nil {
		return r
	}
	if id < 0 {
		r.err = fmt.Errorf("%w: sheet id must not be negative", ErrInvalidArgument)
		return r
	}
	r.sheetID = &id
	return r
}

// WithStartColumn sets the zero-indexed start column, swapping it with the
// end column if the bounds end up inverted.
func (r *Range) WithStartColumn(column int) *Range {
	if r.err != nil {
		return r
	}
	if column < 0 {
		r.err = fmt.Errorf("%w: start column must not be negative", ErrInvalidArgument)
		return r
	}
	r.startColumn = intp(column)
	r.orderBounds()
	return r
}

// WithStartRow sets the zero-indexed start row, swapping it with the end
// row if the bounds end up inverted.
func (r *Range) WithStartRow(row int) *Range {
	if r.err != nil {
		return r
	}
	if row < 0 {
		r.err = fmt.Errorf("%w: start row must not be negative", ErrInvalidArgument)
		return r
	}
	r.startRow = intp(row)
	r.orderBounds()
	return r
}

// WithEndColumn sets the zero-indexed inclusive end column. The start
// column must already be present.
func (r *Range) WithEndColumn(column int) *Range {
	if r.err != nil {
		return r
	}
	if column < 0 {
		r.err = fmt.Errorf("%w: end column must not be negative", ErrInvalidArgument)
		return r
	}
	if r.startColumn == nil {
		r.err = fmt.Errorf("%w: cannot set end column where start column not set", ErrInvalidState)
		return r
	}
	r.endColumn = intp(column)
	r.orderBounds()
	return r
}

// WithEndRow sets the zero-indexed inclusive end row. The start row must
// already be present.
func (r *Range) WithEndRow(row int) *Range {
	if r.err != nil {
		return r
	}
	if row < 0 {
		r.err = fmt.Errorf("%w: end row must not be negative", ErrInvalidArgument)
		return r
	}
	if r.startRow == nil {
		r.err = fmt.Errorf("%w: cannot set end row where start row not set", ErrInvalidState)
		return r
	}
	r.endRow = intp(row)
	r.orderBounds()
	return r
}

// WithStartCell sets the start column and/or row from a single A1 cell
// token such as "C5", "C" or "5". At least one of the letter and digit
// parts must be present; the digit part is 1-indexed.
func (r *Range) WithStartCell(a1Cell string) *Range {
	if r.err != nil {
		return r
	}
	letters, digits, err := splitCellToken(a1Cell)
	if err != nil {
		r.err = err
		return r
	}
	var row int
	if digits != "" {
		if row, err = parseRowNumber(digits); err != nil {
			r.err = err
			return r
		}
	}
	if letters != "" {
		r.startColumn = intp(columnNumber(letters) - 1)
	}
	if digits != "" {
		r.startRow = intp(row - 1)
	}
	r.orderBounds()
	return r
}

// WithEndCell sets the end column and/or row from a single A1 cell token.
// Each part it supplies requires the matching start bound to be present
// already.
func (r *Range) WithEndCell(a1Cell string) *Range {
	if r.err != nil {
		return r
	}
	letters, digits, err := splitCellToken(a1Cell)
	if err != nil {
		r.err = err
		return r
	}
	if letters != "" && r.startColumn == nil {
		r.err = fmt.Errorf("%w: cannot set end column where start column not set", ErrInvalidState)
		return r
	}
	var row int
	if digits != "" {
		if row, err = parseRowNumber(digits); err != nil {
			r.err = err
			return r
		}
		if r.startRow == nil {
			r.err = fmt.Errorf("%w: cannot set end row where start row not set", ErrInvalidState)
			return r
		}
	}
	if letters != "" {
		r.endColumn = intp(columnNumber(letters) - 1)
	}
	if digits != "" {
		r.endRow = intp(row - 1)
	}
	r.orderBounds()
	return r
}

// WithWidth bounds the range at width columns from the anchored start
// column, so a start column of A with width 3 ends at column C.
func (r *Range) WithWidth(width int) *Range {
	if r.err != nil {
		return r
	}
	if width <= 0 {
		r.err = fmt.Errorf("%w: width must be positive", ErrInvalidArgument)
		return r
	}
	if r.startColumn == nil {
		r.err = fmt.Errorf("%w: cannot set width where start column not set", ErrInvalidState)
		return r
	}
	r.endColumn = intp(*r.startColumn + width - 1)
	return r
}

// WithHeight bounds the range at height rows from the anchored start row.
func (r *Range) WithHeight(height int) *Range {
	if r.err != nil {
		return r
	}
	if height <= 0 {
		r.err = fmt.Errorf("%w: height must be positive", ErrInvalidArgument)
		return r
	}
	if r.startRow == nil {
		r.err = fmt.Errorf("%w: cannot set height where start row not set", ErrInvalidState)
		return r
	}
	r.endRow = intp(*r.startRow + height - 1)
	return r
}

// ClearStartColumn unsets the start column. The end column must be cleared
// first.
func (r *Range) ClearStartColumn() *Range {
	if r.err != nil {
		return r
	}
	if r.endColumn != nil {
		r.err = fmt.Errorf("%w: cannot clear start column while end column still set", ErrInvalidState)
		return r
	}
	r.startColumn = nil
	return r
}

// ClearStartRow unsets the start row. The end row must be cleared first.
func (r *Range) ClearStartRow() *Range {
	if r.err != nil {
		return r
	}
	if r.endRow != nil {
		r.err = fmt.Errorf("%w: cannot clear start row while end row still set", ErrInvalidState)
		return r
	}
	r.startRow = nil
	return r
}

// ClearEndColumn unsets the end column, leaving the column axis anchored at
// its start.
func (r *Range) ClearEndColumn() *Range {
	if r.err != nil {
		return r
	}
	r.endColumn = nil
	return r
}

// ClearEndRow unsets the end row, leaving the row axis anchored at its
// start.
func (r *Range) ClearEndRow() *Range {
	if r.err != nil {
		return r
	}
	r.endRow = nil
	return r
}

// ExpandColumns widens the range by extra columns. Both column bounds must
// be present; only the end bound moves.
func (r *Range) ExpandColumns(extra int) *Range {
	if r.err != nil {
		return r
	}
	if extra <= 0 {
		r.err = fmt.Errorf("%w: expand amount must be positive", ErrInvalidArgument)
		return r
	}
	if r.startColumn == nil || r.endColumn == nil {
		r.err = fmt.Errorf("%w: cannot expand columns where bounds are not set", ErrInvalidState)
		return r
	}
	r.endColumn = intp(*r.endColumn + extra)
	return r
}

// ExpandRows lengthens the range by extra rows. Both row bounds must be
// present; only the end bound moves.
func (r *Range) ExpandRows(extra int) *Range {
	if r.err != nil {
		return r
	}
	if extra <= 0 {
		r.err = fmt.Errorf("%w: expand amount must be positive", ErrInvalidArgument)
		return r
	}
	if r.startRow == nil || r.endRow == nil {
		r.err = fmt.Errorf("%w: cannot expand rows where bounds are not set", ErrInvalidState)
		return r
	}
	r.endRow = intp(*r.endRow + extra)
	return r
}

// Translate shifts the range by deltaX columns and deltaY rows. Each
// non-zero delta requires its start bound to be present and to stay
// non-negative; both checks happen before either axis moves.
func (r *Range) Translate(deltaX, deltaY int) *Range {
	if r.err != nil {
		return r
	}
	if deltaX != 0 {
		if r.startColumn == nil {
			r.err = fmt.Errorf("%w: cannot translate range where start column not set", ErrInvalidState)
			return r
		}
		if *r.startColumn+deltaX < 0 {
			r.err = fmt.Errorf("%w: cannot translate to before column 0", ErrInvalidArgument)
			return r
		}
	}
	if deltaY != 0 {
		if r.startRow == nil {
			r.err = fmt.Errorf("%w: cannot translate range where start row not set", ErrInvalidState)
			return r
		}
		if *r.startRow+deltaY < 0 {
			r.err = fmt.Errorf("%w: cannot translate to before row 0", ErrInvalidArgument)
			return r
		}
	}
	if deltaX != 0 {
		r.startColumn = intp(*r.startColumn + deltaX)
		if r.endColumn != nil {
			r.endColumn = intp(*r.endColumn + deltaX)
		}
	}
	if deltaY != 0 {
		r.startRow = intp(*r.startRow + deltaY)
		if r.endRow != nil {
			r.endRow = intp(*r.endRow + deltaY)
		}
	}
	return r
}

// orderBounds restores start <= end on each axis where both bounds are
// present, by swapping rather than rejecting.
func (r *Range) orderBounds() {
	if r.startColumn != nil && r.endColumn != nil && *r.endColumn < *r.startColumn {
		r.startColumn, r.endColumn = r.endColumn, r.startColumn
	}
	if r.startRow != nil && r.endRow != nil && *r.endRow < *r.startRow {
		r.startRow, r.endRow = r.endRow, r.startRow
	}
}

// splitCellToken breaks an A1 cell token into its letter and digit parts.
// The token must be exactly (letters)(digits) with at least one part
// present.
func splitCellToken(a1Cell string) (letters, digits string, err error) {
	if a1Cell == "" {
		return "", "", fmt.Errorf("%w: cell must not be empty", ErrInvalidArgument)
	}
	m := cellTokenRe.FindStringSubmatch(a1Cell)
	if m == nil {
		return "", "", fmt.Errorf("%w: illegal cell format %q", ErrInvalidArgument, a1Cell)
	}
	return m[1], m[2], nil
}

// parseRowNumber converts a 1-indexed row digit string, rejecting zero.
func parseRowNumber(digits string) (int, error) {
	row, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: row %q is not a valid number", ErrInvalidArgument, digits)
	}
	if row <= 0 {
		return 0, fmt.Errorf("%w: row must be a positive integer", ErrInvalidArgument)
	}
	return row, nil
}

func intp(v int) *int { return &v }
