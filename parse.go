package sheetrange

import (
	"fmt"
	"regexp"
)

// notationRe captures the structural parts of a notation string: the sheet
// name (plain or quoted), then optionally "!" and one or two A1 coordinate
// tokens separated by ":". It is deliberately over-generous — invalid token
// combinations it admits are rejected by the edge-case checks below.
//
// Quoted names may contain any printable ASCII except a bare single quote;
// embedded quotes are doubled.
var notationRe = regexp.MustCompile(
	`^([A-Za-z0-9]{1,99}|'(?:''|[\x20-\x26\x28-\x7E]){1,99}')` +
		`(?:!([A-Z]*)([0-9]*)(?:(:)([A-Z]*)([0-9]*))?)?$`)

// ForRange parses a notation string into a Range. Accepted forms are those
// Notation produces: "Sheet1", "Sheet1!A1", "Sheet1!A1:C10", "Sheet1!A:C",
// "Sheet1!2:6", "Sheet1!A4:C", "'My Sheet'!B2:6". Start and end are
// reordered per axis where necessary, so "Sheet1!D:C" parses as "Sheet1!C:D".
func ForRange(notation string) *Range {
	r := new(Range)
	if notation == "" {
		r.err = fmt.Errorf("%w: notation string is empty", ErrMissingInput)
		return r
	}
	m := notationRe.FindStringSubmatch(notation)
	if m == nil {
		r.err = fmt.Errorf("%w: %q is not a valid range", ErrInvalidArgument, notation)
		return r
	}

	coords := rawCoords{
		startColumn: parseColumnToken(m[2]),
		endColumn:   parseColumnToken(m[5]),
	}
	var err error
	if coords.startRow, err = parseRowToken(m[3]); err != nil {
		r.err = err
		return r
	}
	if coords.endRow, err = parseRowToken(m[6]); err != nil {
		r.err = err
		return r
	}
	if err := coords.checkEdgeCases(m[4] == ":"); err != nil {
		r.err = err
		return r
	}
	coords.order()

	r.WithSheetName(unescapeSheetName(m[1]))
	if coords.startColumn != nil {
		r.WithStartColumn(*coords.startColumn - 1)
	}
	if coords.startRow != nil {
		r.WithStartRow(*coords.startRow - 1)
	}
	if coords.endColumn != nil {
		r.WithEndColumn(*coords.endColumn - 1)
	}
	if coords.endRow != nil {
		r.WithEndRow(*coords.endRow - 1)
	}
	return r
}

// rawCoords carries the four coordinate tokens extracted from a notation
// string, 1-indexed. nil means the token was not present in the input,
// which is distinct from any legitimate value.
type rawCoords struct {
	startColumn, startRow, endColumn, endRow *int
}

func (c *rawCoords) specified() int {
	n := 0
	for _, v := range []*int{c.startColumn, c.startRow, c.endColumn, c.endRow} {
		if v != nil {
			n++
		}
	}
	return n
}

// checkEdgeCases applies the parser's validity rules before any value
// reaches the model:
//
//  1. a colon with no second coordinate at all ("Sheet1!A1:") is invalid
//  2. a lone row or column specifier ("Sheet1!C") is invalid
//  3. a bare column paired with a bare row ("Sheet1!A:5", "Sheet1!5:A")
//     is invalid
//  4. a single fully-specified cell ("Sheet1!C5") is a bounded 1x1 range,
//     so the end tokens are synthesized equal to the start tokens
func (c *rawCoords) checkEdgeCases(hasColon bool) error {
	if hasColon && c.endColumn == nil && c.endRow == nil {
		return fmt.Errorf("%w: colon in range but no second coordinate specified", ErrInvalidArgument)
	}
	if c.specified() == 1 {
		return fmt.Errorf("%w: a lone row or column specifier is not a valid range", ErrInvalidArgument)
	}
	if (c.startColumn != nil && c.startRow == nil && c.endColumn == nil && c.endRow != nil) ||
		(c.startColumn == nil && c.startRow != nil && c.endColumn != nil && c.endRow == nil) {
		return fmt.Errorf("%w: a range cannot pair a bare column with a bare row", ErrInvalidArgument)
	}
	if c.startColumn != nil && c.startRow != nil && c.endColumn == nil && c.endRow == nil {
		c.endColumn = intp(*c.startColumn)
		c.endRow = intp(*c.startRow)
	}
	return nil
}

// order restores start <= end per axis. A specified end with no start on
// that axis becomes the start, which is how "Sheet1!B:D4" normalizes to
// "Sheet1!B4:D".
func (c *rawCoords) order() {
	if c.endColumn != nil && (c.startColumn == nil || *c.endColumn < *c.startColumn) {
		c.startColumn, c.endColumn = c.endColumn, c.startColumn
	}
	if c.endRow != nil && (c.startRow == nil || *c.endRow < *c.startRow) {
		c.startRow, c.endRow = c.endRow, c.startRow
	}
}

// parseColumnToken converts a column-letters token to its 1-indexed number;
// an empty token means the column was not specified.
func parseColumnToken(letters string) *int {
	if letters == "" {
		return nil
	}
	return intp(columnNumber(letters))
}

// parseRowToken converts a row-digits token, 1-indexed; row 0 is always a
// parse error. An empty token means the row was not specified.
func parseRowToken(digits string) (*int, error) {
	if digits == "" {
		return nil, nil
	}
	row, err := parseRowNumber(digits)
	if err != nil {
		return nil, err
	}
	return intp(row), nil
}
