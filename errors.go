package sheetrange

import "errors"

// ErrInvalidArgument indicates a supplied value violates a stateless
// precondition: an empty or over-long sheet name, a non-positive width or
// expand amount, a malformed cell token, a row number below 1, or a
// notation string the grammar rejects.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidState indicates an operation was applied in an order the model
// does not allow: setting an end bound with no start bound, clearing a
// start bound while its end bound remains, expanding or translating an axis
// with no anchor, or exporting an unsupported combination of bounds.
var ErrInvalidState = errors.New("invalid state")

// ErrMissingInput indicates a required argument was absent entirely (a nil
// record or an empty notation string), as opposed to present but malformed.
var ErrMissingInput = errors.New("missing required input")
