// Package sheetrange converts between representations of a rectangular cell
// region in a Google Sheets spreadsheet: A1 notation strings such as
// "Sheet1!A1:C10", the Sheets API GridRange and GridCoordinate record
// shapes, and a mutable bounds model supporting small geometric edits
// (resize, shift, extend).
//
// A Range is built from one of the For... entry points, mutated through a
// chain of With.../Clear.../Expand.../Translate calls, and finished with an
// exporter:
//
//	s, err := sheetrange.ForSheetName("Test").
//		WithStartCell("A1").
//		WithEndCell("C5").
//		Notation() // "Test!A1:C5"
//
// Mutators never fail mid-chain: the first failure is latched on the Range,
// later mutators become no-ops, and the exporter (or Err) reports it. Every
// failure wraps one of ErrInvalidArgument, ErrInvalidState or
// ErrMissingInput, so callers can discriminate with errors.Is.
//
// A Range is a short-lived builder with no internal locking; it must not be
// shared between goroutines without external synchronization.
package sheetrange
