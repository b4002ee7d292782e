package sheetrange

import "fmt"

const alphabetLength = 26

// ColumnLetters converts a zero-indexed column number to its A1-notation
// letters: 0 -> A, 25 -> Z, 26 -> AA, 51 -> AZ, 52 -> BA.
func ColumnLetters(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("%w: column index %d must not be negative", ErrInvalidArgument, index)
	}
	return columnLetters(index), nil
}

// columnLetters assumes index >= 0. The numbering is bijective base-26:
// there is no letter for zero, so each step down divides out the digit just
// emitted before shifting by one.
func columnLetters(index int) string {
	remainder := index % alphabetLength
	letters := string(rune('A' + remainder))
	for index-remainder > 0 {
		index = (index-remainder)/alphabetLength - 1
		remainder = index % alphabetLength
		letters = string(rune('A'+remainder)) + letters
	}
	return letters
}

// ColumnNumber converts A1-notation column letters to a 1-indexed column
// number: A -> 1, Z -> 26, AA -> 27. Note the off-by-one relative to
// ColumnLetters: subtract one from the result to round-trip.
func ColumnNumber(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("%w: column letters must not be empty", ErrInvalidArgument)
	}
	for _, c := range letters {
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: column letters %q must be A-Z only", ErrInvalidArgument, letters)
		}
	}
	return columnNumber(letters), nil
}

// columnNumber assumes letters is non-empty and A-Z only.
func columnNumber(letters string) int {
	n := 0
	for _, c := range letters {
		n = n*alphabetLength + int(c-'A') + 1
	}
	return n
}
