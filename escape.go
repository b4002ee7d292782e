package sheetrange

import (
	"regexp"
	"strings"
)

var plainSheetNameRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// escapeSheetName prepares a sheet name for use in a notation string.
// Purely alphanumeric names pass through unchanged; anything else is
// wrapped in single quotes with embedded quotes doubled, so "Today's data"
// becomes "'Today''s data'".
func escapeSheetName(name string) string {
	if plainSheetNameRe.MatchString(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// unescapeSheetName reverses escapeSheetName for a sheet-name token taken
// from a notation string. Unquoted tokens are returned unchanged.
func unescapeSheetName(token string) string {
	if len(token) >= 2 && strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'") {
		return strings.ReplaceAll(token[1:len(token)-1], "''", "'")
	}
	return token
}
