package sqlserver

import (
	"fmt"
	"strings"
	"unicode"
)

// quoteValue uses proper quoting for values in a semicolon delimited connection string.
//
// Quotation marks are only added when the value contains a Unicode control
// character, a semicolon, or leading/trailing space. Double quotation marks are
// preferred; when the value itself contains double quotation marks, single
// quotation marks are used instead, and when both kinds are present every
// double quotation mark is doubled and the result is enclosed in double
// quotation marks.
func quoteValue(s string) string {
	quotesNeeded := strings.ContainsFunc(s, unicode.IsControl) ||
		strings.HasPrefix(s, " ") ||
		strings.HasSuffix(s, " ") ||
		strings.Contains(s, ";")
	if !quotesNeeded {
		return s
	}

	if !strings.Contains(s, "\"") {
		return fmt.Sprintf("\"%s\"", s)
	}

	if !strings.Contains(s, "'") {
		return fmt.Sprintf("'%s'", s)
	}

	return fmt.Sprintf("\"%s\"", strings.ReplaceAll(s, "\"", "\"\""))
}
