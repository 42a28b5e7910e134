package postgres

import (
	"strings"
)

// percentEscapes maps every reserved character to its uppercase percent escape
// (https://en.wikipedia.org/wiki/Percent-encoding#Reserved_characters).
// `%` itself is not part of the reserved set, so a literal `%` in a value is
// passed through as-is.
var percentEscapes = map[rune]string{
	'!':  "%21",
	'#':  "%23",
	'$':  "%24",
	'&':  "%26",
	'\'': "%27",
	'(':  "%28",
	')':  "%29",
	'*':  "%2A",
	'+':  "%2B",
	',':  "%2C",
	'/':  "%2F",
	':':  "%3A",
	';':  "%3B",
	'=':  "%3D",
	'?':  "%3F",
	'@':  "%40",
	'[':  "%5B",
	']':  "%5D",
}

// percentEncode replaces reserved characters with their percent encoded versions.
// All other characters, including non-ASCII and control characters, are written
// out unchanged.
func percentEncode(s string) string {
	var encoded strings.Builder
	for _, chr := range s {
		if escape, found := percentEscapes[chr]; found {
			encoded.WriteString(escape)
		} else {
			encoded.WriteRune(chr)
		}
	}
	return encoded.String()
}
