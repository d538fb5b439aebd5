// backend/src/security/validation/sanitizers.go
package validation

import (
	"strings"
	"unicode"
)

// StripUnprintable removes non-printable characters, allowing common whitespace
// like space, tab, newline, and carriage return. Applied to client-supplied
// text before it reaches logs or responses.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1 // Drop the rune
	}, s)
}
