package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SanitizeTerminal strips escape sequences and control characters from
// text received from the backend or typed by the user, keeping newlines and
// tabs. The result prints as inert text.
func SanitizeTerminal(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		case r >= 0x80 && r <= 0x9f:
			return -1
		}
		return r
	}, s)
}
