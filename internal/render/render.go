package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Samit-B/school-management/internal/models"
)

// Markdown renders markdown content for terminal display.
// Uses a pooled renderer for better performance and thread safety.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}

// Turn renders a transcript turn as "Sender: body" for the terminal.
// Successful bot answers go through markdown when markdown is true; every
// other body prints as sanitized plain text in the turn's style.
func Turn(turn models.Turn, theme TUITheme, opts Options, markdown bool) string {
	style := TurnStyle(theme, turn.Style())
	label := style.Bold(true).Render(string(turn.Sender) + ":")
	body := SanitizeTerminal(turn.Body)

	if markdown && turn.Sender == models.SenderBot && !turn.IsError {
		if out, err := Markdown(body, opts); err == nil {
			return label + "\n" + strings.Trim(out, "\n")
		}
	}

	return label + " " + style.Render(body)
}

// Plain renders a turn without any styling, for pipes and scripts.
func Plain(turn models.Turn) string {
	return string(turn.Sender) + ": " + SanitizeTerminal(turn.Body)
}

// TurnStyle maps a turn class onto the theme colors.
func TurnStyle(theme TUITheme, class models.Style) lipgloss.Style {
	switch class {
	case models.StyleUser:
		return lipgloss.NewStyle().Foreground(theme.Primary)
	case models.StyleError:
		return lipgloss.NewStyle().Foreground(theme.Error)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text)
	}
}
