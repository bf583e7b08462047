package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Samit-B/school-management/internal/elements"
	apierrors "github.com/Samit-B/school-management/internal/errors"
	"github.com/Samit-B/school-management/internal/models"
	"github.com/Samit-B/school-management/internal/render"
	"github.com/Samit-B/school-management/internal/widget"
)

// Gradient colors for animation
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#2563eb"), // Blue
	lipgloss.Color("#3b82f6"),
	lipgloss.Color("#60a5fa"),
	lipgloss.Color("#38bdf8"), // Sky
	lipgloss.Color("#22d3ee"),
	lipgloss.Color("#34d399"), // Green
}

var (
	colorText     = lipgloss.Color("#c0caf5")
	colorTextDim  = lipgloss.Color("#565f89")
	colorTextMute = lipgloss.Color("#3b4261")
	colorSuccess  = lipgloss.Color("#9ece6a")
	colorPrimary  = lipgloss.Color("#2563eb")
	colorError    = lipgloss.Color("#ef4444")
)

var (
	botLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	botBubbleStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Foreground(colorText).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)
)

// errRequestFailed is returned after the failure was already shown to the user
var errRequestFailed = errors.New("request failed")

// spinner handles the animated loading indicator
type spinner struct {
	out     io.Writer
	message string
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	frame   int
	stopped bool
}

// newSpinner creates a new animated spinner drawing on out
func newSpinner(out io.Writer, message string) *spinner {
	return &spinner{
		out:     out,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start begins the animation
func (s *spinner) start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		// Hide cursor
		fmt.Fprint(s.out, "\033[?25l")

		for {
			select {
			case <-s.stop:
				// Clear line and show cursor
				fmt.Fprint(s.out, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				s.mu.Lock()
				s.render()
				s.frame++
				s.mu.Unlock()
			}
		}
	}()
}

// render draws the current animation frame
func (s *spinner) render() {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

	spinColor := gradientColors[s.frame%len(gradientColors)]
	spinnerChar := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[s.frame%len(chars)])

	var dots strings.Builder
	numDots := (s.frame / 3) % 4
	for i := 0; i < 3; i++ {
		if i < numDots {
			dotColor := gradientColors[(s.frame+i)%len(gradientColors)]
			dots.WriteString(lipgloss.NewStyle().Foreground(dotColor).Render("●"))
		} else {
			dots.WriteString(lipgloss.NewStyle().Foreground(colorTextMute).Render("○"))
		}
	}

	msg := lipgloss.NewStyle().Foreground(colorText).Render(s.message)
	fmt.Fprintf(s.out, "\r\033[K%s %s %s", spinnerChar, msg, dots.String())
}

// stopOnce safely closes the stop channel only once
func (s *spinner) stopOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		close(s.stop)
		s.stopped = true
	}
}

// stopWithSuccess stops the spinner and shows success message
func (s *spinner) stopWithSuccess(message string) {
	s.stopOnce()
	<-s.done

	checkmark := lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Render("✓")
	msg := lipgloss.NewStyle().Foreground(colorSuccess).Render(message)
	fmt.Fprintf(s.out, "%s %s\n", checkmark, msg)
}

// stopWithError stops the spinner and shows error
func (s *spinner) stopWithError() {
	s.stopOnce()
	<-s.done
}

// busy runs fn behind a spinner when decorated is set
func busy(out io.Writer, decorated bool, message string, fn func() bool) {
	if !decorated {
		fn()
		return
	}

	spin := newSpinner(out, message)
	spin.start()
	if fn() {
		spin.stopWithSuccess("Done")
	} else {
		spin.stopWithError()
	}
}

// runQuery sends one message through a line widget and prints what it displays
func (o *rootOptions) runQuery(cmd *cobra.Command, message string) error {
	s, err := o.newSession(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatErrorMessage(err, "Invalid settings"))
		return err
	}

	input := elements.NewField(message)
	display := &elements.Line{}
	line, err := widget.NewLineWidget(input, display, s.client, widget.WithLogger(s.log))
	if err != nil {
		return err
	}

	decorated := !o.raw && o.deps.IsTTY()
	stderr := cmd.ErrOrStderr()

	var text string
	busy(stderr, decorated, "Asking the school assistant", func() bool {
		line.Send(cmd.Context())
		text = display.Text()
		return text != models.LineConnectError && text != models.LineNoResponse
	})

	switch text {
	case models.MsgEmptyLineInput:
		fmt.Fprintln(stderr, text)
		return apierrors.ErrEmptyMessage
	case models.LineConnectError:
		fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(colorError).Render(text))
		fmt.Fprintln(stderr, formatHint(fmt.Sprintf("Is the backend running at %s?", s.client.BaseURL())))
		return errRequestFailed
	case models.LineNoResponse:
		fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(colorError).Render(text))
		return errRequestFailed
	}

	if o.output != "" {
		if err := os.WriteFile(o.output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if decorated {
			fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render(
				fmt.Sprintf("✓ Reply saved to %s", o.output),
			))
		}
		return nil
	}

	if !decorated {
		fmt.Fprintln(cmd.OutOrStdout(), render.SanitizeTerminal(text))
		return nil
	}

	if s.cfg.CopyToClipboard {
		if err := o.deps.Clipboard(text); err != nil {
			fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(colorError).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			))
		} else {
			fmt.Fprintln(stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard"))
		}
	}

	bubbleWidth := min(max(getTerminalWidth()-4, 40), 120)
	opts := render.OptionsFromConfig(s.cfg.Markdown, bubbleWidth-4)

	rendered, err := render.Markdown(render.SanitizeTerminal(text), opts)
	if err != nil {
		rendered = render.SanitizeTerminal(text)
	}
	rendered = strings.TrimRight(rendered, "\n")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, botLabelStyle.Render("🏫 "+string(models.SenderBot)))
	fmt.Fprintln(out, botBubbleStyle.Width(bubbleWidth).Render(rendered))
	return nil
}

func formatHint(hint string) string {
	return lipgloss.NewStyle().Foreground(colorTextDim).Render("  Hint: " + hint)
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}
	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	switch {
	case errors.Is(err, apierrors.ErrInvalidBaseURL):
		sb.WriteString("\n" + formatHint("Use an absolute http or https URL, e.g. --base-url http://127.0.0.1:8000"))
	case apierrors.IsNetworkError(err):
		sb.WriteString("\n" + formatHint("Check the backend is running and reachable"))
	case apierrors.IsParseError(err):
		sb.WriteString("\n" + formatHint("The backend did not answer with JSON. Check --base-url points at the API"))
	case apierrors.IsUploadError(err):
		sb.WriteString("\n" + formatHint("File upload failed. Check the file exists and is accessible"))
	}

	return sb.String()
}
