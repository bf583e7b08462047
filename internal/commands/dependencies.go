package commands

import (
	"context"
	"os"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/Samit-B/school-management/internal/api"
	"github.com/Samit-B/school-management/internal/config"
	"github.com/Samit-B/school-management/internal/tui"
	"github.com/Samit-B/school-management/internal/widget"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(ctx context.Context, client api.ChatClientInterface, md config.MarkdownConfig, opts ...widget.Option) error
	RunConfig(cfg config.Config, path string) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// NewClient builds the backend client from the resolved settings.
	NewClient func(cfg config.Config, log zerolog.Logger) (api.ChatClientInterface, error)

	// TUI is the terminal user interface.
	TUI TUIInterface

	// ConfigPath locates config.json.
	ConfigPath func() (string, error)

	// LogDir is where the chat TUI writes its log file.
	LogDir func() (string, error)

	// Clipboard copies one-shot replies when copy_to_clipboard is set.
	Clipboard func(text string) error

	// IsTTY reports whether stdout is a terminal, enabling decorated output.
	IsTTY func() bool
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(ctx context.Context, client api.ChatClientInterface, md config.MarkdownConfig, opts ...widget.Option) error {
	return tui.RunChat(ctx, client, md, opts...)
}

func (d *DefaultTUI) RunConfig(cfg config.Config, path string) error {
	return tui.RunConfig(cfg, path)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		NewClient:  newHTTPClient,
		TUI:        &DefaultTUI{},
		ConfigPath: config.GetConfigPath,
		LogDir:     config.EnsureConfigDir,
		Clipboard:  clipboard.WriteAll,
		IsTTY:      isStdoutTTY,
	}
}

func newHTTPClient(cfg config.Config, log zerolog.Logger) (api.ChatClientInterface, error) {
	return api.NewClient(cfg.BaseURL,
		api.WithTimeout(cfg.TimeoutSeconds),
		api.WithLogger(log),
	)
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

