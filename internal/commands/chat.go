package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Samit-B/school-management/internal/logger"
	"github.com/Samit-B/school-management/internal/tui"
	"github.com/Samit-B/school-management/internal/widget"
)

func newChatCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat with the school assistant.

Enter sends, Alt+Enter inserts a newline. Type /help for the upload
and export commands. Press Esc or Ctrl+C to quit.

Logs are written to ~/.schoolchat/schoolchat.log while the chat runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runChat(cmd)
		},
	}
}

func (o *rootOptions) runChat(cmd *cobra.Command) error {
	cfg, err := o.settings(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatErrorMessage(err, "Invalid settings"))
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	dir, err := o.deps.LogDir()
	if err != nil {
		return err
	}
	log, closer, _, err := logger.NewFile(dir, cfg.Verbose)
	if err != nil {
		return err
	}
	defer closer.Close()

	client, err := o.deps.NewClient(cfg, logger.Component(log, "api"))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	tui.ApplyThemeByName(cfg.TUITheme)
	log.Info().Str("base_url", client.BaseURL()).Bool("serial", cfg.SerialRequests).Msg("chat started")

	return o.deps.TUI.RunChat(cmd.Context(), client, cfg.Markdown,
		widget.WithSerialRequests(cfg.SerialRequests),
		widget.WithLogger(logger.Component(log, "widget")),
	)
}
