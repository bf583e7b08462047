package commands

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"

	"github.com/Samit-B/school-management/internal/config"
	"github.com/Samit-B/school-management/internal/elements"
	"github.com/Samit-B/school-management/internal/models"
	"github.com/Samit-B/school-management/internal/render"
	"github.com/Samit-B/school-management/internal/widget"
)

func newUploadCmd(o *rootOptions) *cobra.Command {
	var excel bool

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a PDF, or a spreadsheet with --excel",
		Long: `Upload a document to the backend. PDFs become the document that
"pdf" and "summarize" questions are answered from. Spreadsheets are
stored with --excel.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := models.FileFromPath(args[0])
			if err != nil {
				return err
			}
			return o.runWidget(cmd, func(ctx context.Context, w *widget.Widget, picker *elements.FilePicker) {
				if excel {
					w.UploadExcel(ctx, file)
					return
				}
				picker.Select(ctx, file)
			})
		},
	}
	cmd.Flags().BoolVar(&excel, "excel", false, "Upload as a spreadsheet")
	return cmd
}

func newAnalyzeURLCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze-url <url>",
		Short: "Ask the backend to read a web page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runWidget(cmd, func(ctx context.Context, w *widget.Widget, _ *elements.FilePicker) {
				w.AnalyzeURL(ctx, args[0])
			})
		},
	}
}

func newProcessVideoCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "process-video <link>",
		Short: "Ask the backend to transcribe a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runWidget(cmd, func(ctx context.Context, w *widget.Widget, _ *elements.FilePicker) {
				w.ProcessVideo(ctx, args[0])
			})
		},
	}
}

// runWidget binds a widget to in-memory elements, runs op and prints every
// turn as it is appended. A failed outcome turn fails the command.
func (o *rootOptions) runWidget(cmd *cobra.Command, op func(ctx context.Context, w *widget.Widget, picker *elements.FilePicker)) error {
	s, err := o.newSession(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatErrorMessage(err, "Invalid settings"))
		return err
	}

	transcript := elements.NewTranscript()
	picker := &elements.FilePicker{}

	w, err := widget.New(widget.Elements{
		Send:     &elements.Button{},
		Input:    elements.NewField(""),
		Messages: transcript,
		Upload:   picker,
	}, s.client, s.widgetOptions()...)
	if err != nil {
		return err
	}

	printer := newTurnPrinter(cmd.OutOrStdout(), transcript, s.cfg, o.deps.IsTTY())
	transcript.OnChange(printer.flush)

	op(cmd.Context(), w, picker)

	if last, ok := transcript.Last(); ok && last.IsError {
		return errRequestFailed
	}
	return nil
}

// turnPrinter writes transcript turns that have not been printed yet
type turnPrinter struct {
	mu         sync.Mutex
	out        io.Writer
	transcript *elements.Transcript
	printed    int

	decorated bool
	theme     render.TUITheme
	opts      render.Options
}

func newTurnPrinter(out io.Writer, transcript *elements.Transcript, cfg config.Config, decorated bool) *turnPrinter {
	theme, _ := render.TUIThemeByName(cfg.TUITheme)
	return &turnPrinter{
		out:        out,
		transcript: transcript,
		decorated:  decorated,
		theme:      theme,
		opts:       render.OptionsFromConfig(cfg.Markdown, min(max(getTerminalWidth()-4, 40), 120)),
	}
}

func (p *turnPrinter) flush() {
	p.mu.Lock()
	defer p.mu.Unlock()

	turns := p.transcript.Turns()
	for _, turn := range turns[p.printed:] {
		if p.decorated {
			fmt.Fprintln(p.out, render.Turn(turn, p.theme, p.opts, true))
		} else {
			fmt.Fprintln(p.out, render.Plain(turn))
		}
	}
	p.printed = len(turns)
}
