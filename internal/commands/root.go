// Package commands provides CLI commands for schoolchat.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Samit-B/school-management/internal/api"
	"github.com/Samit-B/school-management/internal/config"
	"github.com/Samit-B/school-management/internal/logger"
	"github.com/Samit-B/school-management/internal/widget"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootOptions carries the global flags and the injected dependencies
type rootOptions struct {
	deps *Dependencies

	baseURL string
	verbose bool
	serial  bool
	timeout int

	file   string
	output string
	raw    bool
}

// NewRootCmd builds the command tree
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	o := &rootOptions{deps: deps}

	cmd := &cobra.Command{
		Use:   "schoolchat [message]",
		Short: "Terminal client for the school management chatbot",
		Long: `schoolchat talks to the school management backend. Messages that mention
"pdf" or "summarize" query the uploaded document, everything else goes to
the student chatbot.

Examples:
  schoolchat chat                              Start interactive chat
  schoolchat "Show marks of Asha"              Send a single message
  schoolchat -f question.txt                   Read the message from a file
  echo "summarize the pdf" | schoolchat        Read the message from stdin
  schoolchat upload notes.pdf                  Upload a PDF
  schoolchat upload marks.xlsx --excel         Upload a spreadsheet
  schoolchat config set base_url http://10.0.0.5:8000`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "schoolchat %s (built %s)\n", Version, BuildTime)
				return nil
			}

			message, ok, err := o.readMessage(cmd, args)
			if err != nil {
				return err
			}
			if !ok {
				return cmd.Help()
			}
			return o.runQuery(cmd, message)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.baseURL, "base-url", "", "Backend base URL (default from config, http://127.0.0.1:8000)")
	pf.BoolVar(&o.verbose, "verbose", false, "Log requests and responses")
	pf.BoolVar(&o.serial, "serial", false, "Keep at most one request in flight")
	pf.IntVar(&o.timeout, "timeout", 0, "Request timeout in seconds, 0 disables it (default from config)")

	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Read the message from file")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Save the reply to file")
	cmd.Flags().BoolVar(&o.raw, "raw", false, "Print only the reply text")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(
		newChatCmd(o),
		newUploadCmd(o),
		newAnalyzeURLCmd(o),
		newProcessVideoCmd(o),
		newConfigCmd(o),
	)

	return cmd
}

// rootCmd represents the base command
var rootCmd = NewRootCmd(nil)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readMessage picks the message from --file, piped stdin or the argument, in that order
func (o *rootOptions) readMessage(cmd *cobra.Command, args []string) (string, bool, error) {
	if o.file != "" {
		data, err := os.ReadFile(o.file)
		if err != nil {
			return "", false, fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), true, nil
	}

	if in := cmd.InOrStdin(); isPiped(in) {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", false, fmt.Errorf("failed to read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) != "" {
			return string(data), true, nil
		}
	}

	if len(args) > 0 {
		return args[0], true, nil
	}
	return "", false, nil
}

// isPiped reports whether r carries input that is not an interactive terminal
func isPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}
	return !term.IsTerminal(int(f.Fd()))
}

// settings resolves the configuration: file, then environment, then flags
func (o *rootOptions) settings(cmd *cobra.Command) (config.Config, error) {
	path, err := o.deps.ConfigPath()
	if err != nil {
		return config.DefaultConfig(), err
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		if err := cfg.Set("base_url", o.baseURL); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("serial") {
		cfg.SerialRequests = o.serial
	}
	if flags.Changed("timeout") {
		if o.timeout < 0 {
			return cfg, fmt.Errorf("--timeout must not be negative")
		}
		cfg.TimeoutSeconds = o.timeout
	}

	return cfg, nil
}

// session is what a one-shot command needs to talk to the backend
type session struct {
	cfg    config.Config
	log    zerolog.Logger
	client api.ChatClientInterface
}

// newSession resolves settings and builds a client logging to stderr
func (o *rootOptions) newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := o.settings(cmd)
	if err != nil {
		return nil, err
	}

	log := logger.New(cmd.ErrOrStderr(), cfg.Verbose)
	client, err := o.deps.NewClient(cfg, logger.Component(log, "api"))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &session{cfg: cfg, log: log, client: client}, nil
}

// widgetOptions maps the settings onto widget options
func (s *session) widgetOptions() []widget.Option {
	return []widget.Option{
		widget.WithSerialRequests(s.cfg.SerialRequests),
		widget.WithLogger(logger.Component(s.log, "widget")),
	}
}
