package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Samit-B/school-management/internal/api"
	"github.com/Samit-B/school-management/internal/config"
	"github.com/Samit-B/school-management/internal/elements"
	"github.com/Samit-B/school-management/internal/models"
	"github.com/Samit-B/school-management/internal/render"
	"github.com/Samit-B/school-management/internal/widget"
)

// Message types for the TUI
type (
	// requestDoneMsg reports that a widget operation rendered its outcome
	requestDoneMsg struct{}
	// exportedMsg reports the result of saving the transcript
	exportedMsg struct {
		path string
		err  error
	}
)

// Model is the chat screen. The textarea feeds the widget's input field and
// the viewport shows the widget's transcript.
type Model struct {
	ctx        context.Context
	widget     *widget.Widget
	input      *elements.Field
	transcript *elements.Transcript
	picker     *elements.FilePicker
	baseURL    string
	markdown   config.MarkdownConfig

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	pending int
	ready   bool
	notice  string
	err     error

	// Dimensions
	width  int
	height int
}

// NewChatModel binds a widget to the chat screen's elements
func NewChatModel(ctx context.Context, client api.ChatClientInterface, md config.MarkdownConfig, opts ...widget.Option) (Model, error) {
	input := elements.NewField("")
	transcript := elements.NewTranscript()
	picker := &elements.FilePicker{}

	w, err := widget.New(widget.Elements{
		Send:     &elements.Button{},
		Input:    input,
		Messages: transcript,
		Upload:   picker,
	}, client, opts...)
	if err != nil {
		return Model{}, err
	}

	ta := textarea.New()
	ta.Placeholder = "Ask about students, or summarize the uploaded PDF..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		ctx:        ctx,
		widget:     w,
		input:      input,
		transcript: transcript,
		picker:     picker,
		baseURL:    client.BaseURL(),
		markdown:   md,
		textarea:   ta,
		spinner:    s,
	}, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		inputHeight := 5
		statusHeight := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - 2
		if vpHeight < 5 {
			vpHeight = 5
		}
		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth - 4)
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		}

	case requestDoneMsg:
		m.pending--
		m.refreshViewport()

	case exportedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.notice = fmt.Sprintf("Transcript saved to %s", msg.path)
		}

	case spinner.TickMsg:
		if m.pending > 0 {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Only key presses reach the textarea, so escape sequences never leak into it
	if _, ok := msg.(tea.KeyMsg); ok {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit handles Enter: slash commands or a chat message.
// Sends do not wait for earlier ones, so requests may overlap.
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.textarea.Value()
	m.err = nil
	m.notice = ""

	if strings.HasPrefix(strings.TrimSpace(value), "/") {
		return m.command(strings.TrimSpace(value))
	}

	m.input.Set(value)
	request := m.widget.Submit(m.ctx)
	if request == nil {
		return m, nil
	}
	m.textarea.Reset()
	m.refreshViewport()

	return m.start(request)
}

// command runs a slash command typed into the input
func (m Model) command(line string) (tea.Model, tea.Cmd) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/quit", "/exit":
		return m, tea.Quit

	case "/help":
		m.textarea.Reset()
		m.notice = "/upload <pdf>  /excel <xlsx>  /url <link>  /video <link>  /save <file.html>  /quit"
		return m, nil

	case "/upload", "/excel":
		if arg == "" {
			m.err = fmt.Errorf("usage: %s <path>", name)
			return m, nil
		}
		file, err := models.FileFromPath(arg)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.textarea.Reset()
		if name == "/excel" {
			return m.start(func() { m.widget.UploadExcel(m.ctx, file) })
		}
		return m.start(func() { m.picker.Select(m.ctx, file) })

	case "/url", "/video":
		if arg == "" {
			m.err = fmt.Errorf("usage: %s <link>", name)
			return m, nil
		}
		m.textarea.Reset()
		if name == "/video" {
			return m.start(func() { m.widget.ProcessVideo(m.ctx, arg) })
		}
		return m.start(func() { m.widget.AnalyzeURL(m.ctx, arg) })

	case "/save":
		if arg == "" {
			m.err = fmt.Errorf("usage: /save <file.html>")
			return m, nil
		}
		m.textarea.Reset()
		return m, m.export(arg)
	}

	m.err = fmt.Errorf("unknown command %s, try /help", name)
	return m, nil
}

// start runs a widget operation in the background
func (m Model) start(fn func()) (tea.Model, tea.Cmd) {
	m.pending++
	m.refreshViewport()

	run := func() tea.Msg {
		fn()
		return requestDoneMsg{}
	}
	return m, tea.Batch(run, m.spinner.Tick)
}

// export writes the transcript as HTML
func (m Model) export(path string) tea.Cmd {
	turns := m.transcript.Turns()
	return func() tea.Msg {
		html, err := elements.RenderHTML(turns)
		if err == nil {
			err = os.WriteFile(path, []byte(html), 0o644)
		}
		return exportedMsg{path: path, err: err}
	}
}

// refreshViewport re-renders the transcript and scrolls to the newest turn
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	opts := render.OptionsFromConfig(m.markdown, m.viewport.Width-2)
	turns := m.transcript.Turns()

	parts := make([]string, 0, len(turns))
	for _, turn := range turns {
		parts = append(parts, render.Turn(turn, activeTheme, opts, true))
	}

	m.viewport.SetContent(strings.Join(parts, "\n\n"))
	m.viewport.GotoBottom()
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := m.width - 4
	var sections []string

	// Header
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("🏫 School Chat"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.baseURL),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(header))

	// Messages
	content := m.viewport.View()
	if m.transcript.Len() == 0 {
		content = m.renderWelcome()
	}
	sections = append(sections, messagesAreaStyle.Width(contentWidth).Height(m.viewport.Height).Render(content))

	// Input
	label := inputLabelStyle.Render("You")
	if m.pending > 0 {
		label += "  " + m.spinner.View() + loadingStyle.Render(fmt.Sprintf(" waiting for %d answer(s)", m.pending))
	}
	input := lipgloss.JoinVertical(lipgloss.Left, label, m.textarea.View())
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(input))

	if m.notice != "" {
		sections = append(sections, noticeStyle.Render("  "+m.notice))
	}
	if m.err != nil {
		sections = append(sections, FormatError(m.err, m.baseURL))
	}

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderWelcome() string {
	width := m.viewport.Width - 2

	content := lipgloss.JoinVertical(lipgloss.Center,
		welcomeIconStyle.Width(width).Render("🏫"),
		"",
		welcomeTitleStyle.Width(width).Render("School assistant"),
		"",
		hintStyle.Width(width).Align(lipgloss.Center).Render("Ask about students, or mention \"pdf\" or \"summarize\" to query the uploaded document"),
	)

	top := (m.viewport.Height - lipgloss.Height(content)) / 2
	if top < 0 {
		top = 0
	}
	return strings.Repeat("\n", top) + content
}

func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"/upload", "PDF"},
		{"/help", "Commands"},
		{"Esc", "Quit"},
	}

	items := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// Turns returns the transcript shown by the model
func (m Model) Turns() []models.Turn {
	return m.transcript.Turns()
}

// RunChat starts the chat TUI
func RunChat(ctx context.Context, client api.ChatClientInterface, md config.MarkdownConfig, opts ...widget.Option) error {
	m, err := NewChatModel(ctx, client, md, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
