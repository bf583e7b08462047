package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Samit-B/school-management/internal/config"
	"github.com/Samit-B/school-management/internal/render"
)

// configView represents the current view in the config menu
type configView int

const (
	viewMain configView = iota
	viewBaseURLEdit
	viewThemeSelect    // Markdown theme
	viewTUIThemeSelect // TUI color theme
)

// Menu item indices for main view
const (
	menuBaseURL = iota
	menuSerial
	menuVerbose
	menuCopyToClipboard
	menuTheme
	menuTUITheme
	menuExit
	menuItemCount
)

// feedbackClearMsg is sent to clear feedback messages
type feedbackClearMsg struct{}

// ConfigModel is the interactive settings menu
type ConfigModel struct {
	config     config.Config
	configPath string
	save       func(config.Config) error

	view           configView
	cursor         int
	themeCursor    int
	tuiThemeCursor int
	urlInput       textinput.Model

	feedback        string
	feedbackTimeout time.Duration

	width  int
	height int
	ready  bool
}

// NewConfigModel creates the settings menu for cfg.
// Every change is persisted through save.
func NewConfigModel(cfg config.Config, configPath string, save func(config.Config) error) ConfigModel {
	ti := textinput.New()
	ti.Placeholder = "http://127.0.0.1:8000"
	ti.CharLimit = 256

	ApplyThemeByName(cfg.TUITheme)

	return ConfigModel{
		config:          cfg,
		configPath:      configPath,
		save:            save,
		themeCursor:     indexOf(render.ThemeNames(), cfg.Markdown.Style),
		tuiThemeCursor:  indexOf(render.TUIThemeNames(), cfg.TUITheme),
		urlInput:        ti,
		feedbackTimeout: 2 * time.Second,
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}

// Config returns the configuration as edited so far
func (m ConfigModel) Config() config.Config {
	return m.config
}

// Init initializes the model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}

// Update handles messages and updates the model
func (m ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case feedbackClearMsg:
		m.feedback = ""

	case tea.KeyMsg:
		if m.view == viewBaseURLEdit {
			return m.updateURLInput(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.view != viewMain {
				m.view = viewMain
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "enter", " ":
			return m.handleSelect()
		}
	}

	return m, nil
}

// move shifts the cursor of the current view, wrapping around
func (m *ConfigModel) move(delta int) {
	wrap := func(v, n int) int { return (v + n) % n }

	switch m.view {
	case viewMain:
		m.cursor = wrap(m.cursor+delta, menuItemCount)
	case viewThemeSelect:
		m.themeCursor = wrap(m.themeCursor+delta, len(render.ThemeNames()))
	case viewTUIThemeSelect:
		m.tuiThemeCursor = wrap(m.tuiThemeCursor+delta, len(render.TUIThemeNames()))
	}
}

func (m ConfigModel) updateURLInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.urlInput.Blur()
		m.view = viewMain
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.urlInput.Value())
		if err := m.config.Set("base_url", value); err != nil {
			m.feedback = fmt.Sprintf("Error: %v", err)
			return m, clearFeedback(m.feedbackTimeout)
		}
		m.urlInput.Blur()
		m.view = viewMain
		return m.persist(fmt.Sprintf("Base URL set to %s", m.config.BaseURL))
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

// handleSelect handles menu item selection
func (m ConfigModel) handleSelect() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewThemeSelect:
		m.config.Markdown.Style = render.ThemeNames()[m.themeCursor]
		m.view = viewMain
		return m.persist(fmt.Sprintf("Markdown theme set to %s", m.config.Markdown.Style))

	case viewTUIThemeSelect:
		m.config.TUITheme = render.TUIThemeNames()[m.tuiThemeCursor]
		ApplyThemeByName(m.config.TUITheme)
		m.view = viewMain
		return m.persist(fmt.Sprintf("TUI theme set to %s", m.config.TUITheme))
	}

	switch m.cursor {
	case menuBaseURL:
		m.view = viewBaseURLEdit
		m.urlInput.SetValue(m.config.BaseURL)
		m.urlInput.CursorEnd()
		return m, m.urlInput.Focus()
	case menuSerial:
		m.config.SerialRequests = !m.config.SerialRequests
		return m.persist("Serial requests " + enabledWord(m.config.SerialRequests))
	case menuVerbose:
		m.config.Verbose = !m.config.Verbose
		return m.persist("Verbose logging " + enabledWord(m.config.Verbose))
	case menuCopyToClipboard:
		m.config.CopyToClipboard = !m.config.CopyToClipboard
		return m.persist("Copy to clipboard " + enabledWord(m.config.CopyToClipboard))
	case menuTheme:
		m.view = viewThemeSelect
	case menuTUITheme:
		m.view = viewTUIThemeSelect
	case menuExit:
		return m, tea.Quit
	}
	return m, nil
}

// persist saves the configuration and shows feedback
func (m ConfigModel) persist(success string) (tea.Model, tea.Cmd) {
	if err := m.save(m.config); err != nil {
		m.feedback = fmt.Sprintf("Error: %v", err)
	} else {
		m.feedback = success
	}
	return m, clearFeedback(m.feedbackTimeout)
}

func enabledWord(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

// View renders the TUI
func (m ConfigModel) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	sections := []string{
		configHeaderStyle.Width(contentWidth).Render(configTitleStyle.Render("⚙ schoolchat configuration")),
		configPanelStyle.Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			configSectionTitleStyle.Render("📁 Paths"),
			"   Config: "+configPathStyle.Render(m.configPath),
		)),
	}

	var body string
	switch m.view {
	case viewMain:
		body = m.renderMainMenu()
	case viewBaseURLEdit:
		body = lipgloss.JoinVertical(lipgloss.Left,
			configSectionTitleStyle.Render("🌐 Backend base URL"),
			"",
			m.urlInput.View(),
		)
	case viewThemeSelect:
		body = m.renderSelect("🎨 Markdown theme", render.AvailableThemes(), m.themeCursor, m.config.Markdown.Style)
	case viewTUIThemeSelect:
		themes := render.AvailableTUIThemes()
		infos := make([]render.ThemeInfo, len(themes))
		for i, t := range themes {
			infos[i] = render.ThemeInfo{Name: t.Name, Description: t.Description}
		}
		body = m.renderSelect("🎨 TUI theme", infos, m.tuiThemeCursor, m.config.TUITheme)
	}
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(body))

	if m.feedback != "" {
		sections = append(sections, configFeedbackStyle.Render("✓ "+m.feedback))
	}
	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ConfigModel) menuLine(index int, label, value string) string {
	cursor := "  "
	style := configMenuItemStyle
	if m.cursor == index {
		cursor = configCursorStyle.Render("▸ ")
		style = configMenuSelectedStyle
	}
	if value == "" {
		return cursor + style.Render(label)
	}
	return fmt.Sprintf("%s%-20s%s", cursor, style.Render(label), value)
}

func (m ConfigModel) renderMainMenu() string {
	items := []string{
		configSectionTitleStyle.Render("Settings"),
		"",
		m.menuLine(menuBaseURL, "Base URL", configValueStyle.Render(m.config.BaseURL)),
		m.menuLine(menuSerial, "Serial Requests", renderBool(m.config.SerialRequests)),
		m.menuLine(menuVerbose, "Verbose Logging", renderBool(m.config.Verbose)),
		m.menuLine(menuCopyToClipboard, "Copy to Clipboard", renderBool(m.config.CopyToClipboard)),
		m.menuLine(menuTheme, "Markdown Theme", configValueStyle.Render(m.config.Markdown.Style)),
		m.menuLine(menuTUITheme, "TUI Theme", configValueStyle.Render(m.config.TUITheme)),
		"",
		m.menuLine(menuExit, "Exit", ""),
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (m ConfigModel) renderSelect(title string, themes []render.ThemeInfo, cursor int, current string) string {
	items := []string{configSectionTitleStyle.Render(title), ""}

	for i, theme := range themes {
		prefix := "  "
		style := configMenuItemStyle
		if i == cursor {
			prefix = configCursorStyle.Render("▸ ")
			style = configMenuSelectedStyle
		}
		line := prefix + style.Render(fmt.Sprintf("%s - %s", theme.Name, theme.Description))
		if theme.Name == current {
			line += configStatusOkStyle.Render(" (current)")
		}
		items = append(items, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func renderBool(value bool) string {
	if value {
		return configEnabledStyle.Render("enabled")
	}
	return configDisabledStyle.Render("disabled")
}

func (m ConfigModel) renderStatusBar(width int) string {
	back := "Exit"
	if m.view != viewMain {
		back = "Back"
	}
	items := []string{
		statusKeyStyle.Render("↑↓") + statusDescStyle.Render(" Navigate"),
		statusKeyStyle.Render("Enter") + statusDescStyle.Render(" Select"),
		statusKeyStyle.Render("Esc") + statusDescStyle.Render(" "+back),
	}
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// RunConfig starts the config TUI on the configuration file at path
func RunConfig(cfg config.Config, path string) error {
	save := func(c config.Config) error {
		return config.SaveTo(path, c)
	}

	p := tea.NewProgram(NewConfigModel(cfg, path, save), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
