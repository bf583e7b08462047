package render

// Markdown styles shipped with glamour
const (
	StyleDark       = "dark"
	StyleLight      = "light"
	StyleTokyoNight = "tokyonight"
	StyleDracula    = "dracula"
	StylePink       = "pink"
	StyleNoTTY      = "notty"
	StyleASCII      = "ascii"
)

// glamourStyle maps a configured style to the name glamour resolves.
// Anything unknown is passed through as a theme file path.
func glamourStyle(style string) string {
	switch style {
	case "":
		return StyleDark
	case StyleTokyoNight:
		return "tokyo-night"
	default:
		return style
	}
}

// ThemeInfo describes a markdown style for selection menus.
type ThemeInfo struct {
	Name        string
	Description string
}

// AvailableThemes lists the markdown styles.
func AvailableThemes() []ThemeInfo {
	return []ThemeInfo{
		{Name: StyleDark, Description: "Dark theme (default)"},
		{Name: StyleLight, Description: "Light theme for bright terminals"},
		{Name: StyleTokyoNight, Description: "Tokyo Night color scheme"},
		{Name: StyleDracula, Description: "Dracula color scheme"},
		{Name: StylePink, Description: "Pink accents"},
		{Name: StyleNoTTY, Description: "Plain text (no styling)"},
		{Name: StyleASCII, Description: "ASCII-only output"},
	}
}

// ThemeNames returns the markdown style names.
func ThemeNames() []string {
	themes := AvailableThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// IsBuiltinStyle reports whether style names a bundled glamour style.
func IsBuiltinStyle(style string) bool {
	for _, name := range ThemeNames() {
		if name == style {
			return true
		}
	}
	return false
}
