package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the panel and highlight palette. Shell and confetti colors come
// from the scene and are only shaded by the theme.
type Theme struct {
	Name       string
	Title      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Hover      lipgloss.Color
}

var Themes = []Theme{
	{
		Name:       "cyberpunk",
		Title:      lipgloss.Color("#ff00ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#00ffff"),
		Background: lipgloss.Color("#0a0a0a"),
		Hover:      lipgloss.Color("#ffff00"),
	},
	{
		Name:       "retro",
		Title:      lipgloss.Color("#00ff00"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Hover:      lipgloss.Color("#ccffcc"),
	},
	{
		Name:       "minimal",
		Title:      lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#cccccc"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Hover:      lipgloss.Color("#ffffff"),
	},
	{
		Name:       "ocean",
		Title:      lipgloss.Color("#00a8cc"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Hover:      lipgloss.Color("#aee9ff"),
	},
	{
		Name:       "sunset",
		Title:      lipgloss.Color("#ff6b6b"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#feca57"),
		Background: lipgloss.Color("#2d1b2e"),
		Hover:      lipgloss.Color("#ffe3a3"),
	},
}

// GetTheme returns a theme by name, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme(cur Theme) Theme {
	for i, t := range Themes {
		if t.Name == cur.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
