package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// namedColors covers the CSS names the scene uses for shells.
var namedColors = map[string]string{
	"skyblue": "#87ceeb",
	"pink":    "#ffc0cb",
	"white":   "#ffffff",
}

func parseColor(s string) colorful.Color {
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

func solid(name string) lipgloss.Color {
	return lipgloss.Color(parseColor(name).Hex())
}

// blend mixes a toward b by t in Lab space and returns a terminal color.
func blend(a, b string, t float64) lipgloss.Color {
	if t <= 0 {
		return solid(a)
	}
	return lipgloss.Color(parseColor(a).BlendLab(parseColor(b), t).Clamped().Hex())
}

// GradientText colors each rune of text along a gradient from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	from, to := parseColor(string(start)), parseColor(string(end))

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
		b.WriteString(lipgloss.NewStyle().Foreground(col).Render(string(r)))
	}
	return b.String()
}

// ProgressBar renders a fraction in [0, 1] as a fixed-width bar.
func ProgressBar(fraction float64, width int, fill lipgloss.Color) string {
	filled := int(fraction * float64(width))
	filled = max(0, min(width, filled))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(fill).Render(bar)
}

type styles struct {
	header lipgloss.Style
	stats  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	accent lipgloss.Style
	help   lipgloss.Style
	graph  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().Foreground(t.Title).Bold(true),
		stats: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).Padding(0, 2).Width(42),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		accent: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		graph:  lipgloss.NewStyle().Foreground(t.Accent),
	}
}
