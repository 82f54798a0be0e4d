package particle

import (
	"fmt"
	"strings"
)

// Color is an entry of the confetti palette.
type Color uint8

const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Purple
	Pink
	numColors
)

var colorNames = [numColors]string{"red", "orange", "yellow", "green", "blue", "purple", "pink"}

var colorHex = [numColors]string{"#ff4d4d", "#ff9f1c", "#ffe14d", "#4dd65c", "#4d9dff", "#a45dff", "#ff7eb6"}

func DefaultPalette() []Color {
	p := make([]Color, numColors)
	for i := range p {
		p[i] = Color(i)
	}
	return p
}

func (c Color) String() string {
	if c >= numColors {
		return fmt.Sprintf("color(%d)", c)
	}
	return colorNames[c]
}

// Hex returns the colour as #rrggbb.
func (c Color) Hex() string {
	if c >= numColors {
		return "#ffffff"
	}
	return colorHex[c]
}

func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if strings.EqualFold(n, name) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown confetti color %q", name)
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
