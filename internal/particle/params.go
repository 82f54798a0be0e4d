package particle

import (
	"fmt"
	"math"

	"github.com/san-kum/eggburst/internal/dynamo"
)

const (
	DefaultFloorY      = -5.0
	DefaultRedirectMin = 5
	DefaultRedirectMax = 25
)

// Range is a half-open sampling interval [Min, Max).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r Range) valid() bool { return r.Min <= r.Max && !math.IsNaN(r.Min) && !math.IsNaN(r.Max) }

// Params holds every sampling range used at spawn and on redirect.
type Params struct {
	SpawnX, SpawnY, SpawnZ Range
	DriftX, DriftZ         Range
	// Fall is the vertical velocity range. Max must not exceed zero so
	// particles only ever descend.
	Fall          Range
	Width, Height Range
	Spin          Range
	RedirectMin   int
	RedirectMax   int
	FloorY        float64
	Palette       []Color
}

func DefaultParams() Params {
	return Params{
		SpawnX:      Range{-0.6, 0.6},
		SpawnY:      Range{0, 0.5},
		SpawnZ:      Range{-0.6, 0.6},
		DriftX:      Range{-0.01, 0.01},
		DriftZ:      Range{-0.01, 0.01},
		Fall:        Range{-0.02, -0.005},
		Width:       Range{0.04, 0.1},
		Height:      Range{0.04, 0.1},
		Spin:        Range{-0.1, 0.1},
		RedirectMin: DefaultRedirectMin,
		RedirectMax: DefaultRedirectMax,
		FloorY:      DefaultFloorY,
		Palette:     DefaultPalette(),
	}
}

func (p *Params) Validate() error {
	ranges := map[string]Range{
		"spawn_x": p.SpawnX, "spawn_y": p.SpawnY, "spawn_z": p.SpawnZ,
		"drift_x": p.DriftX, "drift_z": p.DriftZ, "fall": p.Fall,
		"width": p.Width, "height": p.Height, "spin": p.Spin,
	}
	for name, r := range ranges {
		if !r.valid() {
			return fmt.Errorf("%s range [%g, %g): %w", name, r.Min, r.Max, dynamo.ErrParameterBounds)
		}
	}
	if p.Fall.Min >= p.Fall.Max || p.Fall.Max > 0 {
		return fmt.Errorf("fall range [%g, %g) must be non-empty and downward: %w", p.Fall.Min, p.Fall.Max, dynamo.ErrParameterBounds)
	}
	if p.RedirectMin < 1 || p.RedirectMax <= p.RedirectMin {
		return fmt.Errorf("redirect interval [%d, %d): %w", p.RedirectMin, p.RedirectMax, dynamo.ErrParameterBounds)
	}
	if len(p.Palette) == 0 {
		return fmt.Errorf("empty palette: %w", dynamo.ErrParameterBounds)
	}
	return nil
}
