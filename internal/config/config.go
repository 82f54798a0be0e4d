package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/eggburst/internal/hinge"
	"github.com/san-kum/eggburst/internal/particle"
	"github.com/san-kum/eggburst/internal/shell"
)

const (
	DefaultCount   = 300
	DefaultFPS     = 60
	DefaultTheme   = "cyberpunk"
	DefaultZoom    = 0.45
	DefaultDataDir = ".eggburst"
)

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Seed      int64           `yaml:"seed"`
	DataDir   string          `yaml:"data_dir"`
	Particles ParticlesConfig `yaml:"particles"`
	Hinge     HingeConfig     `yaml:"hinge"`
	Shell     ShellConfig     `yaml:"shell"`
	View      ViewConfig      `yaml:"view"`
}

type ParticlesConfig struct {
	Count       int              `yaml:"count"`
	SpawnX      particle.Range   `yaml:"spawn_x"`
	SpawnY      particle.Range   `yaml:"spawn_y"`
	SpawnZ      particle.Range   `yaml:"spawn_z"`
	DriftX      particle.Range   `yaml:"drift_x"`
	DriftZ      particle.Range   `yaml:"drift_z"`
	Fall        particle.Range   `yaml:"fall"`
	Width       particle.Range   `yaml:"width"`
	Height      particle.Range   `yaml:"height"`
	Spin        particle.Range   `yaml:"spin"`
	RedirectMin int              `yaml:"redirect_min"`
	RedirectMax int              `yaml:"redirect_max"`
	FloorY      float64          `yaml:"floor_y"`
	Palette     []particle.Color `yaml:"palette"`
}

type HingeConfig struct {
	OpenAngle float64 `yaml:"open_angle"`
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
	Method    string  `yaml:"method"`
}

type ShellConfig struct {
	Variant string `yaml:"variant"`
}

type ViewConfig struct {
	FPS   int     `yaml:"fps"`
	Theme string  `yaml:"theme"`
	Zoom  float64 `yaml:"zoom"`
}

func DefaultConfig() *Config {
	p := particle.DefaultParams()
	h := hinge.DefaultParams()
	return &Config{
		DataDir: DefaultDataDir,
		Particles: ParticlesConfig{
			Count:       DefaultCount,
			SpawnX:      p.SpawnX,
			SpawnY:      p.SpawnY,
			SpawnZ:      p.SpawnZ,
			DriftX:      p.DriftX,
			DriftZ:      p.DriftZ,
			Fall:        p.Fall,
			Width:       p.Width,
			Height:      p.Height,
			Spin:        p.Spin,
			RedirectMin: p.RedirectMin,
			RedirectMax: p.RedirectMax,
			FloorY:      p.FloorY,
			Palette:     p.Palette,
		},
		Hinge: HingeConfig{
			OpenAngle: h.OpenAngle,
			Frequency: h.Frequency,
			Damping:   h.Damping,
			Method:    h.Method.String(),
		},
		Shell: ShellConfig{Variant: shell.OneWay.String()},
		View:  ViewConfig{FPS: DefaultFPS, Theme: DefaultTheme, Zoom: DefaultZoom},
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads the file at path over a copy of base. Keys missing from
// the file keep base's values.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	cp := *c
	cp.Particles.Palette = append([]particle.Color(nil), c.Particles.Palette...)
	return &cp
}

func (c *Config) ParticleParams() particle.Params {
	p := c.Particles
	return particle.Params{
		SpawnX:      p.SpawnX,
		SpawnY:      p.SpawnY,
		SpawnZ:      p.SpawnZ,
		DriftX:      p.DriftX,
		DriftZ:      p.DriftZ,
		Fall:        p.Fall,
		Width:       p.Width,
		Height:      p.Height,
		Spin:        p.Spin,
		RedirectMin: p.RedirectMin,
		RedirectMax: p.RedirectMax,
		FloorY:      p.FloorY,
		Palette:     append([]particle.Color(nil), p.Palette...),
	}
}

func (c *Config) HingeParams() (hinge.Params, error) {
	m, err := hinge.ParseMethod(c.Hinge.Method)
	if err != nil {
		return hinge.Params{}, err
	}
	return hinge.Params{
		OpenAngle: c.Hinge.OpenAngle,
		Frequency: c.Hinge.Frequency,
		Damping:   c.Hinge.Damping,
		Method:    m,
	}, nil
}

func (c *Config) Variant() (shell.Variant, error) {
	return shell.ParseVariant(c.Shell.Variant)
}

// Validate checks everything the simulation would otherwise reject at
// construction, so bad files fail before a terminal is taken over.
func (c *Config) Validate() error {
	if c.Particles.Count < 0 {
		return fmt.Errorf("%w: particle count %d", ErrInvalid, c.Particles.Count)
	}
	pp := c.ParticleParams()
	if err := pp.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	hp, err := c.HingeParams()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := hp.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Variant(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.View.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.View.FPS)
	}
	if c.View.Zoom <= 0 {
		return fmt.Errorf("%w: zoom must be positive, got %f", ErrInvalid, c.View.Zoom)
	}
	return nil
}
