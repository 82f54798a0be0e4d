package config

import (
	"sort"

	"github.com/san-kum/eggburst/internal/particle"
)

func preset(mutate func(c *Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"dense": preset(func(c *Config) {
		c.Particles.Count = 600
	}),
	"sparse": preset(func(c *Config) {
		c.Particles.Count = 80
		c.Particles.Width = particle.Range{Min: 0.08, Max: 0.14}
		c.Particles.Height = particle.Range{Min: 0.08, Max: 0.14}
	}),
	"toggle": preset(func(c *Config) {
		c.Shell.Variant = "toggle"
	}),
	"slowmo": preset(func(c *Config) {
		c.Particles.Fall = particle.Range{Min: -0.008, Max: -0.002}
		c.Particles.DriftX = particle.Range{Min: -0.004, Max: 0.004}
		c.Particles.DriftZ = particle.Range{Min: -0.004, Max: 0.004}
		c.Hinge.Frequency = 2.5
	}),
	"festive": preset(func(c *Config) {
		c.Particles.Palette = []particle.Color{particle.Red, particle.Green, particle.Yellow}
		c.Particles.Spin = particle.Range{Min: -0.25, Max: 0.25}
	}),
	"rk4": preset(func(c *Config) {
		c.Hinge.Method = "rk4"
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
