package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/eggburst/internal/particle"
	"github.com/san-kum/eggburst/internal/shell"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Particles.Count != 300 {
		t.Errorf("expected 300 particles, got %d", cfg.Particles.Count)
	}
	if cfg.View.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	v, err := cfg.Variant()
	if err != nil || v != shell.OneWay {
		t.Errorf("expected one-way variant, got %v (%v)", v, err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("toggle")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Shell.Variant != "toggle" {
		t.Errorf("expected toggle variant, got %s", cfg.Shell.Variant)
	}

	cfg.Particles.Palette[0] = particle.Pink
	if Presets["toggle"].Particles.Palette[0] == particle.Pink {
		t.Error("GetPreset returned shared palette")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "egg.yaml")
	data := []byte(`
seed: 7
particles:
  count: 120
  palette: [red, blue]
hinge:
  method: rk4
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Seed != 7 || cfg.Particles.Count != 120 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if len(cfg.Particles.Palette) != 2 || cfg.Particles.Palette[1] != particle.Blue {
		t.Errorf("unexpected palette %v", cfg.Particles.Palette)
	}
	if cfg.Particles.Fall != particle.DefaultParams().Fall {
		t.Errorf("default fall range lost: %+v", cfg.Particles.Fall)
	}
	if cfg.View.FPS != DefaultFPS {
		t.Errorf("default fps lost: %d", cfg.View.FPS)
	}
}

func TestLoadIntoKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("view:\n  theme: ocean\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("dense")
	cfg, err := LoadInto(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Particles.Count != 600 {
		t.Errorf("preset count lost: got %d", cfg.Particles.Count)
	}
	if cfg.View.Theme != "ocean" {
		t.Errorf("file theme not applied: got %s", cfg.View.Theme)
	}
	if base.View.Theme != DefaultTheme {
		t.Error("base config was modified")
	}
}

func TestLoadBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "egg.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  palette: [chartreuse]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown palette color")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "egg.yaml")
	cfg := GetPreset("slowmo")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if back.Particles.Fall != cfg.Particles.Fall || back.Hinge.Frequency != cfg.Hinge.Frequency {
		t.Errorf("round trip lost values: %+v", back)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative count", func(c *Config) { c.Particles.Count = -1 }},
		{"upward fall", func(c *Config) { c.Particles.Fall = particle.Range{Min: -0.01, Max: 0.02} }},
		{"bad method", func(c *Config) { c.Hinge.Method = "magic" }},
		{"underdamped", func(c *Config) { c.Hinge.Damping = 0.2 }},
		{"bad variant", func(c *Config) { c.Shell.Variant = "sometimes" }},
		{"zero fps", func(c *Config) { c.View.FPS = 0 }},
		{"zero zoom", func(c *Config) { c.View.Zoom = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
