package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/eggburst/internal/field"
	"github.com/san-kum/eggburst/internal/hinge"
	"github.com/san-kum/eggburst/internal/scene"
)

func frame(n int, left float64, frozen, count int) scene.FrameInfo {
	return scene.FrameInfo{
		Frame: n,
		Hinge: hinge.Mirror(left),
		Field: field.Stats{Count: count, Frozen: frozen},
	}
}

func TestOpenTime(t *testing.T) {
	m := NewOpenTime(1.0, 0.01)
	for i, left := range []float64{0, 0.5, 0.95, 0.995, 1.0} {
		m.Observe(frame(i+1, left, 0, 1))
	}
	if m.Value() != 4 {
		t.Errorf("expected open at frame 4, got %v", m.Value())
	}
	m.Reset()
	if m.Value() != -1 {
		t.Errorf("expected -1 after reset, got %v", m.Value())
	}
}

func TestOvershoot(t *testing.T) {
	m := NewOvershoot(1.0)
	m.Observe(frame(1, 0.9, 0, 1))
	if m.Value() != 0 {
		t.Errorf("expected no overshoot, got %v", m.Value())
	}
	m.Observe(frame(2, 1.05, 0, 1))
	if math.Abs(m.Value()-0.05) > 1e-12 {
		t.Errorf("expected 0.05, got %v", m.Value())
	}
}

func TestMirrorError(t *testing.T) {
	m := NewMirrorError()
	m.Observe(frame(1, 0.7, 0, 1))
	if m.Value() != 0 {
		t.Errorf("mirrored angles reported error %v", m.Value())
	}
	m.Observe(scene.FrameInfo{Hinge: hinge.Angles{Left: 0.5, Right: -0.4}})
	if math.Abs(m.Value()-0.1) > 1e-12 {
		t.Errorf("expected 0.1, got %v", m.Value())
	}
}

func TestSettleFrame(t *testing.T) {
	m := NewSettleFrame()
	m.Observe(frame(1, 0, 0, 0))
	if m.Value() != -1 {
		t.Error("empty field should not count as settled")
	}
	m.Observe(frame(2, 0, 2, 3))
	m.Observe(frame(3, 0, 3, 3))
	m.Observe(frame(4, 0, 3, 3))
	if m.Value() != 3 {
		t.Errorf("expected settle at frame 3, got %v", m.Value())
	}
}

func TestFrozenFraction(t *testing.T) {
	m := NewFrozenFraction()
	m.Observe(frame(1, 0, 1, 4))
	if m.Value() != 0.25 {
		t.Errorf("expected 0.25, got %v", m.Value())
	}
}

func TestDefaultsNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Defaults(1) {
		if seen[m.Name()] {
			t.Errorf("duplicate metric %s", m.Name())
		}
		seen[m.Name()] = true
	}
}
