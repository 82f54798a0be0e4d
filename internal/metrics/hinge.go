package metrics

import (
	"math"

	"github.com/san-kum/eggburst/internal/scene"
)

// OpenTime is the first frame at which the left hinge is within tolerance
// of the open angle, or -1 if it never gets there.
type OpenTime struct {
	target    float64
	tolerance float64
	frame     int
}

func NewOpenTime(openAngle, tolerance float64) *OpenTime {
	return &OpenTime{target: openAngle, tolerance: tolerance, frame: -1}
}

func (m *OpenTime) Name() string { return "open_frame" }

func (m *OpenTime) Observe(info scene.FrameInfo) {
	if m.frame < 0 && math.Abs(info.Hinge.Left-m.target) <= m.tolerance*math.Abs(m.target) {
		m.frame = info.Frame
	}
}

func (m *OpenTime) Value() float64 { return float64(m.frame) }
func (m *OpenTime) Reset()         { m.frame = -1 }

// Overshoot is how far the left hinge ever went past the open angle.
type Overshoot struct {
	target float64
	worst  float64
}

func NewOvershoot(openAngle float64) *Overshoot {
	return &Overshoot{target: openAngle}
}

func (m *Overshoot) Name() string { return "overshoot" }

func (m *Overshoot) Observe(info scene.FrameInfo) {
	m.worst = math.Max(m.worst, info.Hinge.Left-m.target)
}

func (m *Overshoot) Value() float64 { return m.worst }
func (m *Overshoot) Reset()         { m.worst = 0 }

// MirrorError is the largest |left + right| seen. Anything but zero is a
// bug.
type MirrorError struct {
	worst float64
}

func NewMirrorError() *MirrorError { return &MirrorError{} }

func (m *MirrorError) Name() string { return "mirror_error" }

func (m *MirrorError) Observe(info scene.FrameInfo) {
	m.worst = math.Max(m.worst, math.Abs(info.Hinge.Left+info.Hinge.Right))
}

func (m *MirrorError) Value() float64 { return m.worst }
func (m *MirrorError) Reset()         { m.worst = 0 }
