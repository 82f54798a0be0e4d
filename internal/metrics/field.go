package metrics

import "github.com/san-kum/eggburst/internal/scene"

// SettleFrame is the frame on which the last particle froze, or -1.
type SettleFrame struct {
	frame int
}

func NewSettleFrame() *SettleFrame { return &SettleFrame{frame: -1} }

func (m *SettleFrame) Name() string { return "settle_frame" }

func (m *SettleFrame) Observe(info scene.FrameInfo) {
	if m.frame < 0 && info.Field.Count > 0 && info.Field.Settled() {
		m.frame = info.Frame
	}
}

func (m *SettleFrame) Value() float64 { return float64(m.frame) }
func (m *SettleFrame) Reset()         { m.frame = -1 }

// FrozenFraction is the share of particles frozen at the last observed
// frame.
type FrozenFraction struct {
	value float64
}

func NewFrozenFraction() *FrozenFraction { return &FrozenFraction{} }

func (m *FrozenFraction) Name() string { return "frozen_fraction" }

func (m *FrozenFraction) Observe(info scene.FrameInfo) {
	if info.Field.Count == 0 {
		m.value = 0
		return
	}
	m.value = float64(info.Field.Frozen) / float64(info.Field.Count)
}

func (m *FrozenFraction) Value() float64 { return m.value }
func (m *FrozenFraction) Reset()         { m.value = 0 }
