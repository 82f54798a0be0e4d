package sim

import (
	"github.com/san-kum/eggburst/internal/scene"
	"github.com/san-kum/eggburst/internal/shell"
)

// Metric accumulates one summary value over a run.
type Metric interface {
	Name() string
	Observe(info scene.FrameInfo)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(info scene.FrameInfo)
}

// Action is a pointer event delivered just before frame Frame is ticked.
type Action struct {
	Frame int
	Event shell.Event
}

type Config struct {
	Frames int
	// Dt is the elapsed time passed to every tick; zero means one nominal
	// frame.
	Dt     float64
	Script []Action
}

// ClickAt scripts a hover followed by a click on the given frame.
func ClickAt(frame int) []Action {
	return []Action{
		{Frame: frame, Event: shell.PointerEnter},
		{Frame: frame, Event: shell.Click},
	}
}

type Result struct {
	Frames     []scene.FrameInfo
	Metrics    map[string]float64
	FramesRun  int
	Deliveries int
}

func (r *Result) Final() scene.FrameInfo {
	if len(r.Frames) == 0 {
		return scene.FrameInfo{}
	}
	return r.Frames[len(r.Frames)-1]
}
