package sim

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/eggburst/internal/scene"
)

var ErrInvalidConfig = errors.New("sim: invalid run configuration")

// Simulator drives a scene headlessly, frame by frame, replaying a script
// of pointer events.
type Simulator struct {
	scene     *scene.Scene
	metrics   []Metric
	observers []Observer
}

func New(sc *scene.Scene) *Simulator {
	return &Simulator{
		scene:     sc,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	script := append([]Action(nil), cfg.Script...)
	sort.SliceStable(script, func(i, j int) bool { return script[i].Frame < script[j].Frame })

	result := &Result{
		Frames:  make([]scene.FrameInfo, 0, cfg.Frames),
		Metrics: make(map[string]float64),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	next := 0
	for i := 1; i <= cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		// Pointer effects land before the animator and field read state.
		for next < len(script) && script[next].Frame <= i {
			if s.scene.Pointer(script[next].Event) {
				result.Deliveries++
			}
			next++
		}

		info := s.scene.Tick(cfg.Dt)
		for _, m := range s.metrics {
			m.Observe(info)
		}
		for _, obs := range s.observers {
			obs.OnFrame(info)
		}
		result.Frames = append(result.Frames, info)
		result.FramesRun++
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidConfig, cfg.Frames)
	}
	if cfg.Dt < 0 {
		return fmt.Errorf("%w: dt must not be negative, got %f", ErrInvalidConfig, cfg.Dt)
	}
	for _, a := range cfg.Script {
		if a.Frame < 1 {
			return fmt.Errorf("%w: action scheduled before the first frame (%d)", ErrInvalidConfig, a.Frame)
		}
	}
	return nil
}
