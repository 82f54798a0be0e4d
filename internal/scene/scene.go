package scene

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/eggburst/internal/dynamo"
	"github.com/san-kum/eggburst/internal/field"
	"github.com/san-kum/eggburst/internal/hinge"
	"github.com/san-kum/eggburst/internal/particle"
	"github.com/san-kum/eggburst/internal/rng"
	"github.com/san-kum/eggburst/internal/shell"
)

const (
	DefaultParticleCount = 300
	hingeRestTolerance   = 1e-3
)

type Options struct {
	Count     int
	Source    rng.Source
	Particles particle.Params
	Hinge     hinge.Params
	Variant   shell.Variant
	Geometry  Geometry
	Logger    *log.Logger
}

func DefaultOptions() Options {
	return Options{
		Count:     DefaultParticleCount,
		Source:    rng.New(time.Now().UnixNano()),
		Particles: particle.DefaultParams(),
		Hinge:     hinge.DefaultParams(),
		Variant:   shell.OneWay,
		Geometry:  DefaultGeometry(),
	}
}

// FrameInfo reports what a tick produced.
type FrameInfo struct {
	Frame       int
	Shell       shell.Snapshot
	Hinge       hinge.Angles
	// HingeAtRest is true once the hinge has reached its target and stopped.
	HingeAtRest bool
	Active      bool
	Field       field.Stats
}

type Scene struct {
	machine  *shell.Machine
	anim     hinge.Animator
	field    *field.Field
	geometry Geometry
	shells   [2]field.Transform
	frame    int
	settled  bool
	log      *log.Logger
}

func New(opts Options) (*Scene, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	anim, err := hinge.New(opts.Hinge)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	f, err := field.New(opts.Count, opts.Source, opts.Particles)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s := &Scene{
		machine:  shell.NewMachine(opts.Variant),
		anim:     anim,
		field:    f,
		geometry: opts.Geometry,
		log:      logger,
	}
	s.machine.OnOpenChange(func(open bool) {
		s.anim.SetOpen(open)
		s.log.Info("shell open changed", "open", open, "frame", s.frame)
	})
	return s, nil
}

func (s *Scene) Machine() *shell.Machine { return s.machine }
func (s *Scene) Field() *field.Field     { return s.field }
func (s *Scene) Hinge() hinge.Animator   { return s.anim }
func (s *Scene) Frame() int              { return s.frame }

// Pointer delivers a pointer event from either shell's hit region.
func (s *Scene) Pointer(ev shell.Event) bool {
	prev := s.machine.State()
	changed := s.machine.Fire(ev)
	if changed {
		s.log.Debug("shell transition", "event", ev, "from", prev, "to", s.machine.State(), "frame", s.frame)
	}
	return changed
}

// AttachShell binds the hinge group transform of one shell. Each tick
// writes the hinge angle as a rotation about z.
func (s *Scene) AttachShell(side Side, t field.Transform) {
	s.shells[side] = t
}

func (s *Scene) AttachParticle(i int, t field.Transform) error {
	return s.field.Attach(i, t)
}

// Tick runs one frame. dt is the elapsed time since the previous tick in
// seconds; zero means unknown and one nominal frame is assumed. Particle
// motion is per frame and ignores dt.
func (s *Scene) Tick(dt float64) FrameInfo {
	s.frame++
	snap := s.machine.Snapshot()
	active := s.machine.Active()

	angles := s.anim.Step(dt)
	s.field.Advance(active)

	for side, t := range s.shells {
		if t == nil {
			continue
		}
		hingeAngle := angles.Left
		if Side(side) == Right {
			hingeAngle = angles.Right
		}
		t.SetRotation(dynamo.Vec3{Z: hingeAngle})
	}

	info := FrameInfo{
		Frame:       s.frame,
		Shell:       snap,
		Hinge:       angles,
		HingeAtRest: s.anim.Settled(hingeRestTolerance),
		Active:      active,
		Field:       s.field.Stats(),
	}
	if !s.settled && info.Field.Count > 0 && info.Field.Settled() {
		s.settled = true
		s.log.Info("confetti settled", "frame", s.frame, "frozen", info.Field.Frozen)
	}
	return info
}
