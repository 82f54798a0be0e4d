// Package field owns the confetti particle buffer.
//
// A [Field] samples its particles once at construction and advances all of
// them each frame. It holds the authoritative state; renderers attach a
// [Transform] per particle and receive copies, never the reverse.
package field

import (
	"errors"
	"fmt"

	"github.com/san-kum/eggburst/internal/dynamo"
	"github.com/san-kum/eggburst/internal/particle"
	"github.com/san-kum/eggburst/internal/rng"
)

var (
	ErrNegativeCount = errors.New("field: particle count must not be negative")
	ErrNoSource      = errors.New("field: nil random source")
	ErrIndex         = errors.New("field: particle index out of range")
)

// Transform is a renderer-owned handle for one particle's visual.
type Transform interface {
	SetPosition(p dynamo.Vec3)
	SetRotation(r dynamo.Vec3)
}

type Field struct {
	particles  []particle.Particle
	transforms []Transform
	src        rng.Source
	params     particle.Params
	frame      int
}

// New samples n particles from src. The same source keeps feeding redirect
// resamples for the lifetime of the field.
func New(n int, src rng.Source, params particle.Params) (*Field, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCount, n)
	}
	if src == nil {
		return nil, ErrNoSource
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}

	f := &Field{
		particles:  make([]particle.Particle, n),
		transforms: make([]Transform, n),
		src:        src,
		params:     params,
	}
	for i := range f.particles {
		f.particles[i] = particle.Sample(src, &f.params)
	}
	return f, nil
}

func (f *Field) Len() int   { return len(f.particles) }
func (f *Field) Frame() int { return f.frame }

// At returns a copy of particle i.
func (f *Field) At(i int) particle.Particle { return f.particles[i] }

// Each calls fn with a copy of every particle in index order.
func (f *Field) Each(fn func(i int, p particle.Particle)) {
	for i, p := range f.particles {
		fn(i, p)
	}
}

// Attach binds a renderer transform to particle i. A nil transform detaches.
func (f *Field) Attach(i int, t Transform) error {
	if i < 0 || i >= len(f.transforms) {
		return fmt.Errorf("%w: %d of %d", ErrIndex, i, len(f.transforms))
	}
	f.transforms[i] = t
	return nil
}

// Advance steps every particle once with the frame's active snapshot and
// copies the result into attached transforms. Particles without a transform
// are still stepped; the write is retried on the next frame.
func (f *Field) Advance(active bool) {
	f.frame++
	for i := range f.particles {
		f.particles[i] = particle.Step(f.particles[i], active, f.src, &f.params)
		if t := f.transforms[i]; t != nil {
			t.SetPosition(f.particles[i].Position)
			t.SetRotation(f.particles[i].Rotation)
		}
	}
}

// Stats summarises the field for status panels and traces.
type Stats struct {
	Count   int
	Frozen  int
	MeanY   float64
	LowestY float64
}

// Settled reports whether every particle has frozen.
func (s Stats) Settled() bool { return s.Frozen == s.Count }

func (f *Field) Stats() Stats {
	s := Stats{Count: len(f.particles)}
	if s.Count == 0 {
		return s
	}
	s.LowestY = f.particles[0].Position.Y
	sum := 0.0
	for _, p := range f.particles {
		if p.Frozen {
			s.Frozen++
		}
		sum += p.Position.Y
		if p.Position.Y < s.LowestY {
			s.LowestY = p.Position.Y
		}
	}
	s.MeanY = sum / float64(s.Count)
	return s
}
