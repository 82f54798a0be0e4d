// Package hinge animates the two mirrored shell hinge angles.
//
// Only the left angle is integrated; the right angle is always reported as
// its exact negative so the shells can never drift out of symmetry.
package hinge

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultOpenAngle is the hinge magnitude of a fully open shell.
	DefaultOpenAngle = math.Pi / 2.2
	// DefaultFrequency is the spring's angular frequency in rad/s.
	DefaultFrequency = 6.0
	DefaultDamping   = 1.0
	DefaultFrameDt   = 1.0 / 60.0
	// MaxFrameDt caps one update so a stalled driver resumes smoothly.
	MaxFrameDt = 0.1
)

var ErrOvershoot = errors.New("hinge: damping ratio below 1 would overshoot")

// Angles is a mirrored hinge pose.
type Angles struct {
	Left, Right float64
}

func Mirror(left float64) Angles { return Angles{Left: left, Right: -left} }

// Target returns the pose for an open or closed egg.
func Target(open bool, openAngle float64) Angles {
	if open {
		return Mirror(openAngle)
	}
	return Mirror(0)
}

type Method int

const (
	MethodHarmonica Method = iota
	MethodRK4
	MethodEuler
)

func (m Method) String() string {
	switch m {
	case MethodRK4:
		return "rk4"
	case MethodEuler:
		return "euler"
	}
	return "harmonica"
}

func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "", "harmonica", "spring":
		return MethodHarmonica, nil
	case "rk4":
		return MethodRK4, nil
	case "euler":
		return MethodEuler, nil
	}
	return MethodHarmonica, fmt.Errorf("hinge: unknown method %q", s)
}

type Params struct {
	OpenAngle float64
	Frequency float64
	Damping   float64
	Method    Method
}

func DefaultParams() Params {
	return Params{
		OpenAngle: DefaultOpenAngle,
		Frequency: DefaultFrequency,
		Damping:   DefaultDamping,
		Method:    MethodHarmonica,
	}
}

func (p Params) Validate() error {
	if p.Frequency <= 0 {
		return fmt.Errorf("hinge: frequency must be positive, got %f", p.Frequency)
	}
	if p.Damping < 1 {
		return fmt.Errorf("%w: got %f", ErrOvershoot, p.Damping)
	}
	if math.IsNaN(p.OpenAngle) || math.IsInf(p.OpenAngle, 0) {
		return fmt.Errorf("hinge: invalid open angle %f", p.OpenAngle)
	}
	return nil
}

// Animator eases the hinge toward its target once per frame.
type Animator interface {
	// SetOpen retargets without touching the current velocity.
	SetOpen(open bool)
	// Step advances by dt seconds; dt <= 0 means one nominal frame.
	Step(dt float64) Angles
	Angles() Angles
	Target() Angles
	// Settled reports whether the pose is within tol of the target and
	// essentially at rest.
	Settled(tol float64) bool
}

// New builds the animator selected by p.Method.
func New(p Params) (Animator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch p.Method {
	case MethodRK4, MethodEuler:
		return newODEAnimator(p), nil
	}
	return newSpringAnimator(p), nil
}

func frameDt(dt float64) float64 {
	if dt <= 0 || math.IsNaN(dt) {
		return DefaultFrameDt
	}
	return math.Min(dt, MaxFrameDt)
}
