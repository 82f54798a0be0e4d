package hinge

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringAnimator uses harmonica's closed-form damped spring. The spring
// coefficients depend on the timestep, so they are rebuilt whenever the
// frame interval changes.
type SpringAnimator struct {
	params Params
	spring harmonica.Spring
	dt     float64
	pos    float64
	vel    float64
	target float64
}

func newSpringAnimator(p Params) *SpringAnimator {
	return &SpringAnimator{params: p}
}

func (a *SpringAnimator) SetOpen(open bool) {
	a.target = Target(open, a.params.OpenAngle).Left
}

func (a *SpringAnimator) Step(dt float64) Angles {
	dt = frameDt(dt)
	if dt != a.dt {
		a.spring = harmonica.NewSpring(dt, a.params.Frequency, a.params.Damping)
		a.dt = dt
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	return a.Angles()
}

func (a *SpringAnimator) Angles() Angles { return Mirror(a.pos) }
func (a *SpringAnimator) Target() Angles { return Mirror(a.target) }

func (a *SpringAnimator) Settled(tol float64) bool {
	return math.Abs(a.pos-a.target) <= tol && math.Abs(a.vel) <= tol
}
