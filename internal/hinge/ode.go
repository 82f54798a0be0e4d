package hinge

import (
	"math"

	"github.com/san-kum/eggburst/internal/dynamo"
	"github.com/san-kum/eggburst/internal/integrators"
)

// Spring is the hinge as an ODE system: x = [angle, angular velocity],
// u = [target angle].
type Spring struct {
	Omega float64
	Zeta  float64
}

func (s *Spring) StateDim() int   { return 2 }
func (s *Spring) ControlDim() int { return 1 }

func (s *Spring) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	target := 0.0
	if len(u) > 0 {
		target = u[0]
	}
	acc := -s.Omega*s.Omega*(x[0]-target) - 2*s.Zeta*s.Omega*x[1]
	return dynamo.State{x[1], acc}
}

// ODEAnimator integrates [Spring] with one of the numerical steppers.
type ODEAnimator struct {
	params Params
	sys    *Spring
	integ  dynamo.Integrator
	x      dynamo.State
	u      dynamo.Control
	t      float64
}

func newODEAnimator(p Params) *ODEAnimator {
	var integ dynamo.Integrator = integrators.NewRK4()
	if p.Method == MethodEuler {
		integ = integrators.NewSemiImplicitEuler()
	}
	return &ODEAnimator{
		params: p,
		sys:    &Spring{Omega: p.Frequency, Zeta: p.Damping},
		integ:  integ,
		x:      dynamo.State{0, 0},
		u:      dynamo.Control{0},
	}
}

func (a *ODEAnimator) SetOpen(open bool) {
	a.u[0] = Target(open, a.params.OpenAngle).Left
}

func (a *ODEAnimator) Step(dt float64) Angles {
	dt = frameDt(dt)
	next := a.integ.Step(a.sys, a.x, a.u, a.t, dt)
	// A diverged integrator is pinned to its target rather than rendered.
	if !next.IsValid() {
		next = dynamo.State{a.u[0], 0}
	}
	a.x = next
	a.t += dt
	return a.Angles()
}

func (a *ODEAnimator) Angles() Angles { return Mirror(a.x[0]) }
func (a *ODEAnimator) Target() Angles { return Mirror(a.u[0]) }

func (a *ODEAnimator) Settled(tol float64) bool {
	return math.Abs(a.x[0]-a.u[0]) <= tol && math.Abs(a.x[1]) <= tol
}
