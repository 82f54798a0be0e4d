// Package integrators advances dynamo.System states by one timestep.
package integrators

import "github.com/san-kum/eggburst/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta stepper. Stage buffers are
// reused between calls, so an RK4 must not be shared by concurrent callers.
type RK4 struct {
	k1, k2, k3, k4 dynamo.State
	scratch        dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(dynamo.State, n)
		r.k2 = make(dynamo.State, n)
		r.k3 = make(dynamo.State, n)
		r.k4 = make(dynamo.State, n)
		r.scratch = make(dynamo.State, n)
	}
}

// stage fills r.scratch with x + h*k.
func (r *RK4) stage(x, k dynamo.State, h float64) dynamo.State {
	for i := range x {
		r.scratch[i] = x[i] + h*k[i]
	}
	return r.scratch
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	r.ensureScratch(len(x))
	half := dt * 0.5

	copy(r.k1, dyn.Derive(x, u, t))
	copy(r.k2, dyn.Derive(r.stage(x, r.k1, half), u, t+half))
	copy(r.k3, dyn.Derive(r.stage(x, r.k2, half), u, t+half))
	copy(r.k4, dyn.Derive(r.stage(x, r.k3, dt), u, t+dt))

	next := make(dynamo.State, len(x))
	dt6 := dt / 6.0
	for i := range x {
		next[i] = x[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}
	return next
}
