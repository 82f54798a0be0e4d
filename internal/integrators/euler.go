package integrators

import "github.com/san-kum/eggburst/internal/dynamo"

// SemiImplicitEuler updates velocities first and positions from the new
// velocities. States are laid out as [positions..., velocities...].
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2
	dx := dyn.Derive(x, u, t)

	next := make(dynamo.State, n)
	for i := 0; i < half; i++ {
		next[half+i] = x[half+i] + dt*dx[half+i]
		next[i] = x[i] + dt*next[half+i]
	}
	return next
}
