// Package dynamo provides the shared primitives of the egg simulation.
//
//   - [Vec3]: 3D vector used for particle positions, velocities and rotations
//   - [State]: vector state of a continuous system such as a hinge spring
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical integrator interface
//
// Everything here is plain data. Values are owned by whoever constructed
// them and are never shared across goroutines by this module; the whole
// simulation runs inside a single frame callback.
package dynamo
