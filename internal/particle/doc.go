// Package particle implements confetti kinematics.
//
// A [Particle] is plain data. [Sample] draws its initial attributes once and
// [Step] advances it by exactly one frame:
//
//	p := particle.Sample(src, &params)
//	for frame := 0; frame < n; frame++ {
//	    p = particle.Step(p, active, src, &params)
//	}
//
// Integration is one explicit Euler step per rendered frame, not scaled by
// elapsed time, so the fall speed follows the frame rate of the driver.
package particle
