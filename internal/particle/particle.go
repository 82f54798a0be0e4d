package particle

import (
	"math"

	"github.com/san-kum/eggburst/internal/dynamo"
	"github.com/san-kum/eggburst/internal/rng"
)

// Size is the extent of the flat confetti quad.
type Size struct {
	W, H float64
}

type Particle struct {
	Position      dynamo.Vec3
	Velocity      dynamo.Vec3
	Rotation      dynamo.Vec3
	RotationSpeed dynamo.Vec3
	Color         Color
	Size          Size

	FramesSinceRedirect int
	RedirectInterval    int
	Frozen              bool
}

// Sample draws a fresh particle. Draw order is fixed so a seeded source
// always yields the same particle.
func Sample(src rng.Source, params *Params) Particle {
	var p Particle
	p.Position = dynamo.Vec3{
		X: rng.Uniform(src, params.SpawnX.Min, params.SpawnX.Max),
		Y: rng.Uniform(src, params.SpawnY.Min, params.SpawnY.Max),
		Z: rng.Uniform(src, params.SpawnZ.Min, params.SpawnZ.Max),
	}
	p.Velocity = sampleVelocity(src, params)
	p.Color = params.Palette[rng.IntRange(src, 0, len(params.Palette))]
	p.Size = Size{
		W: rng.Uniform(src, params.Width.Min, params.Width.Max),
		H: rng.Uniform(src, params.Height.Min, params.Height.Max),
	}
	p.Rotation = dynamo.Vec3{Z: rng.Uniform(src, 0, 2*math.Pi)}
	p.RotationSpeed = dynamo.Vec3{
		X: rng.Uniform(src, params.Spin.Min, params.Spin.Max),
		Y: rng.Uniform(src, params.Spin.Min, params.Spin.Max),
		Z: rng.Uniform(src, params.Spin.Min, params.Spin.Max),
	}
	p.RedirectInterval = rng.IntRange(src, params.RedirectMin, params.RedirectMax)
	return p
}

func sampleVelocity(src rng.Source, params *Params) dynamo.Vec3 {
	return dynamo.Vec3{
		X: rng.Uniform(src, params.DriftX.Min, params.DriftX.Max),
		Y: rng.Uniform(src, params.Fall.Min, params.Fall.Max),
		Z: rng.Uniform(src, params.DriftZ.Min, params.DriftZ.Max),
	}
}

// Step advances p by one frame. An inactive or frozen particle is returned
// unchanged and consumes no randomness.
func Step(p Particle, active bool, src rng.Source, params *Params) Particle {
	if !active || p.Frozen {
		return p
	}

	p.FramesSinceRedirect++
	if p.FramesSinceRedirect >= p.RedirectInterval {
		p.Velocity = sampleVelocity(src, params)
		p.FramesSinceRedirect = 0
		p.RedirectInterval = rng.IntRange(src, params.RedirectMin, params.RedirectMax)
	}

	p.Position = p.Position.Add(p.Velocity)
	p.Rotation = p.Rotation.Add(p.RotationSpeed)

	if p.Position.Y <= params.FloorY {
		p.Frozen = true
	}
	return p
}
