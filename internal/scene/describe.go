package scene

import (
	"math"

	"github.com/san-kum/eggburst/internal/dynamo"
	"github.com/san-kum/eggburst/internal/particle"
)

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Sign is -1 for the left shell and +1 for the right one.
func (s Side) Sign() float64 {
	if s == Right {
		return 1
	}
	return -1
}

// Geometry describes a thick hemispherical shell: an outer and inner
// half-sphere joined by a ring at the cut.
type Geometry struct {
	OuterRadius    float64
	InnerRadius    float64
	WidthSegments  int
	HeightSegments int
	PhiStart       float64
	PhiLength      float64
}

func DefaultGeometry() Geometry {
	return Geometry{
		OuterRadius:    1,
		InnerRadius:    0.95,
		WidthSegments:  64,
		HeightSegments: 32,
		PhiStart:       0,
		PhiLength:      math.Pi,
	}
}

// ShellDesc is one shell group. The hinge rotation is applied about the
// group's z axis on top of the static placement.
type ShellDesc struct {
	Side     Side
	Position dynamo.Vec3
	Rotation dynamo.Vec3
	Color    string
	Hinge    float64
	Hovered  bool
	Geometry Geometry
}

// QuadDesc is one confetti quad with its static look and current pose.
type QuadDesc struct {
	Index    int
	Size     particle.Size
	Color    particle.Color
	Position dynamo.Vec3
	Rotation dynamo.Vec3
	Frozen   bool
}

type Description struct {
	Shells    [2]ShellDesc
	Particles []QuadDesc
}

func baseShell(side Side, g Geometry) ShellDesc {
	d := ShellDesc{
		Side:     side,
		Position: dynamo.Vec3{X: 0.2 * side.Sign()},
		Rotation: dynamo.Vec3{Y: math.Pi / 2 * side.Sign()},
		Geometry: g,
	}
	if side == Left {
		d.Color = "skyblue"
	} else {
		d.Color = "pink"
	}
	return d
}

// Describe returns the current declarative scene.
func (s *Scene) Describe() Description {
	angles := s.anim.Angles()
	snap := s.machine.Snapshot()

	var d Description
	for _, side := range []Side{Left, Right} {
		sd := baseShell(side, s.geometry)
		sd.Hovered = snap.Hovered
		if side == Left {
			sd.Hinge = angles.Left
		} else {
			sd.Hinge = angles.Right
		}
		d.Shells[side] = sd
	}

	d.Particles = make([]QuadDesc, 0, s.field.Len())
	s.field.Each(func(i int, p particle.Particle) {
		d.Particles = append(d.Particles, QuadDesc{
			Index:    i,
			Size:     p.Size,
			Color:    p.Color,
			Position: p.Position,
			Rotation: p.Rotation,
			Frozen:   p.Frozen,
		})
	})
	return d
}
