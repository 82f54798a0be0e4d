package viz

import (
	"math"

	"github.com/san-kum/eggburst/internal/dynamo"
	"github.com/san-kum/eggburst/internal/scene"
)

type segment struct {
	a, b dynamo.Vec3
}

// meshDivisor thins the engine's segment counts down to what reads well
// in Braille cells.
const meshDivisor = 8

// shellSegments returns the wireframe of one outer shell at the given hinge
// angle, in world space. The hinge pivots about the z axis through the
// bottom of the shell.
func shellSegments(d scene.ShellDesc, hingeAngle float64) []segment {
	g := d.Geometry
	ws := max(4, g.WidthSegments/meshDivisor)
	hs := max(3, g.HeightSegments/meshDivisor)
	r := g.OuterRadius
	pivot := d.Position.Add(dynamo.Vec3{Y: -r})

	point := func(phi, theta float64) dynamo.Vec3 {
		local := dynamo.Vec3{
			X: -r * math.Cos(phi) * math.Sin(theta),
			Y: r * math.Cos(theta),
			Z: r * math.Sin(phi) * math.Sin(theta),
		}
		placed := rotateY(local, d.Rotation.Y).Add(d.Position)
		return rotateZ(placed, pivot, hingeAngle)
	}

	const steps = 16
	segs := make([]segment, 0, (ws+1+hs)*steps)

	for j := 0; j <= ws; j++ {
		phi := g.PhiStart + g.PhiLength*float64(j)/float64(ws)
		prev := point(phi, 0)
		for k := 1; k <= steps; k++ {
			next := point(phi, math.Pi*float64(k)/steps)
			segs = append(segs, segment{prev, next})
			prev = next
		}
	}

	for i := 1; i < hs; i++ {
		theta := math.Pi * float64(i) / float64(hs)
		prev := point(g.PhiStart, theta)
		for k := 1; k <= steps; k++ {
			next := point(g.PhiStart+g.PhiLength*float64(k)/steps, theta)
			segs = append(segs, segment{prev, next})
			prev = next
		}
	}
	return segs
}

// bounds is a sub-pixel rectangle.
type bounds struct {
	minX, minY, maxX, maxY int
	ok                     bool
}

func (b *bounds) add(x, y int) {
	if !b.ok {
		*b = bounds{x, y, x, y, true}
		return
	}
	b.minX, b.maxX = min(b.minX, x), max(b.maxX, x)
	b.minY, b.maxY = min(b.minY, y), max(b.maxY, y)
}

// containsCell reports whether the canvas cell (col, row) overlaps b.
func (b bounds) containsCell(col, row int) bool {
	if !b.ok {
		return false
	}
	x0, y0 := col*2, row*4
	return x0+1 >= b.minX && x0 <= b.maxX && y0+3 >= b.minY && y0 <= b.maxY
}
