package viz

import (
	"math"

	"github.com/san-kum/eggburst/internal/dynamo"
)

// Camera orbits a target point and projects world space onto the canvas.
type Camera struct {
	Target     dynamo.Vec3
	Distance   float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera(zoom float64) *Camera {
	return &Camera{Target: dynamo.Vec3{Y: -2.2}, Distance: 12, RotX: 0.25, Zoom: zoom}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(4, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.05, c.Zoom/1.2) }

func (c *Camera) view(p dynamo.Vec3) dynamo.Vec3 {
	p = p.Sub(c.Target)
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}

// Project maps a world point to sub-pixel coordinates on a sw x sh canvas.
// depth grows toward the viewer; ok is false behind the camera.
func (c *Camera) Project(p dynamo.Vec3, sw, sh int) (x, y int, depth float64, ok bool) {
	v := c.view(p)
	if v.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - v.Z)
	unit := float64(min(sw, sh)) / 3.0 * c.Zoom
	x = int(v.X*persp*unit) + sw/2
	y = int(-v.Y*persp*unit) + sh/2
	return x, y, v.Z, true
}

// rotateZ turns p about the z axis through pivot.
func rotateZ(p, pivot dynamo.Vec3, a float64) dynamo.Vec3 {
	d := p.Sub(pivot)
	ca, sa := math.Cos(a), math.Sin(a)
	return dynamo.Vec3{X: d.X*ca - d.Y*sa, Y: d.X*sa + d.Y*ca, Z: d.Z}.Add(pivot)
}

func rotateY(p dynamo.Vec3, a float64) dynamo.Vec3 {
	ca, sa := math.Cos(a), math.Sin(a)
	return dynamo.Vec3{X: p.X*ca + p.Z*sa, Y: p.Y, Z: -p.X*sa + p.Z*ca}
}

// rotateEuler applies an XYZ Euler rotation.
func rotateEuler(p, r dynamo.Vec3) dynamo.Vec3 {
	cz, sz := math.Cos(r.Z), math.Sin(r.Z)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	p = rotateY(p, r.Y)
	cx, sx := math.Cos(r.X), math.Sin(r.X)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}
