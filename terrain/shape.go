package terrain

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/slide"
)

// Layer is a collision layer bit. A raycast only hits shapes whose layer is in its mask.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerPlayers
	LayerProps
	LayerTriggers
)

// Shape is a solid piece of terrain.
type Shape interface {
	// Bounds returns the box enclosing the shape.
	Bounds() cube.BBox
	// Intercept returns where the segment from start to end first enters the shape.
	Intercept(start, end mgl64.Vec3) (slide.RaycastHit, bool)
}

// Box is an axis aligned solid box.
type Box struct {
	BBox cube.BBox
}

func (b Box) Bounds() cube.BBox {
	return b.BBox
}

func (b Box) Intercept(start, end mgl64.Vec3) (slide.RaycastHit, bool) {
	result, ok := trace.BBoxIntercept(b.BBox, start, end)
	if !ok {
		return slide.RaycastHit{}, false
	}
	return slide.RaycastHit{
		Point:    result.Position(),
		Normal:   FaceNormal(result.Face()),
		Distance: result.Position().Sub(start).Len(),
	}, true
}

// Ramp is a wedge filling the part of its bounds below an inclined plane. The plane rises
// from the bottom of the bounds on one side to the top on the side of Uphill. Only the
// inclined face can be hit.
type Ramp struct {
	BBox   cube.BBox
	Uphill cube.Face
}

func (r Ramp) Bounds() cube.BBox {
	return r.BBox
}

// Normal returns the unit normal of the ramp's inclined face.
func (r Ramp) Normal() mgl64.Vec3 {
	uphill := FaceNormal(r.Uphill)
	size := r.BBox.Max().Sub(r.BBox.Min())
	run := math.Abs(size.Dot(uphill))
	rise := size.Y()
	return slide.NormalizeOr(slide.Up.Mul(run).Sub(uphill.Mul(rise)), slide.Up)
}

func (r Ramp) Intercept(start, end mgl64.Vec3) (slide.RaycastHit, bool) {
	normal := r.Normal()
	segment := end.Sub(start)
	denom := segment.Dot(normal)
	if denom >= 0 || game.ApproxEq(denom, 0) {
		// Parallel to the face or hitting it from below.
		return slide.RaycastHit{}, false
	}

	min, max := r.BBox.Min(), r.BBox.Max()
	center := min.Add(max).Mul(0.5)
	t := center.Sub(start).Dot(normal) / denom
	if t < 0 || t > 1 {
		return slide.RaycastHit{}, false
	}
	point := start.Add(segment.Mul(t))
	if !r.BBox.Grow(1e-6).Vec3Within(point) {
		return slide.RaycastHit{}, false
	}
	return slide.RaycastHit{Point: point, Normal: normal, Distance: segment.Len() * t}, true
}

// FaceNormal returns the outward unit normal of a box face.
func FaceNormal(f cube.Face) mgl64.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl64.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl64.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl64.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl64.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl64.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl64.Vec3{1, 0, 0}
	}
	return mgl64.Vec3{}
}
