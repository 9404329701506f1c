package slide

import "github.com/go-gl/mathgl/mgl64"

// SurfaceMode is the physics material currently assigned to the character's collider.
type SurfaceMode uint8

const (
	SurfaceOriginal SurfaceMode = iota
	SurfaceSlide
)

func (m SurfaceMode) String() string {
	if m == SurfaceSlide {
		return "slide"
	}
	return "original"
}

// MovementApplier turns slide velocity into body movement and swaps the collider material
// between the body's original one and the slide material.
type MovementApplier struct {
	body BodyProvider

	original, slide SurfaceMaterial
	mode            SurfaceMode
}

// NewMovementApplier remembers the body's current material as its original material.
func NewMovementApplier(body BodyProvider, slide SurfaceMaterial) *MovementApplier {
	return &MovementApplier{
		body:     body,
		original: body.Surface(),
		slide:    slide,
	}
}

// Apply issues a single displacement of direction*speed*dt to the body and returns it. No call
// is made for a zero displacement.
func (m *MovementApplier) Apply(direction mgl64.Vec3, speed, dt float64) (mgl64.Vec3, bool) {
	displacement := direction.Mul(speed * dt)
	if displacement.LenSqr() == 0 {
		return mgl64.Vec3{}, false
	}
	m.body.Move(displacement)
	return displacement, true
}

// UseSlideSurface assigns the slide material if it is not assigned already.
func (m *MovementApplier) UseSlideSurface() {
	if m.mode == SurfaceSlide {
		return
	}
	m.body.SetSurface(m.slide)
	m.mode = SurfaceSlide
}

// RestoreSurface assigns the original material if the slide material is assigned.
func (m *MovementApplier) RestoreSurface() {
	if m.mode == SurfaceOriginal {
		return
	}
	m.body.SetSurface(m.original)
	m.mode = SurfaceOriginal
}

// Surface returns the material currently assigned.
func (m *MovementApplier) Surface() SurfaceMode {
	return m.mode
}
