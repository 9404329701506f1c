package slide

import "github.com/go-gl/mathgl/mgl64"

// Raycaster bridges the host world's physics raycast.
type Raycaster interface {
	// Raycast casts a ray from origin along direction for at most distance units, only
	// against surfaces on a layer included in mask.
	Raycast(origin, direction mgl64.Vec3, distance float64, mask uint32) (RaycastHit, bool)
}

// RaycastHit is the closest surface hit by a Raycaster.
type RaycastHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// BodyProvider bridges the character controller: the movement primitive, stamina and the
// physics material of the character's collider.
type BodyProvider interface {
	Move(displacement mgl64.Vec3)
	Surface() SurfaceMaterial
	SetSurface(material SurfaceMaterial)
	SetStamina(stamina float64)
}

// AnimationProvider is the animation parameter sink of the character's body animator.
type AnimationProvider interface {
	SetAnimation(param AnimationParam, value bool)
}

// AudioProvider plays the looping slide sound.
type AudioProvider interface {
	PlaySlide()
	StopSlide()
	SlidePlaying() bool
}

// InputProvider toggles input actions that conflict with sliding.
type InputProvider interface {
	EnableSprint()
	DisableSprint()
}
