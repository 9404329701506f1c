package slide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Telemetry is the locomotion state of a character, read from its controller once per tick.
// The simulator never mutates it directly; stamina and movement changes go through the
// BodyProvider.
type Telemetry struct {
	Grounded  bool
	Velocity  mgl64.Vec3
	Dead      bool
	Exhausted bool

	// CrouchIntent is whether the character currently wants to crouch.
	CrouchIntent bool
	// Jumping is whether a jump is currently in progress.
	Jumping   bool
	Walking   bool
	Sprinting bool

	Stamina       float64
	CarriedWeight float64

	CameraPosition mgl64.Vec3
	CameraForward  mgl64.Vec3
	Position       mgl64.Vec3
}

// Speed returns the magnitude of the character's velocity.
func (t Telemetry) Speed() float64 {
	return t.Velocity.Len()
}

// Sanitize returns a copy of the telemetry with stamina clamped to [0, 1] and carried
// weight no lower than 1.
func (t Telemetry) Sanitize() Telemetry {
	t.Stamina = ClampFloat(t.Stamina, 0, 1)
	if math.IsNaN(t.CarriedWeight) || t.CarriedWeight < 1 {
		t.CarriedWeight = 1
	}
	return t
}

// Ownership holds the network role flags of a character instance.
type Ownership struct {
	IsOwner         bool
	IsControlled    bool
	IsServer        bool
	IsHostObject    bool
	IsTestingPlayer bool
}

// LocalOwnership returns the ownership of a character controlled by a single-player host.
func LocalOwnership() Ownership {
	return Ownership{IsOwner: true, IsControlled: true, IsServer: true, IsHostObject: true}
}
