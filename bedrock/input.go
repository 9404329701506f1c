package bedrock

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/slide"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// MovementMode is the movement authority negotiated with a Bedrock client.
type MovementMode uint8

const (
	ModeClientAuthoritative MovementMode = iota
	ModeServerAuthoritative
)

// OwnershipFor returns the ownership of a player connected through the proxy. Only players
// whose movement is server authoritative are simulated by the proxy; client authoritative
// players simulate themselves.
func OwnershipFor(mode MovementMode) slide.Ownership {
	if mode == ModeServerAuthoritative {
		return slide.LocalOwnership()
	}
	return slide.Ownership{IsOwner: true, IsControlled: true, IsServer: true}
}

// Intent is the locomotion intent carried by a single PlayerAuthInput packet.
type Intent struct {
	Crouch    bool
	Jump      bool
	StartJump bool
	Sprint    bool
	Walk      bool

	// EyePosition is the camera position reported by the client.
	EyePosition mgl64.Vec3
	Forward     mgl64.Vec3
	Delta       mgl64.Vec3
}

// IntentFromInput reads the locomotion intent of a PlayerAuthInput packet.
func IntentFromInput(pk *packet.PlayerAuthInput) Intent {
	return Intent{
		Crouch:    pk.InputData.Load(packet.InputFlagSneaking),
		Jump:      pk.InputData.Load(packet.InputFlagJumping),
		StartJump: pk.InputData.Load(packet.InputFlagStartJumping),
		Sprint:    pk.InputData.Load(packet.InputFlagSprinting),
		Walk:      pk.MoveVector.Len() > 1e-4,

		EyePosition: game.Vec32To64(pk.Position),
		Forward:     ForwardFromRotation(pk.Yaw, pk.Pitch),
		Delta:       game.Vec32To64(pk.Delta),
	}
}

// ForwardFromRotation converts a Bedrock yaw and pitch, in degrees, to a unit camera forward.
func ForwardFromRotation(yaw, pitch float32) mgl64.Vec3 {
	return game.Vec32To64(game.DirectionVector(yaw, pitch))
}

// Apply copies the intent onto telemetry. Grounded, stamina and the other values the client
// does not report are left untouched.
func (i Intent) Apply(t slide.Telemetry) slide.Telemetry {
	t.CrouchIntent = i.Crouch
	t.Jumping = i.Jump || i.StartJump
	t.Sprinting = i.Sprint
	t.Walking = i.Walk

	t.CameraPosition = i.EyePosition
	t.CameraForward = i.Forward
	t.Position = i.EyePosition.Sub(mgl64.Vec3{0, game.CameraHeight, 0})
	t.Velocity = i.Delta
	return t
}
