package slide

import "github.com/oomph-ac/slide/game"

// InputContext is the character state relevant to a crouch or jump input event.
type InputContext struct {
	// Performed is false for started and cancelled phases of the input action.
	Performed bool

	MenuOpen           bool
	TypingChat         bool
	InSpecialAnimation bool
	// MovementHindered is set while something slows the character, such as mud.
	MovementHindered bool
	Underwater       bool

	Ownership Ownership
	Telemetry Telemetry

	// HostSliding and HostSlidingTimer describe the host controller's own sliding (on steep
	// slopes), which delays jumping.
	HostSliding      bool
	HostSlidingTimer float64
}

// CrouchDecision is the result of a crouch input event.
type CrouchDecision struct {
	// Handled is false when the event was ignored.
	Handled bool
	// Crouch is the crouch state the character should switch to.
	Crouch bool
}

// JumpDecision is the result of a jump input event.
type JumpDecision struct {
	Jump bool
	// Stamina is the stamina the character should have after jumping.
	Stamina float64
}

// InputRules decides crouch and jump input events so that crouching works mid-air and
// jumping works while crouched, which is what makes jump slides possible. It applies the
// animation and sprint side effects itself and leaves the controller update to the caller.
type InputRules struct {
	World Raycaster
	Mask  uint32

	Animation AnimationProvider
	Input     InputProvider
}

func (r InputRules) accepting(ctx InputContext) bool {
	return !ctx.MenuOpen && ShouldSimulate(ctx.Ownership) && !ctx.InSpecialAnimation && !ctx.TypingChat
}

// Crouch toggles crouching. Unlike the host's default handler it accepts the event while
// airborne.
func (r InputRules) Crouch(ctx InputContext) CrouchDecision {
	if !ctx.Performed || !r.accepting(ctx) {
		return CrouchDecision{}
	}

	crouch := !ctx.Telemetry.CrouchIntent
	if r.Animation != nil {
		r.Animation.SetAnimation(AnimationJumping, false)
	}
	if crouch && r.Input != nil {
		r.Input.DisableSprint()
	}
	return CrouchDecision{Handled: true, Crouch: crouch}
}

// Jump decides whether a jump starts. Unlike the host's default handler a crouching
// character may jump; doing so stands it up.
func (r InputRules) Jump(ctx InputContext) JumpDecision {
	t := ctx.Telemetry.Sanitize()
	if !r.accepting(ctx) {
		return JumpDecision{Stamina: t.Stamina}
	}
	if (ctx.MovementHindered && !ctx.Underwater) || t.Exhausted {
		return JumpDecision{Stamina: t.Stamina}
	}

	nearGround := false
	if r.World != nil {
		_, nearGround = r.World.Raycast(t.Position, down, game.NearGroundDistance, r.Mask)
	}
	canJump := (t.Grounded || (!t.Jumping && nearGround)) &&
		!t.Jumping &&
		(!ctx.HostSliding || ctx.HostSlidingTimer > game.HostSlideJumpDelay)
	if !canJump {
		return JumpDecision{Stamina: t.Stamina}
	}

	if r.Animation != nil {
		r.Animation.SetAnimation(AnimationCrouching, false)
	}
	return JumpDecision{
		Jump:    true,
		Stamina: ClampFloat(t.Stamina-game.JumpStaminaCost, 0, 1),
	}
}
