package slide

// AnimationParam is a boolean parameter of the body animator.
type AnimationParam uint8

const (
	AnimationWalking AnimationParam = iota
	AnimationSprinting
	AnimationJumping
	AnimationCrouching
)

func (p AnimationParam) String() string {
	switch p {
	case AnimationWalking:
		return "Walking"
	case AnimationSprinting:
		return "Sprinting"
	case AnimationJumping:
		return "Jumping"
	case AnimationCrouching:
		return "Crouching"
	}
	return "Unknown"
}

// AnimationFlags are the values of the four animation parameters owned by the reconciler.
type AnimationFlags struct {
	Walking, Sprinting, Jumping, Crouching bool
}

// FlagsFor derives the animation flags of a character. Sliding always shows a crouch,
// otherwise the character's own locomotion is mirrored.
func FlagsFor(state SlideState, t Telemetry) AnimationFlags {
	if state == StateSliding {
		return AnimationFlags{Crouching: true}
	}
	return AnimationFlags{
		Walking:   t.Walking,
		Sprinting: t.Sprinting,
		Jumping:   t.Jumping,
		Crouching: t.CrouchIntent,
	}
}

// Reconciler keeps the animator and the slide sound consistent with the simulated state.
// Other systems may overwrite animation parameters between ticks, so every parameter is
// written on every call.
type Reconciler struct {
	Animator AnimationProvider
	Audio    AudioProvider
	Input    InputProvider
}

// Reconcile writes the animation flags for state and starts or stops the slide sound when
// its playback disagrees with state. Repeated calls with the same input are no-ops for audio.
func (r Reconciler) Reconcile(state SlideState, t Telemetry) AnimationFlags {
	flags := FlagsFor(state, t)
	r.Animator.SetAnimation(AnimationWalking, flags.Walking)
	r.Animator.SetAnimation(AnimationSprinting, flags.Sprinting)
	r.Animator.SetAnimation(AnimationJumping, flags.Jumping)
	r.Animator.SetAnimation(AnimationCrouching, flags.Crouching)

	playing := r.Audio.SlidePlaying()
	if state == StateSliding && !playing {
		r.Audio.PlaySlide()
	} else if state != StateSliding && playing {
		r.Audio.StopSlide()
	}
	return flags
}

// SlideStarted disables sprinting and presents the slide.
func (r Reconciler) SlideStarted(t Telemetry) {
	r.Input.DisableSprint()
	r.Reconcile(StateSliding, t)
}

// SlideEnded re-enables sprinting and presents the state the character fell back to.
func (r Reconciler) SlideEnded(state SlideState, t Telemetry) {
	r.Input.EnableSprint()
	r.Reconcile(state, t)
}
