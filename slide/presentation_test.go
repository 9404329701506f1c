package slide

import "testing"

func TestReconcileIsIdempotent(t *testing.T) {
	animator, audio := newMockAnimator(), &mockAudio{}
	r := Reconciler{Animator: animator, Audio: audio, Input: &mockInput{}}
	tm := running(5)

	first := r.Reconcile(StateSliding, tm)
	second := r.Reconcile(StateSliding, tm)
	if first != second || animator.flags() != first {
		t.Fatalf("expected identical flags, got %+v and %+v", first, second)
	}
	if audio.plays != 1 || !audio.playing {
		t.Fatalf("expected a single play call, got %d", audio.plays)
	}

	r.Reconcile(StateIdle, tm)
	r.Reconcile(StateIdle, tm)
	if audio.stop != 1 || audio.playing {
		t.Fatalf("expected a single stop call, got %d", audio.stop)
	}
}

func TestReconcileOverridesClobberedFlags(t *testing.T) {
	animator := newMockAnimator()
	r := Reconciler{Animator: animator, Audio: &mockAudio{}, Input: &mockInput{}}

	r.Reconcile(StateSliding, running(5))
	// Another system flips the animator between ticks.
	animator.SetAnimation(AnimationSprinting, true)
	animator.SetAnimation(AnimationCrouching, false)

	r.Reconcile(StateSliding, running(5))
	if animator.flags() != (AnimationFlags{Crouching: true}) {
		t.Fatalf("expected the reconciler to win, got %+v", animator.flags())
	}
}

func TestFlagsForMirrorsTelemetry(t *testing.T) {
	tm := Telemetry{Walking: true, Jumping: true, CrouchIntent: true}
	flags := FlagsFor(StateCrouching, tm)
	if flags != (AnimationFlags{Walking: true, Jumping: true, Crouching: true}) {
		t.Fatalf("unexpected flags %+v", flags)
	}
	if FlagsFor(StateSliding, tm) != (AnimationFlags{Crouching: true}) {
		t.Fatal("expected sliding to force a crouch")
	}
}

func TestSlideCallbacksToggleSprint(t *testing.T) {
	input := &mockInput{sprintEnabled: true}
	r := Reconciler{Animator: newMockAnimator(), Audio: &mockAudio{}, Input: input}

	r.SlideStarted(running(5))
	if input.sprintEnabled {
		t.Fatal("expected sprint to be disabled while sliding")
	}
	r.SlideEnded(StateCrouching, running(5))
	if !input.sprintEnabled {
		t.Fatal("expected sprint to be re-enabled")
	}
}
