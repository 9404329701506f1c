package slide

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func inputContext(t Telemetry) InputContext {
	return InputContext{Performed: true, Ownership: LocalOwnership(), Telemetry: t}
}

func TestCrouchTogglesMidAir(t *testing.T) {
	animator, input := newMockAnimator(), &mockInput{sprintEnabled: true}
	rules := InputRules{World: &mockWorld{miss: true}, Animation: animator, Input: input}
	animator.SetAnimation(AnimationJumping, true)

	tm := running(5)
	tm.Grounded = false
	d := rules.Crouch(inputContext(tm))
	if !d.Handled || !d.Crouch {
		t.Fatalf("expected to crouch mid-air, got %+v", d)
	}
	if animator.params[AnimationJumping] || input.sprintEnabled {
		t.Fatal("expected jumping animation cleared and sprint disabled")
	}

	d = rules.Crouch(inputContext(crouched(tm)))
	if !d.Handled || d.Crouch {
		t.Fatalf("expected to stand up, got %+v", d)
	}
	if input.disables != 1 {
		t.Fatal("expected standing up to leave sprint bindings alone")
	}
}

func TestCrouchIgnored(t *testing.T) {
	rules := InputRules{}
	tests := map[string]func(*InputContext){
		"not performed": func(c *InputContext) { c.Performed = false },
		"menu open":     func(c *InputContext) { c.MenuOpen = true },
		"remote":        func(c *InputContext) { c.Ownership = Ownership{} },
		"typing":        func(c *InputContext) { c.TypingChat = true },
		"animation":     func(c *InputContext) { c.InSpecialAnimation = true },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := inputContext(running(5))
			mutate(&ctx)
			if d := rules.Crouch(ctx); d.Handled {
				t.Fatalf("expected event to be ignored, got %+v", d)
			}
		})
	}
}

func TestJumpWhileCrouched(t *testing.T) {
	animator := newMockAnimator()
	rules := InputRules{World: &mockWorld{miss: true}, Animation: animator}
	animator.SetAnimation(AnimationCrouching, true)

	d := rules.Jump(inputContext(crouched(running(5))))
	if !d.Jump {
		t.Fatal("expected a crouched character to jump")
	}
	if !approx(d.Stamina, 1-0.08) {
		t.Fatalf("expected jump stamina cost, got %v", d.Stamina)
	}
	if animator.params[AnimationCrouching] {
		t.Fatal("expected crouching animation to be cleared")
	}
}

func TestJumpNearGround(t *testing.T) {
	tm := running(5)
	tm.Grounded = false
	tm.Position = mgl64.Vec3{0, 0.1, 0}

	if d := (InputRules{World: &mockWorld{normal: Up}}).Jump(inputContext(tm)); !d.Jump {
		t.Fatal("expected a jump just above the ground")
	}
	if d := (InputRules{World: &mockWorld{miss: true}}).Jump(inputContext(tm)); d.Jump {
		t.Fatal("expected no jump in the air")
	}

	tm.Jumping = true
	if d := (InputRules{World: &mockWorld{normal: Up}}).Jump(inputContext(tm)); d.Jump {
		t.Fatal("expected no jump while already jumping")
	}
}

func TestJumpRejected(t *testing.T) {
	rules := InputRules{World: &mockWorld{normal: Up}}
	tests := map[string]func(*InputContext){
		"exhausted": func(c *InputContext) { c.Telemetry.Exhausted = true },
		"hindered":  func(c *InputContext) { c.MovementHindered = true },
		"menu open": func(c *InputContext) { c.MenuOpen = true },
		"host sliding": func(c *InputContext) {
			c.HostSliding = true
			c.HostSlidingTimer = 1
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := inputContext(running(5))
			mutate(&ctx)
			d := rules.Jump(ctx)
			if d.Jump || d.Stamina != 1 {
				t.Fatalf("expected jump to be rejected without cost, got %+v", d)
			}
		})
	}

	ctx := inputContext(running(5))
	ctx.MovementHindered, ctx.Underwater = true, true
	if !rules.Jump(ctx).Jump {
		t.Fatal("expected hindered movement underwater to allow jumping")
	}
	ctx = inputContext(running(5))
	ctx.HostSliding, ctx.HostSlidingTimer = true, 3
	if !rules.Jump(ctx).Jump {
		t.Fatal("expected a long host slide to allow jumping")
	}
}
