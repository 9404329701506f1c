package slide

import "github.com/go-gl/mathgl/mgl64"

type mockWorld struct {
	normal mgl64.Vec3
	miss   bool
	casts  int
}

func (w *mockWorld) Raycast(origin, direction mgl64.Vec3, distance float64, mask uint32) (RaycastHit, bool) {
	w.casts++
	if w.miss {
		return RaycastHit{}, false
	}
	return RaycastHit{Point: origin.Sub(mgl64.Vec3{0, 1.62, 0}), Normal: w.normal, Distance: 1.62}, true
}

type mockBody struct {
	moves       []mgl64.Vec3
	surface     SurfaceMaterial
	surfaceSets int
	stamina     float64
	staminaSets int
}

func newMockBody() *mockBody {
	return &mockBody{surface: SurfaceMaterial{Name: "original", StaticFriction: 0.6, DynamicFriction: 0.6}}
}

func (b *mockBody) Move(displacement mgl64.Vec3) { b.moves = append(b.moves, displacement) }
func (b *mockBody) Surface() SurfaceMaterial     { return b.surface }
func (b *mockBody) SetSurface(m SurfaceMaterial) {
	b.surface = m
	b.surfaceSets++
}
func (b *mockBody) SetStamina(stamina float64) {
	b.stamina = stamina
	b.staminaSets++
}

type mockAnimator struct {
	params map[AnimationParam]bool
	writes int
}

func newMockAnimator() *mockAnimator {
	return &mockAnimator{params: make(map[AnimationParam]bool)}
}

func (a *mockAnimator) SetAnimation(param AnimationParam, value bool) {
	a.params[param] = value
	a.writes++
}

func (a *mockAnimator) flags() AnimationFlags {
	return AnimationFlags{
		Walking:   a.params[AnimationWalking],
		Sprinting: a.params[AnimationSprinting],
		Jumping:   a.params[AnimationJumping],
		Crouching: a.params[AnimationCrouching],
	}
}

type mockAudio struct {
	playing     bool
	plays, stop int
}

func (a *mockAudio) PlaySlide() {
	a.playing = true
	a.plays++
}
func (a *mockAudio) StopSlide() {
	a.playing = false
	a.stop++
}
func (a *mockAudio) SlidePlaying() bool { return a.playing }

type mockInput struct {
	sprintEnabled     bool
	enables, disables int
}

func (i *mockInput) EnableSprint() {
	i.sprintEnabled = true
	i.enables++
}
func (i *mockInput) DisableSprint() {
	i.sprintEnabled = false
	i.disables++
}

type harness struct {
	sim      *Simulator
	state    *State
	world    *mockWorld
	body     *mockBody
	animator *mockAnimator
	audio    *mockAudio
	input    *mockInput
}

const dt = 1.0 / 50.0

func newHarness(tuning Tuning) *harness {
	h := &harness{
		state:    &State{},
		world:    &mockWorld{normal: Up},
		body:     newMockBody(),
		animator: newMockAnimator(),
		audio:    &mockAudio{},
		input:    &mockInput{sprintEnabled: true},
	}
	h.sim = NewSimulator(Simulator{
		World:     h.world,
		Body:      h.body,
		Animation: h.animator,
		Audio:     h.audio,
		Input:     h.input,
	}, tuning)
	return h
}

func (h *harness) tick(t Telemetry) TickResult {
	return h.sim.Tick(h.state, t, LocalOwnership(), dt)
}

// running returns the telemetry of a grounded character running along +Z with full stamina.
func running(speed float64) Telemetry {
	return Telemetry{
		Grounded:       true,
		Velocity:       mgl64.Vec3{0, 0, speed},
		Walking:        true,
		Sprinting:      true,
		Stamina:        1,
		CarriedWeight:  1,
		CameraPosition: mgl64.Vec3{0, 1.62, 0},
		CameraForward:  mgl64.Vec3{0, 0, 1},
	}
}

func crouched(t Telemetry) Telemetry {
	t.CrouchIntent = true
	return t
}
