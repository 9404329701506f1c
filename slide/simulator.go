package slide

import "github.com/oomph-ac/slide/assert"

// SimulationOptions define optional simulator behavior.
type SimulationOptions struct {
	// Debugf receives internal simulation trace logs for callers that need deep diagnostics.
	Debugf func(format string, args ...any)
}

// Simulator runs the slide state machine of a single character using the provided adapters.
// It is created once when the character is attached and is not safe for concurrent use.
type Simulator struct {
	World     Raycaster
	Body      BodyProvider
	Animation AnimationProvider
	Audio     AudioProvider
	Input     InputProvider

	Options SimulationOptions

	tuning     Tuning
	sampler    SlopeSampler
	mover      *MovementApplier
	reconciler Reconciler
}

// NewSimulator builds a simulator running with the tuning passed. World and Body are
// required; presentation adapters left nil are replaced by no-ops.
func NewSimulator(sim Simulator, tuning Tuning) *Simulator {
	assert.IsTrue(sim.World != nil, "simulator requires a world raycaster")
	assert.IsTrue(sim.Body != nil, "simulator requires a body")
	if sim.Animation == nil {
		sim.Animation = nopPresentation{}
	}
	if sim.Audio == nil {
		sim.Audio = nopPresentation{}
	}
	if sim.Input == nil {
		sim.Input = nopPresentation{}
	}

	s := &sim
	s.tuning = tuning
	s.sampler = SlopeSampler{World: s.World}
	s.mover = NewMovementApplier(s.Body, tuning.SlideMaterial)
	s.reconciler = Reconciler{Animator: s.Animation, Audio: s.Audio, Input: s.Input}
	return s
}

// Tuning returns the tuning the simulator was created with.
func (s *Simulator) Tuning() Tuning {
	return s.tuning
}

// Surface returns the material currently assigned to the body.
func (s *Simulator) Surface() SurfaceMode {
	return s.mover.Surface()
}

// Detach ends any active slide and resets state, restoring the body's original material.
func (s *Simulator) Detach(state *State, t Telemetry) {
	if state == nil {
		return
	}
	wasActive := state.Sliding
	state.Reset()
	s.mover.RestoreSurface()
	if wasActive {
		s.reconciler.SlideEnded(StateIdle, t.Sanitize())
	}
}

func (s *Simulator) debugf(format string, args ...any) {
	if s.Options.Debugf != nil {
		s.Options.Debugf(format, args...)
	}
}
