package slide

import "github.com/go-gl/mathgl/mgl64"

// TickOutcome describes which path the simulator took for a tick.
type TickOutcome uint8

const (
	// TickOutcomeSkipped means this instance is not authoritative for the character.
	TickOutcomeSkipped TickOutcome = iota
	TickOutcomeDead
	TickOutcomeIdle
	TickOutcomeCrouching
	TickOutcomeSliding
	// TickOutcomeSlideEnded means a slide ended this tick and the physics update stopped early.
	TickOutcomeSlideEnded
)

func (o TickOutcome) String() string {
	switch o {
	case TickOutcomeSkipped:
		return "skipped"
	case TickOutcomeDead:
		return "dead"
	case TickOutcomeIdle:
		return "idle"
	case TickOutcomeCrouching:
		return "crouching"
	case TickOutcomeSliding:
		return "sliding"
	case TickOutcomeSlideEnded:
		return "slide_ended"
	}
	return "unknown"
}

// TickResult captures the outcome of a single simulation tick.
type TickResult struct {
	Outcome TickOutcome
	State   SlideState

	Speed     float64
	Direction mgl64.Vec3
	// Displacement is the movement issued to the body this tick, if any.
	Displacement mgl64.Vec3
	Moved        bool

	Started bool
	Ended   bool

	StaminaSpent float64
	Stamina      float64

	Surface    SurfaceMode
	Animations AnimationFlags
}
