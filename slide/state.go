package slide

import "github.com/go-gl/mathgl/mgl64"

// SlideState is the locomotion state of a character. Whether the character is grounded or
// airborne is orthogonal to it and read from Telemetry.
type SlideState uint8

const (
	StateIdle SlideState = iota
	StateCrouching
	StateSliding
)

func (s SlideState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCrouching:
		return "crouching"
	case StateSliding:
		return "sliding"
	}
	return "unknown"
}

// Kinematics is the motion carried by a slide.
type Kinematics struct {
	// Speed is the slide speed along Direction. It is never negative.
	Speed float64
	// Direction is the unit direction the slide moved in this tick.
	Direction mgl64.Vec3
	// LastDirection is the latest grounded, slope projected direction. It is kept while
	// airborne so momentum continues along the last known line of travel.
	LastDirection mgl64.Vec3
}

// State is the per-character slide state owned by a single simulator.
type State struct {
	// Crouching and Sliding are tracked separately: a slide queued while airborne is
	// Sliding without Crouching until the character lands.
	Crouching bool
	Sliding   bool

	Kinematics

	// SlideTicks is the number of ticks the current slide has lasted.
	SlideTicks uint64
}

// SlideState returns the state the character is in.
func (s *State) SlideState() SlideState {
	switch {
	case s.Sliding:
		return StateSliding
	case s.Crouching:
		return StateCrouching
	}
	return StateIdle
}

// Reset returns the state to Idle with no carried motion.
func (s *State) Reset() {
	*s = State{}
}

// clampSpeed zeroes speeds at or below the stop threshold, including negative speeds.
func (s *State) clampSpeed(threshold float64) {
	if s.Speed <= threshold || s.Speed < 0 {
		s.Speed = 0
	}
}
