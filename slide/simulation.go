package slide

import "github.com/go-gl/mathgl/mgl64"

// Tick runs the slide state machine once for a fixed physics tick of dt seconds.
func (s *Simulator) Tick(state *State, t Telemetry, o Ownership, dt float64) TickResult {
	if state == nil {
		return TickResult{}
	}
	t = t.Sanitize()

	if !ShouldSimulate(o) {
		// Another peer simulates this character. A slide we were running is cleaned up.
		if state.Sliding || state.Crouching {
			s.debugf("authority lost while %v, resetting", state.SlideState())
			s.Detach(state, t)
		}
		return TickResult{Outcome: TickOutcomeSkipped, Stamina: t.Stamina, Surface: s.mover.Surface()}
	}

	result := TickResult{Stamina: t.Stamina}
	result.Outcome = s.tick(state, &t, dt, &result)
	result.Animations = s.reconciler.Reconcile(state.SlideState(), t)

	result.State = state.SlideState()
	result.Speed = state.Speed
	result.Direction = state.Direction
	result.Surface = s.mover.Surface()
	result.Stamina = t.Stamina
	return result
}

func (s *Simulator) tick(state *State, t *Telemetry, dt float64, result *TickResult) TickOutcome {
	tuning := s.tuning
	wasSliding := state.Sliding
	outcome := TickOutcomeIdle

	switch {
	case t.Dead:
		state.Crouching, state.Sliding = false, false
		state.Kinematics = Kinematics{}
		outcome = TickOutcomeDead
	case !state.Crouching:
		state.Crouching = t.CrouchIntent
		if state.Crouching {
			cost := tuning.StartCostFor(t.CarriedWeight)
			velocity := t.Speed()
			state.Sliding = !t.Exhausted && t.Stamina >= cost && t.CrouchIntent && velocity > 0
			if state.Sliding && t.Grounded {
				state.Speed = velocity + tuning.BoostFor(t.CarriedWeight)
				s.spendStamina(t, cost, result)
				state.LastDirection = mgl64.Vec3{}
				state.SlideTicks = 0
				s.debugf("slide start: velocity=%.3f speed=%.3f cost=%.3f", velocity, state.Speed, cost)
			} else if state.Sliding {
				// Airborne: queue the slide. Crouching stays false so the check above runs
				// again once grounded.
				state.Crouching = false
			}
		} else {
			state.Sliding = false
		}
	case !t.CrouchIntent:
		state.Crouching, state.Sliding = false, false
	}

	if wasSliding && !state.Sliding {
		s.endSlide(state, *t, result)
		if outcome == TickOutcomeDead {
			return outcome
		}
		return TickOutcomeSlideEnded
	}
	if !wasSliding && state.Sliding {
		result.Started = true
		s.reconciler.SlideStarted(*t)
	}

	friction := tuning.AirFriction
	if t.Grounded {
		friction = tuning.BaseFriction
	}
	state.Speed *= friction
	state.clampSpeed(tuning.StopThreshold)

	if t.Jumping || !t.Grounded {
		// Keep the slide momentum through jumps and falls. This is the tick's only move, so a
		// grounded jump tick travels along the previous direction even though the slope is
		// sampled again below.
		result.Displacement, result.Moved = s.mover.Apply(state.LastDirection, state.Speed, dt)
	}

	if !state.Sliding && !state.Crouching {
		s.mover.RestoreSurface()
		return outcome
	}

	if t.Grounded && state.Sliding {
		sample := s.sampler.Sample(t.CameraPosition, tuning.CastDistance, tuning.CollisionMask)
		direction := sample.Direction(t.CameraForward)
		steepness := Steepness(direction)

		state.Direction = direction
		state.Speed += steepness * tuning.Gravity * tuning.WeightMultiplier(t.CarriedWeight) * dt
		state.clampSpeed(tuning.StopThreshold)
		state.LastDirection = direction
	} else if state.Sliding {
		state.Direction = state.LastDirection
	}

	if state.Sliding && (state.Speed >= tuning.StopThreshold || !t.Grounded) {
		if !result.Moved {
			result.Displacement, result.Moved = s.mover.Apply(state.Direction, state.Speed, dt)
		}
		s.mover.UseSlideSurface()
		if drain := tuning.DrainRate * dt; drain > 0 {
			s.spendStamina(t, drain, result)
		}
		state.SlideTicks++
		return TickOutcomeSliding
	}

	if state.Sliding {
		state.Sliding = false
		s.endSlide(state, *t, result)
		return TickOutcomeSlideEnded
	}
	s.mover.RestoreSurface()
	return TickOutcomeCrouching
}

// endSlide restores the presentation of a character that stopped sliding.
func (s *Simulator) endSlide(state *State, t Telemetry, result *TickResult) {
	result.Ended = true
	s.mover.RestoreSurface()
	s.reconciler.SlideEnded(state.SlideState(), t)
	s.debugf("slide end after %d ticks: speed=%.3f", state.SlideTicks, state.Speed)
	state.SlideTicks = 0
}

// spendStamina debits cost from the telemetry's stamina, clamped to [0, 1], and writes it to
// the body.
func (s *Simulator) spendStamina(t *Telemetry, cost float64, result *TickResult) {
	stamina := ClampFloat(t.Stamina-cost, 0, 1)
	result.StaminaSpent += t.Stamina - stamina
	t.Stamina = stamina
	s.Body.SetStamina(stamina)
}
