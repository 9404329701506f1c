package slide

import (
	"math"

	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/oerror"
)

// SurfaceMaterial is a physics material that can be assigned to a character's collider.
type SurfaceMaterial struct {
	Name            string  `toml:"name" yaml:"name"`
	StaticFriction  float64 `toml:"static_friction" yaml:"static_friction"`
	DynamicFriction float64 `toml:"dynamic_friction" yaml:"dynamic_friction"`
}

// Tuning holds the constants of a character archetype. A Tuning is never mutated once a
// simulator has been created with it.
type Tuning struct {
	// InitialBoost is the speed added on top of the carried velocity when a slide starts.
	InitialBoost float64 `toml:"initial_boost" yaml:"initial_boost"`
	// BaseFriction multiplies the slide speed every grounded tick.
	BaseFriction float64 `toml:"base_friction" yaml:"base_friction"`
	// AirFriction multiplies the slide speed every airborne tick.
	AirFriction float64 `toml:"air_friction" yaml:"air_friction"`
	// Gravity is the slope acceleration constant.
	Gravity float64 `toml:"gravity" yaml:"gravity"`
	// StartCost is the stamina fraction spent when a slide starts.
	StartCost float64 `toml:"start_cost" yaml:"start_cost"`
	// DrainRate is the stamina fraction drained per second while sliding.
	DrainRate float64 `toml:"drain_rate" yaml:"drain_rate"`
	// StopThreshold is the slide speed below which a grounded slide ends.
	StopThreshold float64 `toml:"stop_threshold" yaml:"stop_threshold"`
	// WeightFactor scales how strongly carried weight affects costs, boost and slope
	// acceleration.
	WeightFactor float64 `toml:"weight_factor" yaml:"weight_factor"`

	CastDistance  float64         `toml:"cast_distance" yaml:"cast_distance"`
	CollisionMask uint32          `toml:"collision_mask" yaml:"collision_mask"`
	SlideMaterial SurfaceMaterial `toml:"slide_material" yaml:"slide_material"`
}

// DefaultTuning returns the tuning of the default player archetype.
func DefaultTuning() Tuning {
	return Tuning{
		InitialBoost:  game.DefaultInitialSlideBoost,
		BaseFriction:  game.DefaultSlideFriction,
		AirFriction:   game.DefaultSlideAirFriction,
		Gravity:       game.DefaultSlideGravity,
		StartCost:     game.DefaultSlideStartCost,
		DrainRate:     0,
		StopThreshold: game.DefaultSlideStopThreshold,
		WeightFactor:  1,
		CastDistance:  game.SlopeCastDistance,
		CollisionMask: math.MaxUint32,
		SlideMaterial: SurfaceMaterial{
			Name:            "PlayerSlideMaterial",
			StaticFriction:  game.SlideMaterialFriction,
			DynamicFriction: game.SlideMaterialFriction,
		},
	}
}

// WeightMultiplier returns the multiplier derived from the given carried weight. A weight of
// 1 (nothing carried) always yields 1.
func (t Tuning) WeightMultiplier(weight float64) float64 {
	return math.Max(1, 1+(weight-1)*t.WeightFactor)
}

// StartCostFor returns the stamina needed to start a slide while carrying weight.
func (t Tuning) StartCostFor(weight float64) float64 {
	return t.StartCost * t.WeightMultiplier(weight)
}

// BoostFor returns the initial speed boost granted while carrying weight.
func (t Tuning) BoostFor(weight float64) float64 {
	return t.InitialBoost / t.WeightMultiplier(weight)
}

// Validate checks that the tuning describes a simulation that can terminate a slide.
func (t Tuning) Validate() error {
	switch {
	case t.StopThreshold <= 0:
		return oerror.New("stop threshold must be positive, got %v", t.StopThreshold)
	case t.BaseFriction <= 0 || t.BaseFriction > 1:
		return oerror.New("base friction must be in (0, 1], got %v", t.BaseFriction)
	case t.AirFriction <= 0 || t.AirFriction > 1:
		return oerror.New("air friction must be in (0, 1], got %v", t.AirFriction)
	case t.InitialBoost < 0:
		return oerror.New("initial boost must not be negative, got %v", t.InitialBoost)
	case t.StartCost < 0 || t.DrainRate < 0:
		return oerror.New("stamina costs must not be negative (start %v, drain %v)", t.StartCost, t.DrainRate)
	case t.WeightFactor < 0:
		return oerror.New("weight factor must not be negative, got %v", t.WeightFactor)
	case t.CastDistance <= 0:
		return oerror.New("slope cast distance must be positive, got %v", t.CastDistance)
	}
	return nil
}
