package game

const (
	DefaultInitialSlideBoost  = 15.0
	DefaultSlideFriction      = 0.95
	DefaultSlideAirFriction   = 0.99
	DefaultSlideGravity       = 30.0
	DefaultSlideStartCost     = 0.08
	DefaultSlideStopThreshold = 0.1
	SlideMaterialFriction     = 0.1

	// SlopeCastDistance is how far below the camera the ground is searched for.
	SlopeCastDistance = 20.0

	// NearGroundDistance is how close to the ground a falling character must be to jump.
	NearGroundDistance = 0.15
	JumpStaminaCost    = 0.08
	// HostSlideJumpDelay is how long, in seconds, the host's own slope slide blocks jumping.
	HostSlideJumpDelay = 2.5

	DefaultTickRate = 50
	CameraHeight    = 1.62
	WorldGravity    = 20.0
)
