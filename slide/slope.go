package slide

import "github.com/go-gl/mathgl/mgl64"

var down = mgl64.Vec3{0, -1, 0}

// SlopeSample is the ground found below a character.
type SlopeSample struct {
	HasHit bool
	Normal mgl64.Vec3
	Point  mgl64.Vec3
}

// SlopeSampler queries the surface below a point. It holds no state.
type SlopeSampler struct {
	World Raycaster
}

// Sample casts straight down from origin. A miss is a valid outcome meaning there is no
// ground within distance.
func (s SlopeSampler) Sample(origin mgl64.Vec3, distance float64, mask uint32) SlopeSample {
	if s.World == nil {
		return SlopeSample{}
	}
	hit, ok := s.World.Raycast(origin, down, distance, mask)
	if !ok {
		return SlopeSample{}
	}
	return SlopeSample{HasHit: true, Normal: hit.Normal, Point: hit.Point}
}

// Direction returns forward projected onto the sampled surface and normalized. On a miss the
// unprojected forward is used as is, even if it diverges from the actual floor.
func (s SlopeSample) Direction(forward mgl64.Vec3) mgl64.Vec3 {
	if !s.HasHit {
		return forward
	}
	return NormalizeOr(ProjectOnPlane(forward, s.Normal), forward)
}

// Steepness returns how much a direction points downhill: positive when descending.
func Steepness(direction mgl64.Vec3) float64 {
	return -direction.Dot(Up)
}
