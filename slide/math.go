package slide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up vector.
var Up = mgl64.Vec3{0, 1, 0}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}

// ProjectOnPlane projects vec onto the plane described by normal. A zero normal leaves vec
// untouched.
func ProjectOnPlane(vec, normal mgl64.Vec3) mgl64.Vec3 {
	lenSqr := normal.LenSqr()
	if lenSqr < 1e-12 {
		return vec
	}
	return vec.Sub(normal.Mul(vec.Dot(normal) / lenSqr))
}

// NormalizeOr normalizes vec, returning fallback when vec has no length.
func NormalizeOr(vec, fallback mgl64.Vec3) mgl64.Vec3 {
	if vec.LenSqr() < 1e-12 {
		return fallback
	}
	return vec.Normalize()
}
