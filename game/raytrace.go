package game

import (
	"iter"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// CellsBetween yields every unit cell a segment from start to end passes through, in order.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func CellsBetween(start, end mgl64.Vec3) iter.Seq[cube.Pos] {
	return func(yield func(cube.Pos) bool) {
		delta := end.Sub(start)
		if delta.LenSqr() <= 0 {
			yield(cube.PosFromVec3(start))
			return
		}
		dirVec := delta.Normalize()

		radius := delta.Len()
		stepX, stepY, stepZ := Signum(dirVec.X()), Signum(dirVec.Y()), Signum(dirVec.Z())

		tMaxX := rayTraceDistanceToBoundary(start.X(), dirVec.X())
		tMaxY := rayTraceDistanceToBoundary(start.Y(), dirVec.Y())
		tMaxZ := rayTraceDistanceToBoundary(start.Z(), dirVec.Z())

		tDeltaX, tDeltaY, tDeltaZ := 0.0, 0.0, 0.0
		if dirVec.X() != 0 {
			tDeltaX = stepX / dirVec.X()
		}
		if dirVec.Y() != 0 {
			tDeltaY = stepY / dirVec.Y()
		}
		if dirVec.Z() != 0 {
			tDeltaZ = stepZ / dirVec.Z()
		}

		current := cube.PosFromVec3(start)
		for {
			if !yield(current) {
				return
			}

			if tMaxX < tMaxY && tMaxX < tMaxZ {
				if tMaxX > radius {
					return
				}
				current = current.Add(cube.Pos{int(stepX), 0, 0})
				tMaxX += tDeltaX
			} else if tMaxY < tMaxZ {
				if tMaxY > radius {
					return
				}
				current = current.Add(cube.Pos{0, int(stepY), 0})
				tMaxY += tDeltaY
			} else {
				if tMaxZ > radius {
					return
				}
				current = current.Add(cube.Pos{0, 0, int(stepZ)})
				tMaxZ += tDeltaZ
			}
		}
	}
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func rayTraceDistanceToBoundary(s, ds float64) float64 {
	if ds == 0 {
		return math.MaxFloat64
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math.Floor(s))) / ds
}
