package terrain

import (
	"math"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/slide/game"
)

var down = mgl64.Vec3{0, -1, 0}

func TestRaycastFlatFloor(t *testing.T) {
	tr := New()
	tr.AddBox(cube.Box(-10, -1, -10, 10, 0, 10), LayerDefault)

	hit, ok := tr.Raycast(mgl64.Vec3{0.5, 1.62, 0.5}, down, 20, math.MaxUint32)
	if !ok {
		t.Fatal("expected to hit the floor")
	}
	if !game.ApproxEq(hit.Point.Y(), 0) {
		t.Fatalf("expected hit at y=0, got %v", hit.Point)
	}
	if !game.ApproxEq(hit.Distance, 1.62) {
		t.Fatalf("expected distance 1.62, got %v", hit.Distance)
	}
	if hit.Normal != (mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("expected up normal, got %v", hit.Normal)
	}
}

func TestRaycastMissOutOfRange(t *testing.T) {
	tr := New()
	tr.AddBox(cube.Box(-10, -1, -10, 10, 0, 10), LayerDefault)

	if _, ok := tr.Raycast(mgl64.Vec3{0.5, 30, 0.5}, down, 20, math.MaxUint32); ok {
		t.Fatal("expected no hit beyond cast distance")
	}
}

func TestRaycastRespectsMask(t *testing.T) {
	tr := New()
	tr.AddBox(cube.Box(-10, -1, -10, 10, 0, 10), LayerTriggers)

	if _, ok := tr.Raycast(mgl64.Vec3{0.5, 2, 0.5}, down, 20, uint32(LayerDefault|LayerPlayers)); ok {
		t.Fatal("expected trigger layer to be ignored")
	}
	if _, ok := tr.Raycast(mgl64.Vec3{0.5, 2, 0.5}, down, 20, uint32(LayerTriggers)); !ok {
		t.Fatal("expected trigger layer to be hit when in mask")
	}
}

func TestRaycastNearestWins(t *testing.T) {
	tr := New()
	tr.AddBox(cube.Box(-10, -1, -10, 10, 0, 10), LayerDefault)
	tr.AddBox(cube.Box(0, 2, 0, 1, 3, 1), LayerProps)

	hit, ok := tr.Raycast(mgl64.Vec3{0.5, 5, 0.5}, down, 20, math.MaxUint32)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !game.ApproxEq(hit.Point.Y(), 3) {
		t.Fatalf("expected the crate top at y=3, got %v", hit.Point)
	}
	if tr.Len() != 2 {
		t.Fatalf("expected 2 shapes, got %d", tr.Len())
	}
}

func TestRampNormalAndHit(t *testing.T) {
	tr := New()
	// Rises by 5 over 10 blocks towards +Z.
	tr.AddRamp(cube.Box(0, 0, 0, 4, 5, 10), cube.FaceSouth, LayerDefault)

	hit, ok := tr.Raycast(mgl64.Vec3{2, 10, 5}, down, 20, math.MaxUint32)
	if !ok {
		t.Fatal("expected to hit the ramp")
	}
	if !game.ApproxEq(hit.Point.Y(), 2.5) {
		t.Fatalf("expected hit at the middle of the ramp, got %v", hit.Point)
	}
	expected := mgl64.Vec3{0, 10, -5}.Normalize()
	if !game.ApproxEq(hit.Normal.Sub(expected).Len(), 0) {
		t.Fatalf("expected normal %v, got %v", expected, hit.Normal)
	}

	// Hits near the uphill end are higher.
	hit, ok = tr.Raycast(mgl64.Vec3{2, 10, 9}, down, 20, math.MaxUint32)
	if !ok || !game.ApproxEq(hit.Point.Y(), 4.5) {
		t.Fatalf("expected hit at y=4.5, got %v (%v)", hit.Point, ok)
	}
}

func TestRampIgnoresRaysFromBelow(t *testing.T) {
	r := Ramp{BBox: cube.Box(0, 0, 0, 4, 5, 10), Uphill: cube.FaceSouth}
	if _, ok := r.Intercept(mgl64.Vec3{2, -1, 5}, mgl64.Vec3{2, 10, 5}); ok {
		t.Fatal("expected no hit from below the inclined face")
	}
}

func TestRampIgnoresParallelRays(t *testing.T) {
	r := Ramp{BBox: cube.Box(0, 0, 0, 4, 5, 10), Uphill: cube.FaceSouth}
	if _, ok := r.Intercept(mgl64.Vec3{2, 2.5, 0}, mgl64.Vec3{2, 7.5, 10}); ok {
		t.Fatal("expected no hit for a ray running along the inclined face")
	}
}
