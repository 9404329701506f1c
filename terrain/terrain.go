package terrain

import (
	"math"
	"sync"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/slide"
)

type entry struct {
	shape Shape
	layer Layer
}

// Terrain is a static collision world indexed by unit cells. It is safe for concurrent
// raycasts; shapes may be added while characters are being simulated.
type Terrain struct {
	mu      sync.RWMutex
	entries []entry
	cells   map[cube.Pos][]int
}

// New returns an empty terrain.
func New() *Terrain {
	return &Terrain{cells: make(map[cube.Pos][]int)}
}

// AddBox adds a solid box on the given layer.
func (t *Terrain) AddBox(bb cube.BBox, layer Layer) {
	t.Add(Box{BBox: bb}, layer)
}

// AddRamp adds a ramp rising towards uphill on the given layer.
func (t *Terrain) AddRamp(bb cube.BBox, uphill cube.Face, layer Layer) {
	t.Add(Ramp{BBox: bb, Uphill: uphill}, layer)
}

// Add adds a shape on the given layer and indexes every cell its bounds overlap.
func (t *Terrain) Add(s Shape, layer Layer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := len(t.entries)
	t.entries = append(t.entries, entry{shape: s, layer: layer})

	bb := s.Bounds()
	min, max := cube.PosFromVec3(bb.Min()), cube.PosFromVec3(bb.Max().Sub(mgl64.Vec3{1e-9, 1e-9, 1e-9}))
	for x := min.X(); x <= max.X(); x++ {
		for y := min.Y(); y <= max.Y(); y++ {
			for z := min.Z(); z <= max.Z(); z++ {
				pos := cube.Pos{x, y, z}
				t.cells[pos] = append(t.cells[pos], id)
			}
		}
	}
}

// Len returns the amount of shapes in the terrain.
func (t *Terrain) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Raycast returns the nearest shape surface hit by the ray, considering only shapes on a
// layer included in mask.
func (t *Terrain) Raycast(origin, direction mgl64.Vec3, distance float64, mask uint32) (slide.RaycastHit, bool) {
	if distance <= 0 || direction.LenSqr() == 0 {
		return slide.RaycastHit{}, false
	}
	end := origin.Add(direction.Normalize().Mul(distance))

	t.mu.RLock()
	defer t.mu.RUnlock()

	var (
		best    slide.RaycastHit
		found   bool
		visited = make(map[int]struct{})
	)
	best.Distance = math.MaxFloat64
	for pos := range game.CellsBetween(origin, end) {
		// A hit closer than this cell cannot be beaten by shapes further along the ray.
		if found && pos.Vec3Centre().Sub(origin).Len()-math.Sqrt(3) > best.Distance {
			break
		}
		for _, id := range t.cells[pos] {
			if _, ok := visited[id]; ok {
				continue
			}
			visited[id] = struct{}{}

			e := t.entries[id]
			if uint32(e.layer)&mask == 0 {
				continue
			}
			if hit, ok := e.shape.Intercept(origin, end); ok && hit.Distance < best.Distance {
				best, found = hit, true
			}
		}
	}
	return best, found
}
