package main

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/slide/terrain"
)

const (
	rampStart  = 20.0
	rampEnd    = 40.0
	rampHeight = 10.0
)

// newCourse builds a flat field with a wide ramp rising towards +Z and a crate to slide
// past.
func newCourse() *terrain.Terrain {
	tr := terrain.New()
	tr.AddBox(cube.Box(-100, -1, -100, 100, 0, 100), terrain.LayerDefault)
	tr.AddRamp(cube.Box(-20, 0, rampStart, 20, rampHeight, rampEnd), cube.FaceSouth, terrain.LayerDefault)
	tr.AddBox(cube.Box(30, 0, -5, 31, 1, -4), terrain.LayerProps)
	return tr
}

// rampY returns the height of the ramp surface at z.
func rampY(z float64) float64 {
	return rampHeight * (z - rampStart) / (rampEnd - rampStart)
}
