// Package particles holds the three effect simulations that run alongside the
// character: warp pixel shedding, the lightning trail and the impact dust.
// Each one is stepped once per frame and reports completion through the
// Status its Tick returns. Nothing here draws; callers get plain draw lists.
package particles

import "image/color"

// Status is the per-tick result of a simulation.
type Status int

const (
	// Idle means nothing is running.
	Idle Status = iota
	// Running means the simulation advanced and has more to do.
	Running
	// Done is reported on exactly one tick per activation.
	Done
)

var statusNames = map[Status]string{
	Idle:    "idle",
	Running: "running",
	Done:    "done",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Point is a screen position.
type Point struct {
	X, Y float64
}

// Quad is a filled square; X, Y is its top-left corner.
type Quad struct {
	X, Y  float64
	Size  float64
	Color color.RGBA
	Alpha float64
}

// Bolt is a stroked polyline.
type Bolt struct {
	Points []Point
	Color  color.RGBA
	Width  float64
	Alpha  float64
}
