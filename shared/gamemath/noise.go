package gamemath

import "math"

// Hash2D maps a lattice coordinate to a pseudo-random value in [0,1).
func Hash2D(x, y float64) float64 {
	h := math.Sin(x*127.1+y*311.7+43758.5453) * 43758.5453
	return h - math.Floor(h)
}

// ValueNoise2D samples smoothly interpolated lattice noise. Output is in [0,1).
func ValueNoise2D(x, y float64) float64 {
	ix := math.Floor(x)
	iy := math.Floor(y)
	sx := Smoothstep(x - ix)
	sy := Smoothstep(y - iy)

	a := Hash2D(ix, iy)
	b := Hash2D(ix+1, iy)
	c := Hash2D(ix, iy+1)
	d := Hash2D(ix+1, iy+1)
	return a + (b-a)*sx + (c-a)*sy + (a-b-c+d)*sx*sy
}

// ShedThreshold is the two-octave noise value for a sprite cell, normalised to
// [0,1]. Neighbouring cells get similar values so pixels detach in clumps.
func ShedThreshold(col, row int) float64 {
	c, r := float64(col), float64(row)
	n1 := ValueNoise2D(c*0.25, r*0.25)
	n2 := ValueNoise2D(c*0.5+50, r*0.5+50) * 0.5
	return Clamp((n1+n2)/1.5, 0, 1)
}

// AngleOffset is a per-cell value in [-0.4, 0.4]; its sign picks the spiral
// direction of a warp particle.
func AngleOffset(col, row int) float64 {
	return (Hash2D(float64(col)*7, float64(row)*13) - 0.5) * 0.8
}
