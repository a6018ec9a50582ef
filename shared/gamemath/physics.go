// Package gamemath holds the scalar helpers shared by the character engine and
// the particle simulations. Pure math only, no rendering or ECS imports.
package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Smoothstep is the cubic Hermite curve 3t²-2t³ on t in [0,1].
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Approach returns a step of sign(d)*min(maxStep, |d|*easing), the
// decelerating approach used for cursor tracking.
func Approach(d, maxStep, easing float64) float64 {
	return Sign(d) * math.Min(maxStep, math.Abs(d)*easing)
}

// Direction returns the unit vector from (fromX, fromY) to (toX, toY) and the
// distance between them. A zero distance yields a zero vector.
func Direction(fromX, fromY, toX, toY float64) (nx, ny, dist float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist > 0 {
		nx = dx / dist
		ny = dy / dist
	}
	return nx, ny, dist
}
