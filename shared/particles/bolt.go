package particles

import (
	"math"
	"math/rand/v2"
)

// JitterDecay shrinks the midpoint jitter on every subdivision level.
const JitterDecay = 0.55

// GenerateBolt builds a jagged polyline from a to b by recursive midpoint
// displacement. Each level halves every segment and pushes the new midpoint
// along the segment normal by up to ±jitter/2. The result has 2^detail+1
// points and always starts at a and ends at b.
func GenerateBolt(rng *rand.Rand, a, b Point, detail int, jitter float64) []Point {
	points := []Point{a, b}
	for d := 0; d < detail; d++ {
		next := make([]Point, 0, len(points)*2-1)
		for i := 0; i < len(points)-1; i++ {
			p, q := points[i], points[i+1]
			mid := Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
			dx, dy := q.X-p.X, q.Y-p.Y
			if l := math.Hypot(dx, dy); l > 0 {
				off := (rng.Float64() - 0.5) * jitter
				mid.X += -dy / l * off
				mid.Y += dx / l * off
			}
			next = append(next, p, mid)
		}
		next = append(next, points[len(points)-1])
		points = next
		jitter *= JitterDecay
	}
	return points
}

// GenerateBranch grows a forking bolt from origin. Each level may fork once
// more at a shorter length, up to a depth of 3.
func GenerateBranch(rng *rand.Rand, origin Point, angle, length float64, depth int) [][]Point {
	if depth > 3 || length < 3 {
		return nil
	}
	end := Point{X: origin.X + math.Cos(angle)*length, Y: origin.Y + math.Sin(angle)*length}
	out := [][]Point{GenerateBolt(rng, origin, end, 3, length*0.4)}
	if rng.Float64() > 0.4 && depth < 3 {
		childAngle := angle + (rng.Float64()-0.5)*1.5
		out = append(out, GenerateBranch(rng, end, childAngle, length*0.6, depth+1)...)
	}
	return out
}
