package sprite

import (
	"github.com/ojrac/opensimplex-go"
)

// Shiver produces the per-row horizontal distortion drawn while the character
// charges up a warp. Rows close together move together.
type Shiver struct {
	noise     opensimplex.Noise
	Amplitude float64
	RowScale  float64
	TimeScale float64
}

// NewShiver seeds the distortion field.
func NewShiver(seed int64) *Shiver {
	return &Shiver{
		noise:     opensimplex.New(seed),
		Amplitude: 3,
		RowScale:  0.18,
		TimeScale: 0.45,
	}
}

// Offset returns the x displacement in sprite pixels for a row at the given
// frame. intensity is clamped to [0,1]; zero intensity means no distortion.
func (s *Shiver) Offset(row, frame int, intensity float64) float64 {
	if intensity <= 0 {
		return 0
	}
	if intensity > 1 {
		intensity = 1
	}
	n := s.noise.Eval2(float64(row)*s.RowScale, float64(frame)*s.TimeScale)
	return n * s.Amplitude * intensity
}

// Split returns the chromatic channel offset for the red/blue ghost copies.
func (s *Shiver) Split(frame int, intensity float64) float64 {
	if intensity <= 0 {
		return 0
	}
	return (1 + s.noise.Eval2(0, float64(frame)*s.TimeScale)) * intensity
}
