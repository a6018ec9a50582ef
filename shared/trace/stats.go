package trace

import (
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// FrameStats tracks frame durations over a rolling window.
type FrameStats struct {
	windowSize  int
	samples     []float64
	writeIndex  int
	sampleCount int
	lastFrame   time.Time
}

// Summary is in milliseconds.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	P95    float64
}

// NewFrameStats creates a window of the given size, 60 if not positive.
func NewFrameStats(windowSize int) *FrameStats {
	if windowSize < 1 {
		windowSize = 60
	}
	return &FrameStats{
		windowSize: windowSize,
		samples:    make([]float64, windowSize),
	}
}

// Add records one frame duration.
func (f *FrameStats) Add(d time.Duration) {
	f.samples[f.writeIndex] = float64(d) / float64(time.Millisecond)
	f.writeIndex = (f.writeIndex + 1) % f.windowSize
	if f.sampleCount < f.windowSize {
		f.sampleCount++
	}
}

// Tick records the time since the previous Tick.
func (f *FrameStats) Tick(now time.Time) {
	if !f.lastFrame.IsZero() {
		f.Add(now.Sub(f.lastFrame))
	}
	f.lastFrame = now
}

func (f *FrameStats) Summary() Summary {
	if f.sampleCount == 0 {
		return Summary{}
	}
	data := slices.Clone(f.samples[:f.sampleCount])
	slices.Sort(data)

	s := Summary{
		Count: f.sampleCount,
		Mean:  stat.Mean(data, nil),
		P95:   stat.Quantile(0.95, stat.Empirical, data, nil),
	}
	if f.sampleCount > 1 {
		s.StdDev = stat.StdDev(data, nil)
	}
	return s
}
