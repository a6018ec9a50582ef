// Package trace records per-frame samples of the choreography as CSV so a
// session can be replayed or diffed, and keeps rolling frame-time stats for
// the debug overlay.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/bogste/pixelfolio/shared/sequence"
	"github.com/gocarina/gocsv"
)

// Sample is one CSV row.
type Sample struct {
	Frame    int     `csv:"frame"`
	State    string  `csv:"state"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	VY       float64 `csv:"vy"`
	NearZone string  `csv:"near_zone"`
	InFlight int     `csv:"in_flight"`
	Dust     int     `csv:"dust"`
	Bolts    int     `csv:"bolts"`
	Events   string  `csv:"events"`
}

// FromFrame flattens a director frame into a row.
func FromFrame(f sequence.Frame) Sample {
	var events []string
	for _, e := range f.Events {
		name := e.Kind.String()
		switch {
		case e.Section != "":
			name += ":" + e.Section
		case e.Icon != "":
			name += ":" + e.Icon
		}
		events = append(events, name)
	}
	return Sample{
		Frame:    f.Number,
		State:    f.State.Warp.String(),
		X:        f.State.X,
		Y:        f.State.Y,
		VY:       f.State.VelocityY,
		NearZone: f.NearZone,
		InFlight: len(f.InFlight),
		Dust:     len(f.DustQuads),
		Bolts:    len(f.Bolts),
		Events:   strings.Join(events, "|"),
	}
}

// Recorder buffers samples between flushes.
type Recorder struct {
	pending       []*Sample
	headerWritten bool
	total         int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a sample. A nil recorder ignores it so callers don't need
// to check whether tracing is enabled.
func (r *Recorder) Record(s Sample) {
	if r == nil {
		return
	}
	r.pending = append(r.pending, &s)
	r.total++
}

// Len is the number of samples waiting to be flushed.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.pending)
}

// Total is the number of samples recorded since creation.
func (r *Recorder) Total() int {
	if r == nil {
		return 0
	}
	return r.total
}

// Flush writes pending samples to w. The header is only written on the
// first flush that has rows.
func (r *Recorder) Flush(w io.Writer) error {
	if r == nil || len(r.pending) == 0 {
		return nil
	}
	if !r.headerWritten {
		if err := gocsv.Marshal(r.pending, w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(r.pending, w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	r.pending = r.pending[:0]
	return nil
}
