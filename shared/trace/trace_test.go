package trace

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/bogste/pixelfolio/shared/character"
	"github.com/bogste/pixelfolio/shared/particles"
	"github.com/bogste/pixelfolio/shared/sequence"
	"github.com/bogste/pixelfolio/shared/sprite"
)

const header = "frame,state,x,y,vy,near_zone,in_flight,dust,bolts,events"

func TestFromFrame(t *testing.T) {
	f := sequence.Frame{
		Number:   42,
		State:    character.State{X: 100, Y: -20, VelocityY: -3, Warp: character.HeadbuttJump},
		NearZone: "",
		InFlight: map[sprite.PixelKey]struct{}{{Row: 1, Col: 2}: {}},
		Bolts:    []particles.Bolt{{}, {}},
		Events: []sequence.Event{
			{Kind: sequence.EventImpact, Icon: "weather"},
			{Kind: sequence.EventForced},
		},
	}

	s := FromFrame(f)
	if s.Frame != 42 || s.State != "headbutt_jump" {
		t.Errorf("unexpected frame/state %d %q", s.Frame, s.State)
	}
	if s.InFlight != 1 || s.Bolts != 2 || s.Dust != 0 {
		t.Errorf("unexpected counts %+v", s)
	}
	if s.Events != "impact:weather|forced" {
		t.Errorf("expected impact:weather|forced, got %q", s.Events)
	}
}

func TestRecorderFlush(t *testing.T) {
	r := NewRecorder()
	var buf bytes.Buffer

	if err := r.Flush(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written for an empty recorder, got %q", buf.String())
	}

	r.Record(Sample{Frame: 1, State: "idle"})
	r.Record(Sample{Frame: 2, State: "shivering"})
	if r.Len() != 2 {
		t.Errorf("expected 2 pending, got %d", r.Len())
	}
	if err := r.Flush(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("expected pending cleared, got %d", r.Len())
	}

	r.Record(Sample{Frame: 3, State: "warping_in"})
	if err := r.Flush(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != header {
		t.Errorf("expected header %q, got %q", header, lines[0])
	}
	if strings.Count(buf.String(), "frame,") != 1 {
		t.Error("expected header written once")
	}
	if !strings.HasPrefix(lines[3], "3,warping_in,") {
		t.Errorf("unexpected last row %q", lines[3])
	}
	if r.Total() != 3 {
		t.Errorf("expected total 3, got %d", r.Total())
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	r.Record(Sample{Frame: 1})
	if r.Len() != 0 || r.Total() != 0 {
		t.Error("expected nil recorder to stay empty")
	}
	if err := r.Flush(&bytes.Buffer{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFrameStats(t *testing.T) {
	fs := NewFrameStats(4)

	if s := fs.Summary(); s.Count != 0 {
		t.Errorf("expected empty summary, got %+v", s)
	}

	for _, ms := range []int{10, 20, 30, 40, 50, 60} {
		fs.Add(time.Duration(ms) * time.Millisecond)
	}

	s := fs.Summary()
	if s.Count != 4 {
		t.Errorf("expected window of 4, got %d", s.Count)
	}
	// window holds 30..60
	if math.Abs(s.Mean-45) > 1e-9 {
		t.Errorf("expected mean 45, got %v", s.Mean)
	}
	if s.P95 != 60 {
		t.Errorf("expected p95 60, got %v", s.P95)
	}
	if s.StdDev <= 0 {
		t.Errorf("expected positive stddev, got %v", s.StdDev)
	}
}

func TestFrameStatsTick(t *testing.T) {
	fs := NewFrameStats(0)
	start := time.Unix(0, 0)

	fs.Tick(start)
	if fs.Summary().Count != 0 {
		t.Error("expected first tick to only set the baseline")
	}
	fs.Tick(start.Add(16 * time.Millisecond))

	s := fs.Summary()
	if s.Count != 1 || s.Mean != 16 {
		t.Errorf("expected one 16ms sample, got %+v", s)
	}
	if s.StdDev != 0 {
		t.Errorf("expected zero stddev for one sample, got %v", s.StdDev)
	}
}
