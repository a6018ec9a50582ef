package particles

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestGenerateBoltEndpointsAndCount(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 5))
	a, b := Point{X: 0, Y: 0}, Point{X: 100, Y: 0}
	for detail := 0; detail <= 5; detail++ {
		pts := GenerateBolt(r, a, b, detail, 20)
		want := 1<<detail + 1
		if len(pts) != want {
			t.Errorf("detail %d: expected %d points, got %d", detail, want, len(pts))
		}
		if pts[0] != a || pts[len(pts)-1] != b {
			t.Errorf("detail %d: endpoints moved", detail)
		}
	}
}

func TestGenerateBoltJitterIsPerpendicularAndBounded(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	// A horizontal bolt only moves midpoints vertically.
	pts := GenerateBolt(r, Point{X: 0, Y: 0}, Point{X: 64, Y: 0}, 1, 10)
	if pts[1].X != 32 {
		t.Errorf("expected midpoint x 32, got %v", pts[1].X)
	}
	if math.Abs(pts[1].Y) > 5 {
		t.Errorf("expected |jitter| <= 5, got %v", pts[1].Y)
	}

	// Total deviation is bounded by the geometric series of jitter/2.
	bound := 0.0
	j := 10.0
	for i := 0; i < 6; i++ {
		bound += j / 2
		j *= JitterDecay
	}
	pts = GenerateBolt(r, Point{X: 0, Y: 0}, Point{X: 640, Y: 0}, 6, 10)
	for _, p := range pts {
		if math.Abs(p.Y) > bound+1e-9 {
			t.Fatalf("point %v deviates more than %v", p, bound)
		}
	}
}

func TestGenerateBranchDepthLimit(t *testing.T) {
	r := rand.New(rand.NewPCG(2, 3))
	for i := 0; i < 50; i++ {
		lines := GenerateBranch(r, Point{}, 0, 80, 0)
		if len(lines) < 1 || len(lines) > 4 {
			t.Fatalf("expected 1..4 polylines, got %d", len(lines))
		}
	}
	if lines := GenerateBranch(r, Point{}, 0, 2, 0); lines != nil {
		t.Error("expected no branch below minimum length")
	}
	if lines := GenerateBranch(r, Point{}, 0, 50, 4); lines != nil {
		t.Error("expected no branch past max depth")
	}
}

func TestLightningDecayCompletesOnce(t *testing.T) {
	l := NewLightningTrail(DefaultLightningParams(), rand.New(rand.NewPCG(4, 4)))

	if st := l.Update(100, 800, 1, false); st != Idle {
		t.Fatalf("expected Idle before activation, got %v", st)
	}

	x := 100.0
	sawBolt := false
	for i := 0; i < 40; i++ {
		x += 8
		if st := l.Update(x, 800, 1, true); st != Running {
			t.Fatalf("expected Running while active, got %v", st)
		}
		if len(l.Bolts()) > 0 {
			sawBolt = true
		}
	}
	if !sawBolt {
		t.Error("expected bolts at full intensity")
	}

	dones := 0
	doneFrame := 0
	for frame := 1; frame <= 200; frame++ {
		if l.Update(x, 800, 1, false) == Done {
			dones++
			doneFrame = frame
		}
	}
	if dones != 1 {
		t.Fatalf("expected one Done, got %d", dones)
	}
	if doneFrame <= l.Params.DecayFrames {
		t.Errorf("expected decay to outlast %d frames, finished at %d", l.Params.DecayFrames, doneFrame)
	}
	if l.Running() || len(l.Bolts()) != 0 || len(l.Sparks()) != 0 {
		t.Error("expected everything cleared after Done")
	}
}

func TestLightningRestartsDuringDecay(t *testing.T) {
	l := NewLightningTrail(DefaultLightningParams(), rand.New(rand.NewPCG(6, 6)))
	x := 100.0
	for i := 0; i < 20; i++ {
		x += 8
		l.Update(x, 800, 1, true)
	}
	l.Update(x, 800, 1, false)
	if !l.Decaying() {
		t.Fatal("expected decay after deactivation")
	}

	for i := 0; i < 5; i++ {
		x += 8
		if st := l.Update(x, 800, 1, true); st != Running {
			t.Fatalf("expected Running after reactivation, got %v", st)
		}
	}
	if l.Decaying() {
		t.Error("expected a fresh active trail, still decaying")
	}
	if len(l.Sparks()) != 0 {
		t.Errorf("expected decay sparks cleared on restart, got %d", len(l.Sparks()))
	}
}

func TestLightningLowIntensitySpawnsNothing(t *testing.T) {
	l := NewLightningTrail(DefaultLightningParams(), nil)
	for i := 0; i < 30; i++ {
		l.Update(200, 800, 0.01, true)
	}
	if len(l.Bolts()) != 0 || len(l.Ghosts()) != 0 || len(l.Streaks()) != 0 {
		t.Error("expected no output at negligible intensity")
	}
}

func TestLightningStopIsImmediate(t *testing.T) {
	l := NewLightningTrail(DefaultLightningParams(), nil)
	for i := 0; i < 10; i++ {
		l.Update(200+float64(i)*10, 800, 1, true)
	}
	l.Stop()
	if l.Running() || len(l.Bolts()) != 0 || len(l.Ghosts()) != 0 {
		t.Error("expected Stop to clear the trail")
	}
	if st := l.Update(300, 800, 1, false); st != Idle {
		t.Errorf("expected Idle after Stop, got %v", st)
	}
}
