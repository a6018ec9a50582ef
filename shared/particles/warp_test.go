package particles

import (
	"math/rand/v2"
	"testing"

	"github.com/bogste/pixelfolio/shared/sprite"
)

func newTestWarp() (*WarpSystem, *sprite.Sprite) {
	sp := sprite.Boule()
	return NewWarpSystem(sp, DefaultWarpParams(), rand.New(rand.NewPCG(1, 1))), sp
}

func opaqueSet(sp *sprite.Sprite) map[sprite.PixelKey]struct{} {
	set := make(map[sprite.PixelKey]struct{})
	for _, p := range sp.Opaque() {
		set[p.PixelKey] = struct{}{}
	}
	return set
}

func TestShedInFlightIsSubsetAndConsumesEverything(t *testing.T) {
	w, sp := newTestWarp()
	opaque := opaqueSet(sp)

	if !w.Activate(Shed, Point{X: 400, Y: 860}, Point{X: 1266, Y: 790}) {
		t.Fatal("expected activation")
	}

	var last WarpTick
	dones := 0
	for frame := 1; frame <= w.Params.ForceCompleteFrame()+10; frame++ {
		tick := w.Tick()
		for k := range tick.InFlight {
			if _, ok := opaque[k]; !ok {
				t.Fatalf("frame %d: in-flight cell %v is not an opaque sprite pixel", frame, k)
			}
		}
		if tick.Status == Done {
			dones++
			last = tick
		}
	}
	if dones != 1 {
		t.Fatalf("expected exactly one Done, got %d", dones)
	}
	if len(last.InFlight) != len(opaque) {
		t.Errorf("expected all %d pixels shed at completion, got %d", len(opaque), len(last.InFlight))
	}
	if w.Forced() {
		t.Error("expected shed to finish before the force-complete frame")
	}
}

func TestShedOrderFollowsThreshold(t *testing.T) {
	w, _ := newTestWarp()
	w.Activate(Shed, Point{X: 400, Y: 860}, Point{X: 1266, Y: 790})

	// After a third of the duration only low-threshold cells have left.
	var tick WarpTick
	for i := 0; i < w.Params.ShedDuration/3; i++ {
		tick = w.Tick()
	}
	for _, p := range w.particles {
		_, inFlight := tick.InFlight[p.key]
		if inFlight && p.threshold > w.progress+1e-9 {
			t.Errorf("cell %v shed early: threshold %v > progress %v", p.key, p.threshold, w.progress)
		}
	}
}

func TestActivateWhileRunningIsNoop(t *testing.T) {
	w, sp := newTestWarp()
	w.Activate(Shed, Point{X: 400, Y: 860}, Point{X: 1266, Y: 790})
	w.Tick()
	before := len(w.particles)

	if w.Activate(Shed, Point{X: 10, Y: 10}, Point{X: 20, Y: 20}) {
		t.Error("expected second activation to be rejected")
	}
	if len(w.particles) != before || before != len(sp.Opaque()) {
		t.Errorf("expected one batch of %d particles, got %d", len(sp.Opaque()), len(w.particles))
	}
}

func TestMirrorFlipsLayout(t *testing.T) {
	plain, sp := newTestWarp()
	mirrored, _ := newTestWarp()
	mirrored.Mirror = true

	feet := Point{X: 400, Y: 860}
	plain.Activate(Shed, feet, Point{})
	mirrored.Activate(Shed, feet, Point{})

	dp := plain.Params.DisplayPixel
	left := feet.X - float64(sp.Cols)*dp/2
	for i := range plain.particles {
		a, b := plain.particles[i], mirrored.particles[i]
		if a.key != b.key || a.ty != b.ty {
			t.Fatalf("expected same cell and row at %d, got %v/%v", i, a.key, b.key)
		}
		want := left + float64(sp.Cols-1-a.key.Col)*dp
		if b.tx != want {
			t.Errorf("cell %v: expected mirrored x %v, got %v", a.key, want, b.tx)
		}
	}
}

func TestDeactivateClearsImmediately(t *testing.T) {
	w, _ := newTestWarp()
	w.Activate(Shed, Point{X: 400, Y: 860}, Point{X: 1266, Y: 790})
	for i := 0; i < 20; i++ {
		w.Tick()
	}
	w.Deactivate()
	if w.Active() {
		t.Error("expected inactive after Deactivate")
	}
	tick := w.Tick()
	if tick.Status != Idle || len(tick.InFlight) != 0 || len(tick.Quads) != 0 {
		t.Errorf("expected empty idle tick, got %v with %d cells", tick.Status, len(tick.InFlight))
	}
}

func TestIntegrateReturnsEveryPixel(t *testing.T) {
	w, sp := newTestWarp()
	w.Activate(Integrate, Point{X: 400, Y: 860}, Point{X: 1266, Y: 790})

	first := w.Tick()
	if len(first.InFlight) != len(sp.Opaque()) {
		t.Errorf("expected every pixel in flight at start, got %d of %d", len(first.InFlight), len(sp.Opaque()))
	}

	var last WarpTick
	for frame := 2; frame <= w.Params.ForceCompleteFrame(); frame++ {
		last = w.Tick()
		if last.Status == Done {
			break
		}
	}
	if last.Status != Done {
		t.Fatal("expected integrate to complete within the force-complete frame")
	}
	if !w.Forced() && len(last.InFlight) != 0 {
		t.Errorf("expected no pixels in flight after natural completion, got %d", len(last.InFlight))
	}
	if next := w.Tick(); next.Status != Idle {
		t.Errorf("expected Idle after Done, got %v", next.Status)
	}
}

func TestIntegrateReleasesInReverseOrder(t *testing.T) {
	w, _ := newTestWarp()
	w.Activate(Integrate, Point{X: 400, Y: 860}, Point{X: 1266, Y: 790})
	for i := 0; i < w.Params.ShedDuration/4; i++ {
		w.Tick()
	}
	for _, p := range w.particles {
		if p.shed && 1-p.threshold > w.progress+1e-9 {
			t.Errorf("cell %v released early", p.key)
		}
	}
}
