package sequence

import (
	"image/color"
	"testing"

	"github.com/bogste/pixelfolio/shared/character"
	"github.com/bogste/pixelfolio/shared/sprite"
)

const (
	testW = 1440.0
	testH = 1024.0
)

func hasEvent(f Frame, kind EventKind) (Event, bool) {
	for _, e := range f.Events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func TestWarpRoundTripThroughDirector(t *testing.T) {
	d := NewDirector(DefaultConfig(), nil, 7, testW, testH)
	start := d.State().X
	in := Input{CursorX: start, ViewportW: testW, ViewportH: testH}

	opaque := make(map[sprite.PixelKey]struct{})
	for _, p := range sprite.Boule().Opaque() {
		opaque[p.PixelKey] = struct{}{}
	}

	if !d.EnterZone("portal") {
		t.Fatal("expected portal to start a warp")
	}

	opened := false
	for i := 0; i < 600 && !opened; i++ {
		f := d.Tick(in)
		for k := range f.InFlight {
			if _, ok := opaque[k]; !ok {
				t.Fatalf("frame %d: in-flight cell %v not in sprite", f.Number, k)
			}
		}
		if f.NearZone != "" && f.State.Warp != character.Idle {
			t.Fatalf("frame %d: near zone reported during %s", f.Number, f.State.Warp)
		}
		if e, ok := hasEvent(f, EventOpenSection); ok {
			opened = true
			if e.Section != "portal" {
				t.Errorf("expected portal section, got %q", e.Section)
			}
			if f.State.Warp != character.Warped {
				t.Errorf("expected warped on open, got %s", f.State.Warp)
			}
			if _, forced := hasEvent(f, EventForced); forced {
				t.Error("expected particles to finish before the safety cap")
			}
		}
	}
	if !opened {
		t.Fatal("section never opened")
	}

	in.Cancel = true
	f := d.Tick(in)
	if _, ok := hasEvent(f, EventCloseSection); !ok {
		t.Fatal("expected close event on cancel")
	}
	in.Cancel = false

	finished := false
	for i := 0; i < 600 && !finished; i++ {
		f = d.Tick(in)
		_, finished = hasEvent(f, EventWarpFinished)
	}
	if !finished {
		t.Fatal("warp out never finished")
	}
	if f.State.Warp != character.Idle || f.State.X != start || f.State.Y != 0 {
		t.Errorf("expected idle at %v, got %s at (%v, %v)", start, f.State.Warp, f.State.X, f.State.Y)
	}
	if len(f.InFlight) != 0 {
		t.Errorf("expected no pixels in flight, got %d", len(f.InFlight))
	}
}

func TestHeadbuttChoreography(t *testing.T) {
	d := NewDirector(DefaultConfig(), nil, 42, testW, testH)
	in := Input{CursorX: d.State().X, ViewportW: testW, ViewportH: testH}

	target := Target{Icon: "weather", Section: "weather", X: 500, Y: 381, Color: color.RGBA{0x4a, 0x90, 0xd9, 0xff}}
	if !d.Headbutt(target) {
		t.Fatal("expected headbutt to start")
	}

	jumpStart, impact, pop, open := 0, 0, 0, 0
	for i := 0; i < 400 && open == 0; i++ {
		f := d.Tick(in)
		if jumpStart == 0 && f.State.Warp == character.HeadbuttJump {
			jumpStart = f.Number
			if f.State.X != 500 {
				t.Errorf("expected sprint to end at 500, got %v", f.State.X)
			}
		}
		if e, ok := hasEvent(f, EventImpact); ok {
			impact = f.Number
			if e.Icon != "weather" {
				t.Errorf("expected impact on weather, got %q", e.Icon)
			}
			if len(f.DustQuads) == 0 {
				t.Error("expected dust on impact frame")
			}
		}
		if _, ok := hasEvent(f, EventIconPop); ok {
			pop = f.Number
		}
		if e, ok := hasEvent(f, EventOpenSection); ok {
			open = f.Number
			if e.Section != "weather" {
				t.Errorf("expected weather section, got %q", e.Section)
			}
			if f.State.Warp != character.Idle || f.State.Y != 0 {
				t.Errorf("expected landed idle on open, got %s y=%v", f.State.Warp, f.State.Y)
			}
		}
		if _, ok := hasEvent(f, EventForced); ok {
			t.Fatalf("unexpected forced exit at frame %d", f.Number)
		}
	}

	if jumpStart == 0 || impact == 0 || pop == 0 || open == 0 {
		t.Fatalf("sequence incomplete: jump=%d impact=%d pop=%d open=%d", jumpStart, impact, pop, open)
	}
	if delta := impact - jumpStart; delta < 17 || delta > 19 {
		t.Errorf("expected impact 18 frames after jump start, got %d", delta)
	}
	if pop-impact != DefaultConfig().IconPopDelay {
		t.Errorf("expected icon pop %d frames after impact, got %d", DefaultConfig().IconPopDelay, pop-impact)
	}
	if open <= impact {
		t.Errorf("expected section to open after impact, impact=%d open=%d", impact, open)
	}
}

func TestReentrantTriggersIgnored(t *testing.T) {
	d := NewDirector(DefaultConfig(), nil, 1, testW, testH)
	in := Input{CursorX: d.State().X, ViewportW: testW, ViewportH: testH}

	if !d.EnterZone("work-cluster") {
		t.Fatal("expected warp to start")
	}
	if d.EnterZone("portal") {
		t.Error("expected second warp to be ignored")
	}
	if d.Headbutt(Target{X: 300, Y: 400}) {
		t.Error("expected headbutt to be ignored while a warp is pending")
	}
	if d.Queue(character.Trigger{Kind: character.TriggerShiver}) {
		t.Error("expected occupied slot to reject a trigger")
	}

	d.Tick(in)
	if d.Headbutt(Target{X: 300, Y: 400}) {
		t.Error("expected headbutt ignored while shivering")
	}
}

func TestSafetyCapOpensSectionWhenParticlesStall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Warp.ShedDuration = 100000
	d := NewDirector(cfg, nil, 3, testW, testH)
	in := Input{CursorX: d.State().X, ViewportW: testW, ViewportH: testH}
	d.EnterZone("portal")

	limit := cfg.Character.ShiverFrames + cfg.Character.WarpMaxFrames + 1
	for i := 0; i < limit; i++ {
		f := d.Tick(in)
		if _, ok := hasEvent(f, EventOpenSection); ok {
			e, forced := hasEvent(f, EventForced)
			if !forced || e.From != character.WarpingIn {
				t.Errorf("expected forced exit from warping_in, got %+v", e)
			}
			if f.State.Warp != character.Warped {
				t.Errorf("expected warped, got %s", f.State.Warp)
			}
			return
		}
	}
	t.Fatalf("expected safety cap within %d frames", limit)
}

func TestNearZoneAndBlockSection(t *testing.T) {
	d := NewDirector(DefaultConfig(), nil, 5, testW, testH)
	in := Input{CursorX: 0.614 * testW, ViewportW: testW, ViewportH: testH}

	var f Frame
	for i := 0; i < 400 && f.NearZone == ""; i++ {
		f = d.Tick(in)
	}
	if f.NearZone != "projects-cluster" {
		t.Fatalf("expected projects-cluster nearby, got %q", f.NearZone)
	}

	if !d.EnterZone(f.NearZone) {
		t.Fatal("expected block zone to open")
	}
	f = d.Tick(in)
	if _, ok := hasEvent(f, EventOpenSection); !ok || f.OpenSection != "projects-cluster" {
		t.Fatalf("expected projects-cluster to open, got %q", f.OpenSection)
	}
	if f.State.Warp != character.Idle {
		t.Errorf("expected block zone to skip the warp, got %s", f.State.Warp)
	}

	d.CloseSection()
	f = d.Tick(in)
	if _, ok := hasEvent(f, EventCloseSection); !ok || f.OpenSection != "" {
		t.Error("expected section closed")
	}
}

func TestJumpInputOnlyWhenIdle(t *testing.T) {
	d := NewDirector(DefaultConfig(), nil, 9, testW, testH)
	in := Input{CursorX: d.State().X, ViewportW: testW, ViewportH: testH, Jump: true}

	f := d.Tick(in)
	if !f.State.IsJumping || f.State.Y >= 0 {
		t.Fatalf("expected jump, got jumping=%v y=%v", f.State.IsJumping, f.State.Y)
	}

	d2 := NewDirector(DefaultConfig(), nil, 9, testW, testH)
	d2.EnterZone("portal")
	f = d2.Tick(in)
	if f.State.IsJumping || f.State.Y != 0 {
		t.Error("expected jump suppressed during a warp")
	}
}

func TestJumpWithQueuedSequence(t *testing.T) {
	tests := []struct {
		name  string
		start func(d *Director) bool
		want  character.WarpState
	}{
		{"headbutt", func(d *Director) bool {
			return d.Headbutt(Target{Icon: "weather", Section: "weather", X: d.State().X + 300, Y: 400})
		}, character.HeadbuttSprint},
		{"door zone", func(d *Director) bool {
			return d.EnterZone("portal")
		}, character.Shivering},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirector(DefaultConfig(), nil, 9, testW, testH)
			if !tt.start(d) {
				t.Fatal("expected sequence to be accepted")
			}
			f := d.Tick(Input{CursorX: d.State().X, ViewportW: testW, ViewportH: testH, Jump: true})
			if f.State.Warp != tt.want {
				t.Errorf("expected %s, got %s", tt.want, f.State.Warp)
			}
			if f.State.IsJumping || f.State.VelocityY != 0 {
				t.Errorf("expected no free jump, got jumping=%v vy=%v", f.State.IsJumping, f.State.VelocityY)
			}
		})
	}
}
