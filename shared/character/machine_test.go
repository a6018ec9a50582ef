package character

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newTestMachine() *Machine {
	return NewMachine(DefaultParams(), rand.New(rand.NewPCG(42, 7)))
}

func TestCursorClampedToViewport(t *testing.T) {
	m := newTestMachine()
	const viewportW = 800.0
	lo, hi := m.Params.Bounds(viewportW)

	for _, target := range []float64{-500, 0, 5000, viewportW} {
		s := m.New(viewportW)
		for i := 0; i < 1000; i++ {
			s = m.Advance(s, target, viewportW)
			if s.X < lo || s.X > hi {
				t.Fatalf("target %v: frame %d x=%v outside [%v, %v]", target, i, s.X, lo, hi)
			}
		}
	}
}

func TestIdleDeadZoneStopsWalking(t *testing.T) {
	m := newTestMachine()
	s := m.New(800)
	s.X = 400
	s.IsWalking = true
	s.WalkFrame = 3.3

	s = m.Advance(s, 405, 800)
	if s.IsWalking {
		t.Error("expected walking to stop inside the dead zone")
	}
	if s.WalkFrame != 0 {
		t.Errorf("expected walkFrame reset to 0, got %v", s.WalkFrame)
	}
	if s.X != 400 {
		t.Errorf("expected x unchanged, got %v", s.X)
	}
}

func TestIdleApproachDecelerates(t *testing.T) {
	m := newTestMachine()
	s := m.New(1440)
	s.X = 400

	s = m.Advance(s, 900, 1440)
	if s.X != 403.5 {
		t.Errorf("expected capped step to 403.5, got %v", s.X)
	}
	if s.Direction != Right || !s.IsWalking {
		t.Errorf("expected walking right, got dir=%v walking=%v", s.Direction, s.IsWalking)
	}

	s.X = 400
	s = m.Advance(s, 380, 1440)
	if math.Abs(s.X-398.4) > 1e-9 {
		t.Errorf("expected eased step to 398.4, got %v", s.X)
	}
	if s.Direction != Left {
		t.Errorf("expected facing left, got %v", s.Direction)
	}
}

func TestFreeJumpLandsOnGround(t *testing.T) {
	m := newTestMachine()
	s := m.New(800)
	s = m.Jump(s)
	if !s.IsJumping || s.VelocityY != m.Params.JumpVelocity {
		t.Fatalf("expected jump launch, got jumping=%v vy=%v", s.IsJumping, s.VelocityY)
	}

	again := m.Jump(s)
	if again.VelocityY != s.VelocityY {
		t.Error("expected second jump to be ignored while airborne")
	}

	for i := 0; i < 200 && s.IsJumping; i++ {
		s = m.Advance(s, s.X, 800)
		if s.Y > 0 {
			t.Fatalf("frame %d: y=%v below ground", i, s.Y)
		}
	}
	if s.IsJumping || s.Y != 0 || s.VelocityY != 0 {
		t.Errorf("expected clean landing, got jumping=%v y=%v vy=%v", s.IsJumping, s.Y, s.VelocityY)
	}
}

func TestWarpRoundTrip(t *testing.T) {
	m := newTestMachine()
	s := m.New(1440)
	rest := s.X

	s, ok := m.Apply(s, Trigger{Kind: TriggerShiver})
	if !ok || s.Warp != Shivering {
		t.Fatalf("expected shivering, got %v", s.Warp)
	}
	for i := 0; i < m.Params.ShiverFrames; i++ {
		s = m.Advance(s, 0, 1440)
	}
	if s.Warp != WarpingIn {
		t.Fatalf("expected warping_in after shiver, got %v", s.Warp)
	}
	if s.WarpTimer != 0 {
		t.Errorf("expected timer reset on transition, got %d", s.WarpTimer)
	}

	s = m.Advance(s, 0, 1440)
	s, ok = m.Apply(s, Trigger{Kind: TriggerWarpComplete})
	if !ok || s.Warp != Warped {
		t.Fatalf("expected warped, got %v", s.Warp)
	}

	s = m.Advance(s, 0, 1440)
	s, ok = m.Apply(s, Trigger{Kind: TriggerWarpOut})
	if !ok || s.Warp != WarpingOut {
		t.Fatalf("expected warping_out, got %v", s.Warp)
	}

	s = m.Advance(s, 0, 1440)
	s, ok = m.Apply(s, Trigger{Kind: TriggerWarpComplete})
	if !ok || s.Warp != Idle {
		t.Fatalf("expected idle, got %v", s.Warp)
	}
	if s.X != rest || s.Y != 0 {
		t.Errorf("expected resting position (%v, 0), got (%v, %v)", rest, s.X, s.Y)
	}
}

func TestWarpLocksPosition(t *testing.T) {
	m := newTestMachine()
	s := m.New(1440)
	s = m.Jump(s)
	s = m.Advance(s, s.X, 1440)
	x := s.X

	s, _ = m.Apply(s, Trigger{Kind: TriggerWarpIn})
	for i := 0; i < 20; i++ {
		s = m.Advance(s, 0, 1440)
		if s.X != x || s.Y != 0 || s.IsJumping || s.IsWalking {
			t.Fatalf("frame %d: expected locked position, got x=%v y=%v jumping=%v walking=%v",
				i, s.X, s.Y, s.IsJumping, s.IsWalking)
		}
	}
}

func TestSafetyCaps(t *testing.T) {
	m := newTestMachine()
	p := m.Params

	tests := []struct {
		name  string
		from  WarpState
		want  WarpState
		limit int
	}{
		{"warping_in", WarpingIn, Warped, p.WarpMaxFrames},
		{"warping_out", WarpingOut, Idle, p.WarpMaxFrames},
		{"headbutt_jump", HeadbuttJump, HeadbuttFalling, p.JumpCap(p.ApexFrames)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := m.New(1440)
			s.Warp = tt.from
			if tt.from == HeadbuttJump {
				// Zero gravity keeps it airborne forever without a Fall trigger.
				s.Y = -50
				s.ApexFrames = p.ApexFrames
			}
			frames := 0
			for s.Warp == tt.from && frames <= tt.limit {
				s = m.Advance(s, 0, 1440)
				frames++
			}
			if s.Warp != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, s.Warp)
			}
			if frames > tt.limit {
				t.Errorf("expected exit within %d frames, took %d", tt.limit, frames)
			}
			if !s.ForcedExit {
				t.Error("expected ForcedExit on the capped frame")
			}
		})
	}
}

func TestSprintCapReturnsToIdle(t *testing.T) {
	p := DefaultParams()
	p.SprintAccel = 0.001
	p.SprintMaxSpeed = 0.01
	m := NewMachine(p, nil)

	s := m.New(1440)
	s.X = 100
	s, ok := m.Apply(s, Sprint(1300, 120, 18))
	if !ok {
		t.Fatal("expected sprint to be accepted")
	}
	frames := 0
	for s.Warp == HeadbuttSprint && frames <= p.SprintMaxFrames {
		s = m.Advance(s, 0, 1440)
		frames++
	}
	if s.Warp != Idle || frames != p.SprintMaxFrames {
		t.Errorf("expected idle at frame %d, got %v at %d", p.SprintMaxFrames, s.Warp, frames)
	}
	if s.SprintTargetX != 0 || s.HeadbuttTargetY != 0 {
		t.Error("expected sequence fields cleared on forced exit")
	}
}

func TestHeadbuttScenario(t *testing.T) {
	m := newTestMachine()
	s := m.New(1440)
	s.X = 100

	s, ok := m.Apply(s, Sprint(500, -120, 18))
	if !ok {
		t.Fatal("expected sprint trigger accepted")
	}

	sprintFrames := 0
	for s.Warp == HeadbuttSprint {
		s = m.Advance(s, 1400, 1440)
		sprintFrames++
		if sprintFrames > m.Params.SprintMaxFrames {
			t.Fatal("sprint never reached its target")
		}
	}
	if s.Warp != HeadbuttJump {
		t.Fatalf("expected headbutt_jump, got %v", s.Warp)
	}
	if s.X != 500 {
		t.Errorf("expected x snapped to 500, got %v", s.X)
	}

	apex := 0
	for frame := 1; frame <= 40; frame++ {
		prev := s.VelocityY
		s = m.Advance(s, 1400, 1440)
		if prev < 0 && s.VelocityY >= 0 {
			apex = frame
			break
		}
	}
	if apex < 17 || apex > 19 {
		t.Errorf("expected apex at frame 18, got %d", apex)
	}

	s, ok = m.Apply(s, Trigger{Kind: TriggerFall})
	if !ok || s.Warp != HeadbuttFalling {
		t.Fatalf("expected headbutt_falling, got %v", s.Warp)
	}
	for i := 0; i < 100 && s.Warp == HeadbuttFalling; i++ {
		s = m.Advance(s, 1400, 1440)
		if s.Y > 0 {
			t.Fatalf("y=%v below ground", s.Y)
		}
	}
	if s.Warp != Idle || s.Y != 0 || s.VelocityY != 0 {
		t.Errorf("expected landed idle, got %v y=%v vy=%v", s.Warp, s.Y, s.VelocityY)
	}
	if s.ForcedExit {
		t.Error("expected a natural landing, not a forced one")
	}
	if s.HeadbuttGravity != 0 || s.SprintTargetX != 0 || s.ApexFrames != 0 {
		t.Error("expected sequence fields cleared on landing")
	}
}

func TestApexIndependentOfHeight(t *testing.T) {
	m := newTestMachine()
	for _, h := range []float64{10, 120, 333, 900} {
		s := m.New(1440)
		s.Warp = HeadbuttSprint
		s.ApexFrames = 24
		s.HeadbuttTargetY = -h
		s = m.launchHeadbutt(s)

		apex := 0
		for frame := 1; frame <= 60; frame++ {
			prev := s.VelocityY
			s = m.Advance(s, 0, 1440)
			if prev < 0 && s.VelocityY >= 0 {
				apex = frame
				break
			}
		}
		if apex < 23 || apex > 25 {
			t.Errorf("height %v: expected apex at 24, got %d", h, apex)
		}
	}
}

func TestInvalidTriggersIgnored(t *testing.T) {
	m := newTestMachine()
	tests := []struct {
		from WarpState
		kind TriggerKind
	}{
		{Idle, TriggerWarpComplete},
		{Idle, TriggerWarpOut},
		{Idle, TriggerFall},
		{Shivering, TriggerShiver},
		{Warped, TriggerSprint},
		{WarpingIn, TriggerWarpIn},
		{HeadbuttSprint, TriggerSprint},
		{HeadbuttSprint, TriggerFall},
		{HeadbuttFalling, TriggerShiver},
	}
	for _, tt := range tests {
		s := m.New(1440)
		s.Warp = tt.from
		s.WarpTimer = 5
		got, ok := m.Apply(s, Trigger{Kind: tt.kind})
		if ok {
			t.Errorf("%v from %v: expected rejection", tt.kind, tt.from)
		}
		if got != s {
			t.Errorf("%v from %v: expected state unchanged", tt.kind, tt.from)
		}
	}
}

func TestCosmeticTimersAdvanceEverywhere(t *testing.T) {
	m := newTestMachine()
	s := m.New(1440)
	s, _ = m.Apply(s, Trigger{Kind: TriggerWarpIn})

	blinked := false
	for i := 0; i < 400; i++ {
		s = m.Advance(s, 0, 1440)
		if s.IsBlinking {
			blinked = true
		}
		if s.BlinkThreshold < m.Params.BlinkMin || s.BlinkThreshold > m.Params.BlinkMin+m.Params.BlinkJitter {
			t.Fatalf("blink threshold %d out of range", s.BlinkThreshold)
		}
	}
	if s.BreathTimer != 400 {
		t.Errorf("expected breathTimer 400, got %d", s.BreathTimer)
	}
	if !blinked {
		t.Error("expected at least one blink in 400 frames")
	}
}

func TestWarpStateString(t *testing.T) {
	if HeadbuttFalling.String() != "headbutt_falling" {
		t.Errorf("expected headbutt_falling, got %s", HeadbuttFalling)
	}
	if WarpState(99).String() != "unknown" {
		t.Errorf("expected unknown, got %s", WarpState(99))
	}
}
