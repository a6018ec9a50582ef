package character

import (
	"math"
	"math/rand/v2"

	"github.com/bogste/pixelfolio/shared/gamemath"
)

// apexEpsilon snaps float residue at the apex so the velocity sign flip lands
// on the exact frame.
const apexEpsilon = 1e-9

// Machine steps a State. The rng is only used for blink timing.
type Machine struct {
	Params Params
	rng    *rand.Rand
}

// NewMachine creates a machine. A nil rng gets a fixed seed.
func NewMachine(p Params, rng *rand.Rand) *Machine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &Machine{Params: p, rng: rng}
}

// New returns the resting state centred in the viewport.
func (m *Machine) New(viewportW float64) State {
	return State{
		X:              viewportW / 2,
		Direction:      Right,
		BlinkThreshold: m.blinkThreshold(),
	}
}

// Jump launches a free jump when idle and not already airborne.
func (m *Machine) Jump(s State) State {
	if s.IsJumping || s.Warp != Idle {
		return s
	}
	s.IsJumping = true
	s.VelocityY = m.Params.JumpVelocity
	return s
}

// ShiverIntensity ramps 0..1 over the shiver duration.
func (m *Machine) ShiverIntensity(s State) float64 {
	if s.Warp != Shivering || m.Params.ShiverFrames <= 0 {
		return 0
	}
	return gamemath.Clamp(float64(s.WarpTimer)/float64(m.Params.ShiverFrames), 0, 1)
}

// Advance computes the next frame. Cursor tracking only happens when idle; the
// other states drive the position themselves.
func (m *Machine) Advance(s State, targetX, viewportW float64) State {
	s.ForcedExit = false

	switch s.Warp {
	case Idle:
		s = m.advanceIdle(s, targetX, viewportW)
	case Shivering:
		s = m.advanceShivering(s)
	case WarpingIn:
		s = m.advanceWarpingIn(s)
	case Warped:
		s = m.advanceWarped(s)
	case WarpingOut:
		s = m.advanceWarpingOut(s)
	case HeadbuttSprint:
		s = m.advanceSprint(s, viewportW)
	case HeadbuttJump:
		s = m.advanceHeadbuttJump(s)
	case HeadbuttFalling:
		s = m.advanceHeadbuttFalling(s)
	}

	return m.advanceCosmetics(s)
}

func (m *Machine) advanceIdle(s State, targetX, viewportW float64) State {
	p := m.Params
	dx := targetX - s.X
	if math.Abs(dx) > p.DeadZone {
		lo, hi := p.Bounds(viewportW)
		s.X = gamemath.Clamp(s.X+gamemath.Approach(dx, p.Speed, p.Easing), lo, hi)
		s.IsWalking = true
		s.Direction = facing(dx, s.Direction)
		s.WalkFrame += p.WalkStep
	} else {
		s.IsWalking = false
		s.WalkFrame = 0
	}

	if s.IsJumping {
		s.VelocityY += p.Gravity
		s.Y += s.VelocityY
		if s.Y >= 0 {
			s.Y = 0
			s.VelocityY = 0
			s.IsJumping = false
		}
	}
	return s
}

func (m *Machine) advanceShivering(s State) State {
	s = lock(s)
	s.WarpTimer++
	if s.WarpTimer >= m.Params.ShiverFrames {
		s = s.enter(WarpingIn)
	}
	return s
}

// warping_in waits for the particle system; the cap is the fallback.
func (m *Machine) advanceWarpingIn(s State) State {
	s = lock(s)
	s.WarpTimer++
	if s.WarpTimer >= m.Params.WarpMaxFrames {
		s = s.enter(Warped)
		s.ForcedExit = true
	}
	return s
}

func (m *Machine) advanceWarped(s State) State {
	s = lock(s)
	s.WarpTimer++
	return s
}

func (m *Machine) advanceWarpingOut(s State) State {
	s = lock(s)
	s.WarpTimer++
	if s.WarpTimer >= m.Params.WarpMaxFrames {
		s = s.toIdle()
		s.ForcedExit = true
	}
	return s
}

func (m *Machine) advanceSprint(s State, viewportW float64) State {
	p := m.Params
	s.WarpTimer++
	s.Y = 0
	s.VelocityY = 0
	s.IsJumping = false

	lo, hi := p.Bounds(viewportW)
	target := gamemath.Clamp(s.SprintTargetX, lo, hi)
	dx := target - s.X

	s.SprintSpeed = math.Min(s.SprintSpeed+p.SprintAccel, p.SprintMaxSpeed)
	if math.Abs(dx) <= s.SprintSpeed {
		s.X = target
		s.IsWalking = false
		s.WalkFrame = 0
		return m.launchHeadbutt(s)
	}

	s.X += gamemath.Sign(dx) * s.SprintSpeed
	s.Direction = facing(dx, s.Direction)
	s.IsWalking = true
	s.WalkFrame += p.WalkStep * 2

	if s.WarpTimer >= p.SprintMaxFrames {
		s = s.toIdle()
		s.IsWalking = false
		s.WalkFrame = 0
		s.ForcedExit = true
	}
	return s
}

// launchHeadbutt picks gravity so the rise takes exactly ApexFrames frames:
// g = 2h/N², v0 = -gN.
func (m *Machine) launchHeadbutt(s State) State {
	n := s.ApexFrames
	if n <= 0 {
		n = m.Params.ApexFrames
		s.ApexFrames = n
	}
	h := math.Abs(s.HeadbuttTargetY)
	s.HeadbuttGravity = 2 * h / float64(n*n)
	s.VelocityY = -s.HeadbuttGravity * float64(n)
	s.Y = 0
	return s.enter(HeadbuttJump)
}

// headbutt_jump has no internal exit; the caller sends Fall at the apex. The
// landing guard and the frame cap only fire if that never happens.
func (m *Machine) advanceHeadbuttJump(s State) State {
	s.WarpTimer++
	s = m.integrateHeadbutt(s)

	if s.Y >= 0 {
		s = land(s).toIdle()
		s.ForcedExit = true
		return s
	}
	if s.WarpTimer >= m.Params.JumpCap(s.ApexFrames) {
		s = s.enter(HeadbuttFalling)
		s.ForcedExit = true
	}
	return s
}

func (m *Machine) advanceHeadbuttFalling(s State) State {
	s.WarpTimer++
	s = m.integrateHeadbutt(s)

	if s.Y >= 0 {
		return land(s).toIdle()
	}
	if s.WarpTimer >= m.Params.JumpCap(s.ApexFrames) {
		s = land(s).toIdle()
		s.ForcedExit = true
	}
	return s
}

func (m *Machine) integrateHeadbutt(s State) State {
	s.IsJumping = false
	s.IsWalking = false
	s.VelocityY += s.HeadbuttGravity
	if math.Abs(s.VelocityY) < apexEpsilon {
		s.VelocityY = 0
	}
	s.Y += s.VelocityY
	return s
}

func (m *Machine) advanceCosmetics(s State) State {
	p := m.Params
	s.BreathTimer++

	if s.BlinkThreshold == 0 {
		s.BlinkThreshold = m.blinkThreshold()
	}
	s.BlinkTimer++
	if s.BlinkTimer > s.BlinkThreshold {
		s.IsBlinking = true
		if s.BlinkTimer > s.BlinkThreshold+p.BlinkWindow {
			s.IsBlinking = false
			s.BlinkTimer = 0
			s.BlinkThreshold = m.blinkThreshold()
		}
	}
	return s
}

func (m *Machine) blinkThreshold() int {
	jitter := 0
	if m.Params.BlinkJitter > 0 {
		jitter = m.rng.IntN(m.Params.BlinkJitter + 1)
	}
	return m.Params.BlinkMin + jitter
}

// lock pins a warp state to the ground with no walking.
func lock(s State) State {
	s.Y = 0
	s.VelocityY = 0
	s.IsJumping = false
	s.IsWalking = false
	s.WalkFrame = 0
	return s
}

func land(s State) State {
	s.Y = 0
	s.VelocityY = 0
	s.IsJumping = false
	return s
}

func facing(dx float64, current Direction) Direction {
	switch {
	case dx > 0:
		return Right
	case dx < 0:
		return Left
	}
	return current
}
