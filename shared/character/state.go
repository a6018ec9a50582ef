// Package character is the character movement engine: cursor tracking, free
// jumps and the warp / headbutt choreography states. It has no dependencies on
// ebiten or the ECS so it can be stepped headlessly.
package character

// WarpState identifies the active choreography state. Exactly one is active.
type WarpState int

const (
	Idle WarpState = iota
	Shivering
	WarpingIn
	Warped
	WarpingOut
	HeadbuttSprint
	HeadbuttJump
	HeadbuttFalling
)

// WarpStateNames maps WarpState to its snake_case name.
var WarpStateNames = map[WarpState]string{
	Idle:            "idle",
	Shivering:       "shivering",
	WarpingIn:       "warping_in",
	Warped:          "warped",
	WarpingOut:      "warping_out",
	HeadbuttSprint:  "headbutt_sprint",
	HeadbuttJump:    "headbutt_jump",
	HeadbuttFalling: "headbutt_falling",
}

func (w WarpState) String() string {
	if name, ok := WarpStateNames[w]; ok {
		return name
	}
	return "unknown"
}

// Headbutt reports whether w belongs to the headbutt sequence.
func (w WarpState) Headbutt() bool {
	return w == HeadbuttSprint || w == HeadbuttJump || w == HeadbuttFalling
}

// Direction is the facing of the sprite.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// State is the whole character, replaced every frame.
//
// Y is an offset from the ground: 0 is grounded, negative is airborne.
type State struct {
	X, Y      float64
	VelocityY float64
	IsJumping bool
	IsWalking bool
	Direction Direction

	WalkFrame      float64
	BreathTimer    int
	BlinkTimer     int
	BlinkThreshold int
	IsBlinking     bool

	Warp      WarpState
	WarpTimer int
	// ForcedExit is set on the frame a safety cap pushed the state out.
	ForcedExit bool

	// Headbutt sequence values, zero outside the sequence.
	HeadbuttTargetY float64
	SprintTargetX   float64
	SprintSpeed     float64
	HeadbuttGravity float64
	ApexFrames      int
}

// Grounded reports whether the character stands on the ground line.
func (s State) Grounded() bool {
	return s.Y == 0 && !s.IsJumping
}

// toIdle drops every per-sequence field and returns to idle.
func (s State) toIdle() State {
	s.Warp = Idle
	s.WarpTimer = 0
	s.HeadbuttTargetY = 0
	s.SprintTargetX = 0
	s.SprintSpeed = 0
	s.HeadbuttGravity = 0
	s.ApexFrames = 0
	return s
}

func (s State) enter(w WarpState) State {
	s.Warp = w
	s.WarpTimer = 0
	return s
}
