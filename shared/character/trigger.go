package character

import "math"

// TriggerKind names an external request to change warp state.
type TriggerKind int

const (
	TriggerNone TriggerKind = iota
	TriggerShiver
	TriggerWarpIn
	TriggerWarpComplete
	TriggerWarpOut
	TriggerSprint
	TriggerFall
)

var triggerNames = map[TriggerKind]string{
	TriggerNone:         "none",
	TriggerShiver:       "shiver",
	TriggerWarpIn:       "warp_in",
	TriggerWarpComplete: "warp_complete",
	TriggerWarpOut:      "warp_out",
	TriggerSprint:       "sprint",
	TriggerFall:         "fall",
}

func (k TriggerKind) String() string {
	if name, ok := triggerNames[k]; ok {
		return name
	}
	return "unknown"
}

// Trigger is a one-shot command. The sprint fields are only read for
// TriggerSprint.
type Trigger struct {
	Kind       TriggerKind
	TargetX    float64
	TargetY    float64
	ApexFrames int
}

// Sprint builds a headbutt trigger. targetY is the apex height; its sign is
// ignored.
func Sprint(targetX, targetY float64, apexFrames int) Trigger {
	return Trigger{Kind: TriggerSprint, TargetX: targetX, TargetY: targetY, ApexFrames: apexFrames}
}

// Apply injects a trigger. It returns false and leaves s untouched when the
// trigger is not valid for the current state.
func (m *Machine) Apply(s State, t Trigger) (State, bool) {
	switch t.Kind {
	case TriggerShiver:
		if s.Warp != Idle {
			return s, false
		}
		return s.enter(Shivering), true

	case TriggerWarpIn:
		if s.Warp != Idle && s.Warp != Shivering {
			return s, false
		}
		return s.enter(WarpingIn), true

	case TriggerWarpComplete:
		switch s.Warp {
		case WarpingIn:
			return s.enter(Warped), true
		case WarpingOut:
			return s.toIdle(), true
		}
		return s, false

	case TriggerWarpOut:
		if s.Warp != Warped {
			return s, false
		}
		return s.enter(WarpingOut), true

	case TriggerSprint:
		if s.Warp != Idle {
			return s, false
		}
		apex := t.ApexFrames
		if apex <= 0 {
			apex = m.Params.ApexFrames
		}
		s = s.enter(HeadbuttSprint)
		s.SprintTargetX = t.TargetX
		s.HeadbuttTargetY = -math.Abs(t.TargetY)
		s.ApexFrames = apex
		s.SprintSpeed = 0
		s.HeadbuttGravity = 0
		return s, true

	case TriggerFall:
		if s.Warp != HeadbuttJump {
			return s, false
		}
		return s.enter(HeadbuttFalling), true
	}
	return s, false
}
