package sequence

import "github.com/bogste/pixelfolio/shared/character"

// EventKind names a discrete output of a frame.
type EventKind int

const (
	// EventOpenSection asks the UI shell to show a section.
	EventOpenSection EventKind = iota
	// EventCloseSection asks the UI shell to hide the open section.
	EventCloseSection
	// EventWarpFinished fires when the character is whole again.
	EventWarpFinished
	// EventImpact fires on the headbutt apex.
	EventImpact
	// EventIconPop fires a few frames after the impact.
	EventIconPop
	// EventForced reports a safety-cap exit.
	EventForced
)

var eventNames = map[EventKind]string{
	EventOpenSection:  "open_section",
	EventCloseSection: "close_section",
	EventWarpFinished: "warp_finished",
	EventImpact:       "impact",
	EventIconPop:      "icon_pop",
	EventForced:       "forced",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is emitted by Tick.
type Event struct {
	Kind    EventKind
	Section string
	Icon    string
	// From is the state a forced exit left.
	From character.WarpState
}
