package components

import "github.com/yohamta/donburi"

// SettingsData holds the per-session toggles and what gets persisted.
type SettingsData struct {
	Debug           bool
	Fullscreen      bool
	ResolutionIndex int

	IntroSeen   bool
	Visits      int
	LastSection string
	// Opened counts how often each section was opened.
	Opened map[string]int
}

var Settings = donburi.NewComponentType[SettingsData]()
