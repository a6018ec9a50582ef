package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SectionData is the content panel currently on screen.
type SectionData struct {
	ID          string
	Title       string
	Body        string
	OpenedFrame int
	Fade        *gween.Tween
	Alpha       float32
	// Changed is set when the UI needs to rebuild its labels.
	Changed bool
}

// Open reports whether a section is showing.
func (s *SectionData) Open() bool {
	return s.ID != ""
}

var Section = donburi.NewComponentType[SectionData]()
