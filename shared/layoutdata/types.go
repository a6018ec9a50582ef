// Package layoutdata parses the portfolio page layout from a Tiled map. It
// has no dependencies on ebitengine or donburi, pure data only.
package layoutdata

import (
	"image/color"

	"github.com/bogste/pixelfolio/shared/zones"
)

// Layout is the static page description. Positions are percentages of the
// reference canvas so they scale with the window.
type Layout struct {
	Width, Height  float64
	GroundYPercent float64
	Zones          []zones.Zone
	Icons          []Icon
	Portal         Portal
	Sections       map[string]Section
}

// Icon is a clickable tile the character can headbutt.
type Icon struct {
	ID       string
	Label    string
	Zone     string
	Section  string
	XPercent float64
	YPercent float64
	// Size is in reference pixels.
	Size     float64
	Rotation float64
	Color    color.RGBA
}

// Portal is the warp destination.
type Portal struct {
	XPercent, YPercent float64
}

// Section is the text shown when a zone or icon opens.
type Section struct {
	ID    string
	Title string
	Body  string
}

// SectionFor returns the section with the given id, falling back to a bare
// title so an unknown id still renders something.
func (l *Layout) SectionFor(id string) Section {
	if s, ok := l.Sections[id]; ok {
		return s
	}
	return Section{ID: id, Title: id}
}

// IconsIn returns the icons that belong to a zone.
func (l *Layout) IconsIn(zoneID string) []Icon {
	var out []Icon
	for _, ic := range l.Icons {
		if ic.Zone == zoneID {
			out = append(out, ic)
		}
	}
	return out
}
