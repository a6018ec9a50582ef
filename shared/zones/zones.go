// Package zones maps the character's x position to the interactive hotspots
// placed along the ground line.
package zones

import "math"

// DefaultThreshold is the proximity radius in pixels.
const DefaultThreshold = 40.0

// Kind is how a zone reacts to a click.
type Kind int

const (
	// Door zones open their section through the warp sequence.
	Door Kind = iota
	// Block zones open their section directly.
	Block
)

var kindNames = map[Kind]string{
	Door:  "door",
	Block: "block",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a layout class name to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return Door, false
}

// Zone is a static hotspot. XPercent is relative to the viewport width.
type Zone struct {
	ID       string
	XPercent float64
	Label    string
	Kind     Kind
}

// PixelX converts the zone position for a viewport width.
func (z Zone) PixelX(viewportW float64) float64 {
	return z.XPercent / 100 * viewportW
}

// DefaultZones are the three hotspots of the portfolio page.
func DefaultZones() []Zone {
	return []Zone{
		{ID: "portal", XPercent: 87.9, Label: "Portal", Kind: Door},
		{ID: "projects-cluster", XPercent: 61.4, Label: "Projects", Kind: Block},
		{ID: "work-cluster", XPercent: 23.2, Label: "Work", Kind: Door},
	}
}

// Resolve returns the first zone closer than threshold pixels to charX.
// Ties go to the earlier zone in the list.
func Resolve(charX, viewportW float64, zs []Zone, threshold float64) (string, bool) {
	for _, z := range zs {
		if math.Abs(charX-z.PixelX(viewportW)) < threshold {
			return z.ID, true
		}
	}
	return "", false
}

// Find looks a zone up by id.
func Find(zs []Zone, id string) (Zone, bool) {
	for _, z := range zs {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}
