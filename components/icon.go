package components

import (
	"image/color"

	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// IconData is a clickable project tile.
type IconData struct {
	ID      string
	Label   string
	Section string
	Zone    string
	Color   color.RGBA
	// Rest is the top-left corner in screen pixels.
	Rest     math.Vec2
	Size     float64
	Rotation float64
	Hovered  bool
}

// Bottom is the screen y of the tile's lower edge.
func (i *IconData) Bottom() float64 {
	return i.Rest.Y + i.Size
}

// Center is the tile's midpoint.
func (i *IconData) Center() math.Vec2 {
	return math.NewVec2(i.Rest.X+i.Size/2, i.Rest.Y+i.Size/2)
}

var Icon = donburi.NewComponentType[IconData]()

// PopData drives the scale bounce after an icon is hit.
type PopData struct {
	Sequence *gween.Sequence
	Scale    float64
}

var Pop = donburi.NewComponentType[PopData]()

// ShakeData jitters an entity for a few frames.
type ShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var Shake = donburi.NewComponentType[ShakeData]()

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the hit-test space for icons.
var Space = donburi.NewComponentType[resolv.Space]()
