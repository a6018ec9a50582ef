package components

import (
	"github.com/bogste/pixelfolio/shared/layoutdata"
	"github.com/bogste/pixelfolio/shared/sequence"
	"github.com/bogste/pixelfolio/shared/sprite"
	"github.com/yohamta/donburi"
)

// DirectorData wraps the choreography engine and the last frame it produced.
// Renderers read Frame; only UpdateDirector calls Tick.
type DirectorData struct {
	Director *sequence.Director
	Frame    sequence.Frame
	Layout   *layoutdata.Layout
	Sprite   *sprite.Sprite
	Shiver   *sprite.Shiver
}

var Director = donburi.NewComponentType[DirectorData]()
