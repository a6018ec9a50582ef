package components

import "github.com/yohamta/donburi"

// SceneData is the page-wide state shared by systems.
type SceneData struct {
	ViewW, ViewH float64
	Frame        int
	// HoverIcon is the icon under the cursor, empty if none.
	HoverIcon string
	// Held is true while the intro owns the input.
	Held bool
}

var Scene = donburi.NewComponentType[SceneData]()
