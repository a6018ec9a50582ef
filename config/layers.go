package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in order.
const (
	LayerBackground ecs.LayerID = iota
	LayerWorld
	LayerEffects
	LayerOverlay
)
