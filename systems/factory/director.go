package factory

import (
	"github.com/bogste/pixelfolio/archetypes"
	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/shared/layoutdata"
	"github.com/bogste/pixelfolio/shared/sequence"
	"github.com/bogste/pixelfolio/shared/sprite"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SequenceConfig merges the tuned engine config with a layout's placements.
func SequenceConfig(layout *layoutdata.Layout) sequence.Config {
	sc := cfg.Sequence
	if layout == nil {
		return sc
	}
	if len(layout.Zones) > 0 {
		sc.Zones = layout.Zones
	}
	if layout.GroundYPercent > 0 {
		sc.GroundYPercent = layout.GroundYPercent
	}
	if layout.Portal.XPercent > 0 {
		sc.PortalXPercent = layout.Portal.XPercent
		sc.PortalYPercent = layout.Portal.YPercent
	}
	return sc
}

// CreateDirector spawns the singleton that owns the choreography.
func CreateDirector(ecs *ecs.ECS, layout *layoutdata.Layout, viewW, viewH float64) *donburi.Entry {
	director := archetypes.Director.Spawn(ecs)

	sp := sprite.Boule()
	seed := cfg.Debug.Seed
	components.Director.SetValue(director, components.DirectorData{
		Director: sequence.NewDirector(SequenceConfig(layout), sp, seed, viewW, viewH),
		Layout:   layout,
		Sprite:   sp,
		Shiver:   sprite.NewShiver(int64(seed)),
	})
	components.Scene.SetValue(director, components.SceneData{
		ViewW: viewW,
		ViewH: viewH,
	})

	return director
}
