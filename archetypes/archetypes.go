package archetypes

import (
	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Director = newArchetype(
		components.Director,
		components.Scene,
		components.Input,
	)
	Icon = newArchetype(
		tags.Icon,
		components.Icon,
		components.Object,
	)
	ZoneMarker = newArchetype(
		tags.Zone,
		components.ZoneMarker,
	)
	Space = newArchetype(
		components.Space,
	)
	Section = newArchetype(
		components.Section,
	)
	Intro = newArchetype(
		components.Intro,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Trace = newArchetype(
		components.Trace,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
