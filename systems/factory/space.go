package factory

import (
	"github.com/bogste/pixelfolio/archetypes"
	"github.com/bogste/pixelfolio/components"
	"github.com/bogste/pixelfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace makes the hit-test space with a 1x1 cursor probe in it.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)

	cursor := resolv.NewObject(-10, -10, 1, 1, tags.ResolvCursor)
	cursor.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	spaceData.Add(cursor)
	space.AddComponent(components.Object)
	components.Object.SetValue(space, components.ObjectData{Object: cursor})

	return space
}
