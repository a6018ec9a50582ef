package factory

import (
	"github.com/bogste/pixelfolio/archetypes"
	"github.com/bogste/pixelfolio/components"
	"github.com/bogste/pixelfolio/shared/layoutdata"
	"github.com/bogste/pixelfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateIcon places a layout icon on screen and registers its hit box.
func CreateIcon(ecs *ecs.ECS, ic layoutdata.Icon, viewW, viewH float64) *donburi.Entry {
	icon := archetypes.Icon.Spawn(ecs)

	x := ic.XPercent / 100 * viewW
	y := ic.YPercent / 100 * viewH

	obj := resolv.NewObject(x, y, ic.Size, ic.Size, tags.ResolvIcon)
	obj.SetShape(resolv.NewRectangle(0, 0, ic.Size, ic.Size))
	obj.Data = icon

	components.Object.SetValue(icon, components.ObjectData{Object: obj})
	components.Icon.SetValue(icon, components.IconData{
		ID:       ic.ID,
		Label:    ic.Label,
		Section:  ic.Section,
		Zone:     ic.Zone,
		Color:    ic.Color,
		Rest:     math.NewVec2(x, y),
		Size:     ic.Size,
		Rotation: ic.Rotation,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return icon
}
