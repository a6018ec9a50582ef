package factory

import (
	"github.com/bogste/pixelfolio/archetypes"
	"github.com/bogste/pixelfolio/components"
	"github.com/bogste/pixelfolio/shared/zones"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateZoneMarker(ecs *ecs.ECS, z zones.Zone) *donburi.Entry {
	marker := archetypes.ZoneMarker.Spawn(ecs)
	components.ZoneMarker.SetValue(marker, components.ZoneMarkerData{Zone: z})
	return marker
}
