package components

import (
	"github.com/bogste/pixelfolio/shared/zones"
	"github.com/yohamta/donburi"
)

// ZoneMarkerData is a labelled hotspot on the ground line.
type ZoneMarkerData struct {
	Zone zones.Zone
	Near bool
	// Glow eases towards 1 while Near and back to 0 otherwise.
	Glow float64
}

var ZoneMarker = donburi.NewComponentType[ZoneMarkerData]()
