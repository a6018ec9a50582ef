// Package sequence is the per-frame driver that owns the character state and
// the effect simulations. It turns input into triggers, steps everything in a
// fixed order and reports the edges the UI cares about as events.
package sequence

import (
	"github.com/bogste/pixelfolio/shared/character"
	"github.com/bogste/pixelfolio/shared/particles"
	"github.com/bogste/pixelfolio/shared/zones"
)

// Config gathers everything the director reads at construction time.
type Config struct {
	Character character.Params         `yaml:"character"`
	Warp      particles.WarpParams      `yaml:"warp"`
	Lightning particles.LightningParams `yaml:"lightning"`
	Dust      particles.DustParams      `yaml:"dust"`

	Zones         []zones.Zone `yaml:"-"`
	ZoneThreshold float64      `yaml:"zone_threshold"`

	// Ground line and portal centre as viewport percentages.
	GroundYPercent float64 `yaml:"ground_y_percent"`
	PortalXPercent float64 `yaml:"portal_x_percent"`
	PortalYPercent float64 `yaml:"portal_y_percent"`

	// IconPopDelay is the number of frames between impact and icon pop.
	IconPopDelay int `yaml:"icon_pop_delay"`
}

// DefaultConfig returns the tuned setup for the portfolio page.
func DefaultConfig() Config {
	return Config{
		Character:      character.DefaultParams(),
		Warp:           particles.DefaultWarpParams(),
		Lightning:      particles.DefaultLightningParams(),
		Dust:           particles.DefaultDustParams(),
		Zones:          zones.DefaultZones(),
		ZoneThreshold:  zones.DefaultThreshold,
		GroundYPercent: 84.4,
		PortalXPercent: 87.9,
		PortalYPercent: 77.15,
		IconPopDelay:   6,
	}
}

// YScale converts character y offsets to screen pixels: the engine works in
// sprite-canvas units and the sprite is drawn scaled down.
func (c Config) YScale() float64 {
	if c.Character.PixelSize == 0 {
		return 1
	}
	return c.Warp.DisplayPixel / float64(c.Character.PixelSize)
}
