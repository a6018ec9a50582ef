package systems

import (
	"github.com/bogste/pixelfolio/archetypes"
	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating
// it with defaults if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:           cfg.Debug.ShowHUD,
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: cfg.Window.DefaultResolutionIndex,
			Opened:          make(map[string]int),
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug overlay and fullscreen toggles.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}

	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		SaveCurrentSession(settings)
	}
}
