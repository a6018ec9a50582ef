package systems

import (
	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/shared/sequence"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDirector feeds input to the choreography, ticks it once and routes
// the frame's events to the rest of the page.
func UpdateDirector(e *ecs.ECS) {
	entry, ok := components.Director.First(e.World)
	if !ok {
		return
	}
	data := components.Director.Get(entry)
	scene := components.Scene.Get(entry)
	input := getOrCreateInput(e)
	scene.Frame++

	in := sequence.Input{
		CursorX:   input.CursorX,
		ViewportW: scene.ViewW,
		ViewportH: scene.ViewH,
		Jump:      GetAction(input, cfg.ActionJump).JustPressed,
		Cancel:    GetAction(input, cfg.ActionCancel).JustPressed,
	}
	if scene.Held {
		// Stand still through the intro.
		in.CursorX = data.Director.State().X
		in.Jump = false
		in.Cancel = false
	} else if GetAction(input, cfg.ActionSelect).JustPressed && !sectionOpen(e) {
		// A click also jumps. Tick only honours it while idle, so a click that
		// queued a sprint or shiver does not.
		handleSelect(e, data, scene)
		in.Jump = true
	}

	data.Frame = data.Director.Tick(in)
	dispatchEvents(e, data.Frame.Events)
	updateZoneMarkers(e, data.Frame.NearZone)
}

// handleSelect turns a click into a sequence: an icon under the cursor is
// headbutted, otherwise the zone the character stands in is entered.
func handleSelect(e *ecs.ECS, data *components.DirectorData, scene *components.SceneData) {
	if scene.HoverIcon != "" {
		if icon := findIcon(e, scene.HoverIcon); icon != nil {
			data.Director.Headbutt(sequence.Target{
				Icon:    icon.ID,
				Section: icon.Section,
				X:       icon.Center().X,
				Y:       icon.Bottom(),
				Color:   icon.Color,
			})
		}
		return
	}
	if data.Frame.NearZone != "" {
		data.Director.EnterZone(data.Frame.NearZone)
	}
}

func dispatchEvents(e *ecs.ECS, events []sequence.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case sequence.EventOpenSection:
			OpenSection(e, ev.Section)
		case sequence.EventCloseSection:
			CloseSection(e)
		case sequence.EventImpact:
			TriggerIconShake(e, ev.Icon, cfg.Icon.ShakeAmount, cfg.Icon.ShakeFrames)
		case sequence.EventIconPop:
			TriggerIconPop(e, ev.Icon)
		}
	}
}

func updateZoneMarkers(e *ecs.ECS, near string) {
	components.ZoneMarker.Each(e.World, func(entry *donburi.Entry) {
		marker := components.ZoneMarker.Get(entry)
		marker.Near = marker.Zone.ID == near
		target := 0.0
		if marker.Near {
			target = 1
		}
		marker.Glow += (target - marker.Glow) * 0.2
	})
}
