package systems

import (
	"math"

	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIcons advances pop and shake effects and resolves the hovered icon.
func UpdateIcons(e *ecs.ECS) {
	dt := float32(frameDT())
	var finished []*donburi.Entry

	components.Pop.Each(e.World, func(entry *donburi.Entry) {
		pop := components.Pop.Get(entry)
		scale, _, done := pop.Sequence.Update(dt)
		pop.Scale = float64(scale)
		if done {
			finished = append(finished, entry)
		}
	})
	for _, entry := range finished {
		entry.RemoveComponent(components.Pop)
	}

	finished = finished[:0]
	components.Shake.Each(e.World, func(entry *donburi.Entry) {
		shake := components.Shake.Get(entry)
		shake.Elapsed++
		if shake.Elapsed >= shake.Duration {
			finished = append(finished, entry)
		}
	})
	for _, entry := range finished {
		entry.RemoveComponent(components.Shake)
	}

	input := getOrCreateInput(e)
	hover := ""
	if !getScene(e).Held && !sectionOpen(e) {
		hover = PickIcon(e, input.CursorX, input.CursorY)
	}
	getScene(e).HoverIcon = hover
	components.Icon.Each(e.World, func(entry *donburi.Entry) {
		icon := components.Icon.Get(entry)
		icon.Hovered = icon.ID == hover
	})
}

// PickIcon returns the id of the icon under a screen point, or "". Ties go
// to the icon drawn last.
func PickIcon(e *ecs.ECS, x, y float64) string {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok || !spaceEntry.HasComponent(components.Object) {
		return ""
	}
	cursor := components.Object.Get(spaceEntry).Object
	cursor.X, cursor.Y = x, y
	cursor.Update()

	check := cursor.Check(0, 0, tags.ResolvIcon)
	if check == nil {
		return ""
	}

	picked := ""
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		// Cells overlap loosely; confirm the point is inside.
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		picked = components.Icon.Get(entry).ID
	}
	return picked
}

func findIcon(e *ecs.ECS, id string) *components.IconData {
	var found *components.IconData
	tags.Icon.Each(e.World, func(entry *donburi.Entry) {
		if icon := components.Icon.Get(entry); icon.ID == id {
			found = icon
		}
	})
	return found
}

func findIconEntry(e *ecs.ECS, id string) *donburi.Entry {
	var found *donburi.Entry
	tags.Icon.Each(e.World, func(entry *donburi.Entry) {
		if components.Icon.Get(entry).ID == id {
			found = entry
		}
	})
	return found
}

// TriggerIconPop starts the scale bounce on an icon.
func TriggerIconPop(e *ecs.ECS, id string) {
	entry := findIconEntry(e, id)
	if entry == nil {
		return
	}
	peak := float32(cfg.Icon.PopScale)
	seq := gween.NewSequence(
		gween.New(1, peak, float32(cfg.Icon.PopUp), ease.OutQuad),
		gween.New(peak, 1, float32(cfg.Icon.PopDown), ease.OutBack),
	)
	if !entry.HasComponent(components.Pop) {
		entry.AddComponent(components.Pop)
	}
	components.Pop.SetValue(entry, components.PopData{Sequence: seq, Scale: 1})
}

// TriggerIconShake jitters an icon. A weaker shake never overrides a
// running one.
func TriggerIconShake(e *ecs.ECS, id string, intensity float64, duration int) {
	entry := findIconEntry(e, id)
	if entry == nil {
		return
	}
	if entry.HasComponent(components.Shake) {
		shake := components.Shake.Get(entry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	entry.AddComponent(components.Shake)
	components.Shake.SetValue(entry, components.ShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// ShakeOffset returns the current jitter of an entity.
func ShakeOffset(entry *donburi.Entry) (float64, float64) {
	if !entry.HasComponent(components.Shake) {
		return 0, 0
	}
	shake := components.Shake.Get(entry)
	if shake.Duration == 0 {
		return 0, 0
	}
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress
	return math.Sin(float64(shake.Elapsed)*1.1) * intensity, math.Cos(float64(shake.Elapsed)*1.3) * intensity
}
