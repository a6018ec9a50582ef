package systems

import (
	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func getSection(e *ecs.ECS) *components.SectionData {
	entry, ok := components.Section.First(e.World)
	if !ok {
		return nil
	}
	return components.Section.Get(entry)
}

func sectionOpen(e *ecs.ECS) bool {
	s := getSection(e)
	return s != nil && s.Open()
}

// OpenSection shows a section's content and records the visit.
func OpenSection(e *ecs.ECS, id string) {
	section := getSection(e)
	if section == nil {
		return
	}

	title, body := id, ""
	if entry, ok := components.Director.First(e.World); ok {
		if layout := components.Director.Get(entry).Layout; layout != nil {
			s := layout.SectionFor(id)
			title, body = s.Title, s.Body
		}
	}

	*section = components.SectionData{
		ID:          id,
		Title:       title,
		Body:        body,
		OpenedFrame: getScene(e).Frame,
		Fade:        gween.New(0, 1, float32(cfg.Section.FadeIn), ease.OutCubic),
		Changed:     true,
	}

	settings := GetOrCreateSettings(e)
	settings.LastSection = id
	settings.Opened[id]++
	SaveCurrentSession(settings)
}

// CloseSection hides the section panel. It does not notify the director;
// callers that close from the UI go through RequestCloseSection.
func CloseSection(e *ecs.ECS) {
	section := getSection(e)
	if section == nil || !section.Open() {
		return
	}
	*section = components.SectionData{Changed: true}
}

// RequestCloseSection asks the director to close the open section. The
// director emits EventCloseSection next frame, which hides the panel, and
// brings a warped character back.
func RequestCloseSection(e *ecs.ECS) {
	entry, ok := components.Director.First(e.World)
	if !ok {
		return
	}
	components.Director.Get(entry).Director.CloseSection()
}

// UpdateSection advances the panel fade.
func UpdateSection(e *ecs.ECS) {
	section := getSection(e)
	if section == nil || section.Fade == nil {
		return
	}
	alpha, done := section.Fade.Update(float32(frameDT()))
	section.Alpha = alpha
	if done {
		section.Fade = nil
		section.Alpha = 1
	}
}
