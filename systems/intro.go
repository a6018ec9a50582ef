package systems

import (
	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/shared/intro"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIntro plays the wake-up sequence and holds the director's input
// until it has finished.
func UpdateIntro(e *ecs.ECS) {
	introEntry, ok := components.Intro.First(e.World)
	if !ok {
		return
	}
	data := components.Intro.Get(introEntry)
	scene := getScene(e)

	if data.Sequence == nil || data.Sequence.Done() {
		data.Pose = intro.Rest
		scene.Held = false
		return
	}

	input := getOrCreateInput(e)
	if data.Sequence.BubbleVisible() && (GetAction(input, cfg.ActionSelect).JustPressed || GetAction(input, cfg.ActionJump).JustPressed) {
		data.Sequence.Dismiss()
	}
	if GetAction(input, cfg.ActionCancel).JustPressed {
		data.Sequence.Skip()
	}

	data.Pose = data.Sequence.Update(frameDT())
	scene.Held = !data.Sequence.Done()

	if data.Sequence.Done() {
		settings := GetOrCreateSettings(e)
		settings.IntroSeen = true
		SaveCurrentSession(settings)
	}
}

// IntroBubbleVisible reports whether the greeting should be on screen.
func IntroBubbleVisible(e *ecs.ECS) bool {
	introEntry, ok := components.Intro.First(e.World)
	if !ok {
		return false
	}
	seq := components.Intro.Get(introEntry).Sequence
	return seq != nil && seq.BubbleVisible()
}

func getScene(e *ecs.ECS) *components.SceneData {
	entry, ok := components.Scene.First(e.World)
	if !ok {
		return &components.SceneData{}
	}
	return components.Scene.Get(entry)
}
