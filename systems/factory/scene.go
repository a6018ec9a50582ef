package factory

import (
	"github.com/bogste/pixelfolio/archetypes"
	"github.com/bogste/pixelfolio/components"
	"github.com/bogste/pixelfolio/shared/intro"
	"github.com/bogste/pixelfolio/shared/trace"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSection(ecs *ecs.ECS) *donburi.Entry {
	section := archetypes.Section.Spawn(ecs)
	components.Section.SetValue(section, components.SectionData{})
	return section
}

// CreateIntro spawns the wake-up sequence. A skipped intro starts finished
// so the page is interactive on the first frame.
func CreateIntro(ecs *ecs.ECS, skip bool) *donburi.Entry {
	entry := archetypes.Intro.Spawn(ecs)
	seq := intro.New()
	if skip {
		seq.Skip()
	}
	components.Intro.SetValue(entry, components.IntroData{
		Sequence: seq,
		Pose:     intro.Rest,
	})
	return entry
}

// CreateTrace spawns the frame timer and, when record is set, a CSV recorder.
func CreateTrace(ecs *ecs.ECS, record bool) *donburi.Entry {
	entry := archetypes.Trace.Spawn(ecs)
	data := components.TraceData{Stats: trace.NewFrameStats(120)}
	if record {
		data.Recorder = trace.NewRecorder()
	}
	components.Trace.SetValue(entry, data)
	return entry
}
