package systems

import (
	"fmt"
	"io"
	"time"

	"github.com/bogste/pixelfolio/components"
	"github.com/bogste/pixelfolio/shared/trace"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTrace times the frame and records the director's output. Must run
// after UpdateDirector.
func UpdateTrace(e *ecs.ECS) {
	entry, ok := components.Trace.First(e.World)
	if !ok {
		return
	}
	data := components.Trace.Get(entry)
	data.Stats.Tick(time.Now())

	if data.Recorder == nil {
		return
	}
	if dirEntry, ok := components.Director.First(e.World); ok {
		data.Recorder.Record(trace.FromFrame(components.Director.Get(dirEntry).Frame))
	}
}

// FlushTrace writes any recorded samples to w.
func FlushTrace(e *ecs.ECS, w io.Writer) error {
	entry, ok := components.Trace.First(e.World)
	if !ok {
		return nil
	}
	if err := components.Trace.Get(entry).Recorder.Flush(w); err != nil {
		return fmt.Errorf("flush trace: %w", err)
	}
	return nil
}

// FrameSummary returns the rolling frame-time stats.
func FrameSummary(e *ecs.ECS) trace.Summary {
	entry, ok := components.Trace.First(e.World)
	if !ok {
		return trace.Summary{}
	}
	return components.Trace.Get(entry).Stats.Summary()
}
