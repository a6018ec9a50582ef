package components

import (
	"github.com/bogste/pixelfolio/shared/trace"
	"github.com/yohamta/donburi"
)

// TraceData carries the optional CSV recorder and the frame timer.
type TraceData struct {
	Recorder *trace.Recorder
	Stats    *trace.FrameStats
}

var Trace = donburi.NewComponentType[TraceData]()
