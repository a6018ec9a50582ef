package components

import (
	"github.com/bogste/pixelfolio/shared/intro"
	"github.com/yohamta/donburi"
)

type IntroData struct {
	Sequence *intro.Sequence
	Pose     intro.Pose
}

var Intro = donburi.NewComponentType[IntroData]()
