package systems

import "github.com/hajimehoshi/ebiten/v2"

// frameDT is the length of one update in seconds.
func frameDT() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(tps)
}
