package systems

import (
	"image/color"

	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/shared/particles"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawWarpParticles draws the sprite cells that are travelling to or from the
// portal.
func DrawWarpParticles(e *ecs.ECS, screen *ebiten.Image) {
	data, ok := getFrame(e)
	if !ok {
		return
	}
	drawQuads(screen, data.Frame.WarpQuads)
}

// DrawDust draws the impact burst under the struck icon.
func DrawDust(e *ecs.ECS, screen *ebiten.Image) {
	data, ok := getFrame(e)
	if !ok {
		return
	}
	drawQuads(screen, data.Frame.DustQuads)
}

// DrawLightning draws the sprint trail: afterimages first, then streaks,
// bolts and finally the decay sparks on top.
func DrawLightning(e *ecs.ECS, screen *ebiten.Image) {
	data, ok := getFrame(e)
	if !ok {
		return
	}
	f := data.Frame

	drawQuads(screen, f.Ghosts)

	snap := float32(cfg.Sequence.Lightning.Snap)
	for _, q := range f.Streaks {
		vector.FillRect(screen, float32(q.X), float32(q.Y), float32(q.Size), snap, fade(q.Color, q.Alpha), false)
	}

	for _, b := range f.Bolts {
		if b.Alpha <= 0 || len(b.Points) < 2 {
			continue
		}
		outer := fade(b.Color, b.Alpha)
		core := fade(cfg.Colors.BoltCore, b.Alpha)
		w := float32(b.Width)
		for i := 1; i < len(b.Points); i++ {
			a, c := b.Points[i-1], b.Points[i]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(c.X), float32(c.Y), w, outer, false)
		}
		if w < 2 {
			continue
		}
		for i := 1; i < len(b.Points); i++ {
			a, c := b.Points[i-1], b.Points[i]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(c.X), float32(c.Y), w/2, core, false)
		}
	}

	drawQuads(screen, f.Sparks)
}

func drawQuads(screen *ebiten.Image, quads []particles.Quad) {
	for _, q := range quads {
		if q.Alpha <= 0 || q.Size <= 0 {
			continue
		}
		s := float32(q.Size)
		vector.FillRect(screen, float32(q.X), float32(q.Y), s, s, fade(q.Color, q.Alpha), false)
	}
}

// fade scales a colour's alpha, premultiplied the way ebiten expects.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
