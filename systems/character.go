package systems

import (
	"image/color"
	"math"

	"github.com/bogste/pixelfolio/assets"
	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/shared/character"
	"github.com/bogste/pixelfolio/shared/intro"
	"github.com/bogste/pixelfolio/shared/sprite"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// canvasPad leaves room around the sprite for leg swing and shiver.
const canvasPad = 16

var (
	charCanvas  *ebiten.Image
	opaqueCache []sprite.Pixel
	opaqueOf    *sprite.Sprite
	shaderOp    = &ebiten.DrawRectShaderOptions{}
)

// DrawCharacter paints the sprite at full canvas resolution, then scales it
// down onto the ground line. Cells owned by warp particles are skipped.
func DrawCharacter(e *ecs.ECS, screen *ebiten.Image) {
	data, ok := getFrame(e)
	if !ok {
		return
	}
	f := data.Frame
	state := f.State
	if state.Warp == character.Warped {
		return
	}

	sp := data.Sprite
	px := data.Director.Machine().Params.PixelSize
	canvas := paintCharacter(sp, data.Shiver, f.InFlight, state, f.Number, f.ShiverIntensity, px)

	pose := intro.Rest
	if entry, ok := components.Intro.First(e.World); ok {
		pose = components.Intro.Get(entry).Pose
	}

	scale := cfg.Sequence.YScale()
	geo := ebiten.GeoM{}
	// Origin at the feet: bottom centre of the unpadded sprite.
	geo.Translate(-canvasPad-float64(sp.Cols*px)/2, -canvasPad-float64(sp.Rows*px))
	if state.Direction == character.Left {
		geo.Scale(-1, 1)
	}
	geo.Scale(pose.ScaleX*scale, pose.ScaleY*scale)
	geo.Translate(state.X, f.GroundY+state.Y*scale+pose.Y)

	if f.ShiverIntensity > 0 && assets.TintShader != nil {
		split := data.Shiver.Split(f.Number, f.ShiverIntensity) * float64(px)
		drawTinted(screen, canvas, geo, -split, cfg.Colors.ShiverA, 0.45*f.ShiverIntensity)
		drawTinted(screen, canvas, geo, split, cfg.Colors.ShiverB, 0.45*f.ShiverIntensity)
	}

	drawOp.GeoM = geo
	drawOp.ColorScale.Reset()
	screen.DrawImage(canvas, drawOp)
}

func paintCharacter(sp *sprite.Sprite, shiver *sprite.Shiver, inFlight map[sprite.PixelKey]struct{}, state character.State, frame int, intensity float64, px int) *ebiten.Image {
	w := sp.Cols*px + 2*canvasPad
	h := sp.Rows*px + 2*canvasPad
	if charCanvas == nil || charCanvas.Bounds().Dx() != w || charCanvas.Bounds().Dy() != h {
		charCanvas = ebiten.NewImage(w, h)
	}
	charCanvas.Clear()

	if opaqueOf != sp {
		opaqueCache = sp.Opaque()
		opaqueOf = sp
	}

	size := float32(px)
	breath := sprite.BreathOffset(state.BreathTimer)
	for _, p := range opaqueCache {
		if _, ok := inFlight[p.PixelKey]; ok {
			continue
		}
		clr, ok := sp.Color(p.Key, state.IsBlinking)
		if !ok {
			continue
		}
		x := float64(canvasPad + p.Col*px)
		x += sp.LegOffset(p.Row, p.Col, state.WalkFrame, state.IsWalking)
		x += shiver.Offset(p.Row, frame, intensity) * float64(px)
		y := float64(canvasPad+p.Row*px) + breath
		vector.FillRect(charCanvas, float32(math.Floor(x)), float32(math.Floor(y)), size, size, clr, false)
	}

	// Pixel ellipse shadow, drawn over the feet.
	if len(inFlight) == 0 {
		cx := float64(canvasPad) + float64(sp.Cols*px)/2
		cy := float64(canvasPad + sp.Rows*px - 2)
		rx := float64(sp.Cols*px) * 0.35
		const ry = 6
		for dy := -ry; dy <= ry; dy++ {
			hw := rx * math.Sqrt(1-float64(dy*dy)/float64(ry*ry))
			vector.FillRect(charCanvas, float32(cx-hw), float32(cy)+float32(dy), float32(2*hw), 1, cfg.Colors.Shadow, false)
		}
	}
	return charCanvas
}

// drawTinted draws a flat-colour copy of img shifted by dx canvas pixels.
func drawTinted(screen, img *ebiten.Image, geo ebiten.GeoM, dx float64, clr color.RGBA, alpha float64) {
	shifted := ebiten.GeoM{}
	shifted.Translate(dx, 0)
	shifted.Concat(geo)

	b := img.Bounds()
	shaderOp.GeoM = shifted
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"TintColor": []float32{
			float32(clr.R) / 255,
			float32(clr.G) / 255,
			float32(clr.B) / 255,
			float32(alpha),
		},
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.TintShader, shaderOp)
}

// CharacterHead returns the screen position just above the character's head.
func CharacterHead(e *ecs.ECS) (x, y float64, ok bool) {
	data, ok := getFrame(e)
	if !ok {
		return 0, 0, false
	}
	f := data.Frame
	rows := float64(data.Sprite.Rows)
	top := f.GroundY + f.State.Y*cfg.Sequence.YScale() - rows*cfg.Sequence.Warp.DisplayPixel
	return f.State.X, top, true
}
