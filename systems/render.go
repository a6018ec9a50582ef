package systems

import (
	"image/color"
	"math"

	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/fonts"
	"github.com/bogste/pixelfolio/shared/gamemath"
	"github.com/bogste/pixelfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// whitePixel is scaled and tinted for every axis-free quad.
	whitePixel *ebiten.Image
)

func getWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

func getFrame(e *ecs.ECS) (*components.DirectorData, bool) {
	entry, ok := components.Director.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Director.Get(entry), true
}

// DrawBackground clears to the page colour and draws the ground line.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	data, ok := getFrame(e)
	if !ok {
		return
	}
	w := float32(screen.Bounds().Dx())
	vector.FillRect(screen, 0, float32(data.Frame.GroundY), w, 2, cfg.Colors.Ground, false)
}

// DrawPortal draws concentric pixel rings that slowly rotate and breathe.
func DrawPortal(e *ecs.ECS, screen *ebiten.Image) {
	data, ok := getFrame(e)
	if !ok {
		return
	}
	p := data.Frame.Portal
	t := float64(data.Frame.Number)
	palette := cfg.Colors.Portal

	for ring := 0; ring < len(palette); ring++ {
		radius := 10 + float64(ring)*9 + math.Sin(t*0.05+float64(ring))*2
		dots := 10 + ring*6
		spin := t * 0.01 * float64(1-2*(ring%2))
		size := float32(3)
		for i := 0; i < dots; i++ {
			a := spin + float64(i)/float64(dots)*2*math.Pi
			x := p.X + math.Cos(a)*radius
			// Squashed vertically so the portal reads as a doorway.
			y := p.Y + math.Sin(a)*radius*1.35
			vector.FillRect(screen, float32(math.Floor(x))-size/2, float32(math.Floor(y))-size/2, size, size, palette[ring], false)
		}
	}
}

// DrawZones labels each hotspot and highlights the one the character is in.
func DrawZones(e *ecs.ECS, screen *ebiten.Image) {
	data, ok := getFrame(e)
	if !ok {
		return
	}
	groundY := data.Frame.GroundY
	viewW := float64(screen.Bounds().Dx())
	face := fonts.Label.Get()
	bold := fonts.LabelBold.Get()

	tags.Zone.Each(e.World, func(entry *donburi.Entry) {
		marker := components.ZoneMarker.Get(entry)
		x := marker.Zone.PixelX(viewW)
		label := marker.Zone.Label
		if label == "" {
			label = marker.Zone.ID
		}

		clr := lerpColor(cfg.Colors.LabelInk, cfg.Colors.LabelNear, marker.Glow)
		f := face
		if marker.Near {
			f = bold
		}
		bounds := text.BoundString(f, label)
		text.Draw(screen, label, f, int(x)-bounds.Dx()/2, int(groundY)+30, clr)

		// Underline grows in while the character stands here.
		if marker.Glow > 0.01 {
			w := float32(float64(bounds.Dx()) * marker.Glow)
			vector.FillRect(screen, float32(x)-w/2, float32(groundY)+36, w, 2, clr, false)
		}
	})
}

// DrawIcons renders the project tiles with their pop, shake and rotation.
func DrawIcons(e *ecs.ECS, screen *ebiten.Image) {
	px := getWhitePixel()
	face := fonts.Label.Get()

	tags.Icon.Each(e.World, func(entry *donburi.Entry) {
		icon := components.Icon.Get(entry)
		scale := 1.0
		if entry.HasComponent(components.Pop) {
			scale = components.Pop.Get(entry).Scale
		}
		if icon.Hovered {
			scale *= 1.06
		}
		dx, dy := ShakeOffset(entry)
		center := icon.Center()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(icon.Size, icon.Size)
		drawOp.GeoM.Translate(-icon.Size/2, -icon.Size/2)
		drawOp.GeoM.Rotate(icon.Rotation * math.Pi / 180)
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(center.X+dx, center.Y+dy)
		drawOp.ColorScale.ScaleWithColor(icon.Color)
		screen.DrawImage(px, drawOp)

		if icon.Hovered {
			bounds := text.BoundString(face, icon.Label)
			x := int(center.X) - bounds.Dx()/2
			y := int(icon.Rest.Y - cfg.Icon.LabelOffset)
			text.Draw(screen, icon.Label, face, x, y, cfg.Colors.LabelNear)
		}
	})
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = gamemath.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(gamemath.Lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
