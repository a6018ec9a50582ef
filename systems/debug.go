package systems

import (
	"fmt"
	"image/color"

	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/fonts"
	"github.com/bogste/pixelfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the pick boxes and zone reach and prints the director
// state. Toggled with F3.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvCursor) {
				c = color.RGBA{255, 0, 255, 255}
			}
			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	data, ok := getFrame(e)
	if !ok {
		return
	}
	f := data.Frame
	viewW := float64(screen.Bounds().Dx())
	reach := float32(cfg.Sequence.ZoneThreshold)
	for _, z := range cfg.Sequence.Zones {
		x := float32(z.PixelX(viewW))
		vector.FillRect(screen, x-reach, float32(f.GroundY)-4, 2*reach, 4, color.RGBA{255, 200, 0, 90}, false)
	}

	s := f.State
	stats := FrameSummary(e)
	lines := []string{
		fmt.Sprintf("frame %d  state %s  near %q", f.Number, s.Warp, f.NearZone),
		fmt.Sprintf("x %.1f  y %.1f  vy %.2f  sprint %.2f", s.X, s.Y, s.VelocityY, s.SprintSpeed),
		fmt.Sprintf("in flight %d  dust %d  bolts %d  sparks %d", len(f.InFlight), len(f.DustQuads), len(f.Bolts), len(f.Sparks)),
		fmt.Sprintf("frame ms mean %.2f  sd %.2f  p95 %.2f (n=%d)", stats.Mean, stats.StdDev, stats.P95, stats.Count),
	}
	if f.OpenSection != "" {
		lines = append(lines, "section "+f.OpenSection)
	}

	face := fonts.Mono.Get()
	lineH := face.Metrics().Height.Ceil() + 2
	vector.FillRect(screen, 8, 8, 460, float32(len(lines)*lineH+8), cfg.Colors.Debug, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 14, 8+(i+1)*lineH, color.White)
	}
}
