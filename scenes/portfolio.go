package scenes

import (
	"image/color"
	"io"
	"log"
	"sync"

	"github.com/bogste/pixelfolio/assets"
	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/shared/layoutdata"
	"github.com/bogste/pixelfolio/systems"
	"github.com/bogste/pixelfolio/systems/factory"
	"github.com/bogste/pixelfolio/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// traceFlushFrames bounds how many trace rows are held in memory.
const traceFlushFrames = 600

// PortfolioScene is the single interactive page: the character, its effects,
// the project icons and the section panel.
type PortfolioScene struct {
	ecs     *ecs.ECS
	layout  *layoutdata.Layout
	session *systems.SavedSession
	trace   io.Writer
	once    sync.Once
	frames  int

	sectionUI *ui.SectionWindow
	bubble    *ui.IntroBubble
}

// NewPortfolioScene creates the scene. session may be nil on a first visit;
// trace may be nil to disable recording.
func NewPortfolioScene(layout *layoutdata.Layout, session *systems.SavedSession, trace io.Writer) *PortfolioScene {
	return &PortfolioScene{layout: layout, session: session, trace: trace}
}

func (ps *PortfolioScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if entry, ok := components.Section.First(ps.ecs.World); ok {
		ps.sectionUI.Update(components.Section.Get(entry))
	}
	ps.bubble.Update(systems.IntroBubbleVisible(ps.ecs))

	ps.frames++
	if ps.frames%traceFlushFrames == 0 {
		ps.FlushTrace()
	}
}

func (ps *PortfolioScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.IntroBubbleVisible(ps.ecs) {
		if x, y, ok := systems.CharacterHead(ps.ecs); ok {
			ps.bubble.Draw(screen, x, y)
		}
	}
	if entry, ok := components.Section.First(ps.ecs.World); ok {
		ps.sectionUI.Draw(screen, components.Section.Get(entry).Alpha)
	}
}

// FlushTrace writes recorded frames to the trace writer.
func (ps *PortfolioScene) FlushTrace() {
	if ps.ecs == nil || ps.trace == nil {
		return
	}
	if err := systems.FlushTrace(ps.ecs, ps.trace); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (ps *PortfolioScene) configure() {
	// Load shaders for the shiver ghosts
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and settings run first so every later system sees this frame's actions
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateIntro)
	// Icons pick the hover target before the director reads it
	ecs.AddSystem(systems.UpdateIcons)
	ecs.AddSystem(systems.UpdateDirector)
	ecs.AddSystem(systems.UpdateSection)
	ecs.AddSystem(systems.UpdateTrace)

	// Add renderers
	ecs.AddRenderer(cfg.LayerBackground, systems.DrawBackground)
	ecs.AddRenderer(cfg.LayerBackground, systems.DrawPortal)
	ecs.AddRenderer(cfg.LayerBackground, systems.DrawZones)
	ecs.AddRenderer(cfg.LayerWorld, systems.DrawIcons)
	ecs.AddRenderer(cfg.LayerWorld, systems.DrawCharacter)
	ecs.AddRenderer(cfg.LayerEffects, systems.DrawLightning)
	ecs.AddRenderer(cfg.LayerEffects, systems.DrawWarpParticles)
	ecs.AddRenderer(cfg.LayerEffects, systems.DrawDust)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)

	ps.ecs = ecs

	viewW, viewH := float64(cfg.C.Width), float64(cfg.C.Height)

	// The space must exist before icons register their hit boxes.
	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, 16, 16)

	settings := systems.GetOrCreateSettings(ecs)
	systems.ApplySavedSession(ecs, ps.session)

	factory.CreateDirector(ecs, ps.layout, viewW, viewH)
	for _, ic := range ps.layout.Icons {
		factory.CreateIcon(ecs, ic, viewW, viewH)
	}
	for _, z := range ps.layout.Zones {
		factory.CreateZoneMarker(ecs, z)
	}
	factory.CreateSection(ecs)
	factory.CreateIntro(ecs, cfg.Debug.SkipIntro || settings.IntroSeen)
	factory.CreateTrace(ecs, ps.trace != nil)

	ps.sectionUI = ui.NewSectionWindow(func() {
		systems.RequestCloseSection(ecs)
	})
	ps.bubble = ui.NewIntroBubble()
}
