package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"os"

	"github.com/bogste/pixelfolio/assets"
	"github.com/bogste/pixelfolio/config"
	"github.com/bogste/pixelfolio/fonts"
	"github.com/bogste/pixelfolio/scenes"
	"github.com/bogste/pixelfolio/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	overlay := flag.String("config", "", "YAML file overriding the built-in tuning")
	layoutPath := flag.String("layout", "", "Tiled map with zones, icons and sections (default: embedded)")
	tracePath := flag.String("trace", "", "Write a per-frame CSV trace to this file")
	seed := flag.Uint64("seed", 0, "Seed for every random stream (0 keeps the configured seed)")
	skipIntro := flag.Bool("skip-intro", false, "Start without the wake-up intro")
	debug := flag.Bool("debug", false, "Show the debug overlay from the first frame")
	flag.Parse()

	if err := config.LoadOverlay(*overlay); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		config.Debug.Seed = *seed
	}
	config.Debug.SkipIntro = config.Debug.SkipIntro || *skipIntro
	config.Debug.ShowHUD = config.Debug.ShowHUD || *debug
	if *tracePath != "" {
		config.Debug.TracePath = *tracePath
	}

	layout, err := assets.LoadLayout(*layoutPath)
	if err != nil {
		log.Fatalf("Failed to load layout: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load the saved session
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSession()
	if err != nil && !errors.Is(err, systems.ErrNoPersistence) {
		log.Printf("Warning: Could not load session: %v", err)
	}
	systems.ApplyWindowSettings(saved)

	var traceFile *os.File
	if config.Debug.TracePath != "" {
		traceFile, err = os.Create(config.Debug.TracePath)
		if err != nil {
			log.Fatalf("Failed to create trace file: %v", err)
		}
		defer traceFile.Close()
	}

	var scene *scenes.PortfolioScene
	if traceFile != nil {
		scene = scenes.NewPortfolioScene(layout, saved, traceFile)
	} else {
		scene = scenes.NewPortfolioScene(layout, saved, nil)
	}

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Printf("Error: %v", err)
	}
	scene.FlushTrace()
}
