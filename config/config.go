package config

import (
	"image/color"

	"github.com/bogste/pixelfolio/shared/sequence"
	"github.com/bogste/pixelfolio/shared/sprite"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ColorConfig is the page palette. Only the shell reads it; the core
// packages receive colours through their own params.
type ColorConfig struct {
	Background color.RGBA
	Ground     color.RGBA
	Shadow     color.RGBA
	LabelInk   color.RGBA
	LabelNear  color.RGBA
	Portal     []color.RGBA
	// ShiverA and ShiverB tint the two chromatic copies drawn while the
	// character shivers.
	ShiverA  color.RGBA
	ShiverB  color.RGBA
	BoltCore color.RGBA
	Debug    color.RGBA
}

// IconConfig contains icon tile presentation values
type IconConfig struct {
	// PopScale is the peak scale of the pop after a headbutt.
	PopScale float64 `yaml:"pop_scale"`
	// PopUp and PopDown are tween durations in seconds.
	PopUp   float64 `yaml:"pop_up"`
	PopDown float64 `yaml:"pop_down"`
	// ShakeFrames is how long an icon jitters after impact.
	ShakeFrames int     `yaml:"shake_frames"`
	ShakeAmount float64 `yaml:"shake_amount"`
	LabelOffset float64 `yaml:"label_offset"`
}

// SectionConfig contains section window presentation values
type SectionConfig struct {
	FadeIn   float64 `yaml:"fade_in"`
	Width    int     `yaml:"width"`
	Padding  int     `yaml:"padding"`
	Greeting string  `yaml:"greeting"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipIntro bool   // Skip the wake-up intro
	ShowHUD   bool   // Draw the state overlay from the first frame
	Seed      uint64 // Seed for every random stream
	TracePath string // Write a per-frame CSV here when set
}

// Global configuration instances
var C *Config
var Sequence sequence.Config
var Colors ColorConfig
var Icon IconConfig
var Section SectionConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1440,
		Height: 1024,
		Title:  "pixelfolio",
	}

	Sequence = sequence.DefaultConfig()

	Colors = ColorConfig{
		Background: sprite.MustHex("#DAD9D2"),
		Ground:     sprite.MustHex("#B9B7AD"),
		Shadow:     color.RGBA{R: 0, G: 0, B: 0, A: 77},
		LabelInk:   sprite.MustHex("#3A3A3A"),
		LabelNear:  sprite.MustHex("#1A1A2E"),
		Portal: []color.RGBA{
			sprite.MustHex("#2D3A6E"),
			sprite.MustHex("#4A90D9"),
			sprite.MustHex("#7B61B8"),
			sprite.MustHex("#CDEBFF"),
		},
		ShiverA:  sprite.MustHex("#FF3D7F"),
		ShiverB:  sprite.MustHex("#3DDCFF"),
		BoltCore: sprite.MustHex("#FFFFFF"),
		Debug:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
	}

	Icon = IconConfig{
		PopScale:    1.25,
		PopUp:       0.08,
		PopDown:     0.22,
		ShakeFrames: 10,
		ShakeAmount: 2,
		LabelOffset: 14,
	}

	Section = SectionConfig{
		FadeIn:   0.2,
		Width:    520,
		Padding:  16,
		Greeting: "Hi! Move the mouse to walk. Click an icon or a door.",
	}

	Debug = DebugConfig{
		Seed: 1,
	}

	if err := applyYAML(defaultsYAML); err != nil {
		panic("config: " + err.Error())
	}
}
