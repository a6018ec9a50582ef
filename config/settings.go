package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// WindowConfig contains the window sizes offered on startup
type WindowConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Window is the global window size configuration
var Window WindowConfig

func init() {
	Window = WindowConfig{
		Resolutions: []Resolution{
			{Width: 1080, Height: 768, Label: "1080 x 768"},
			{Width: 1440, Height: 1024, Label: "1440 x 1024"},
			{Width: 720, Height: 512, Label: "720 x 512"},
		},
		DefaultResolutionIndex: 0,
	}
}
