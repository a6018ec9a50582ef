package systems

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/bogste/pixelfolio/components"
	cfg "github.com/bogste/pixelfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoPersistence is returned when InitPersistence was never called or
// failed.
var ErrNoPersistence = errors.New("persistence not initialised")

const sessionKey = "session"

// SavedSession represents the session data stored on disk
type SavedSession struct {
	IntroSeen       bool           `json:"introSeen"`
	Visits          int            `json:"visits"`
	LastSection     string         `json:"lastSection"`
	Opened          map[string]int `json:"opened"`
	Fullscreen      bool           `json:"fullscreen"`
	ResolutionIndex int            `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for session storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "pixelfolio",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSession loads the saved session. A missing save returns nil, nil.
func LoadSession() (*SavedSession, error) {
	if gdataManager == nil {
		return nil, ErrNoPersistence
	}

	data, err := gdataManager.LoadItem(sessionKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var s SavedSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSession writes the session to disk
func SaveSession(s *SavedSession) error {
	if gdataManager == nil {
		return ErrNoPersistence
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(sessionKey, data)
}

// SaveCurrentSession saves the session from the SettingsData component
func SaveCurrentSession(s *components.SettingsData) {
	err := SaveSession(&SavedSession{
		IntroSeen:       s.IntroSeen,
		Visits:          s.Visits,
		LastSection:     s.LastSection,
		Opened:          s.Opened,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	})
	if err != nil && !errors.Is(err, ErrNoPersistence) {
		log.Printf("Warning: Could not save session: %v", err)
	}
}

// ApplySavedSession copies a loaded session into the settings component and
// counts this run as a visit.
func ApplySavedSession(e *ecs.ECS, saved *SavedSession) {
	settings := GetOrCreateSettings(e)
	settings.Visits++
	if saved == nil {
		return
	}

	settings.IntroSeen = saved.IntroSeen
	settings.Visits += saved.Visits
	settings.LastSection = saved.LastSection
	for id, n := range saved.Opened {
		settings.Opened[id] += n
	}
	settings.Fullscreen = saved.Fullscreen
	settings.ResolutionIndex = saved.ResolutionIndex
}

// ApplyWindowSettings applies the saved window mode without needing an ECS
// reference. Used during startup before the scene exists.
func ApplyWindowSettings(saved *SavedSession) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Window.Resolutions) {
		res := cfg.Window.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
