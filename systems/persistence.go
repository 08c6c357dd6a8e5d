package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// SavedSettings is the settings payload stored on disk between runs.
type SavedSettings struct {
	Muted    bool   `json:"muted"`
	LastMode string `json:"lastMode"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the gdata store for settings.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "orchard",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings reads saved settings, returning nil when none exist.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings writes the settings payload to the gdata store.
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// ApplySavedSettings pushes loaded settings into the audio layer.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMuted(saved.Muted)
}

// UpdateSettings loads the stored settings, applies fn and writes them
// back. Used so partial updates don't clobber unrelated fields.
func UpdateSettings(fn func(*SavedSettings)) {
	saved, _ := LoadSettings()
	if saved == nil {
		saved = &SavedSettings{}
	}
	fn(saved)
	_ = SaveSettings(saved)
}

// RememberMode persists the last selected game mode.
func RememberMode(mode string) {
	UpdateSettings(func(s *SavedSettings) { s.LastMode = mode })
}
