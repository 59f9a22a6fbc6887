package store

import (
	"fyne.io/fyne/v2"
	"github.com/borgmon/day-reserve/pkg/models"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	prefs fyne.Preferences
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(prefs fyne.Preferences) *ConfigStore {
	return &ConfigStore{prefs: prefs}
}

// Load loads configuration from preferences
func (cs *ConfigStore) Load() *models.Config {
	defaults := models.DefaultConfig()

	return &models.Config{
		AutoStart:    cs.prefs.BoolWithFallback("auto_start", defaults.AutoStart),
		ChimeEnabled: cs.prefs.BoolWithFallback("chime_enabled", defaults.ChimeEnabled),
		ExportDir:    cs.prefs.StringWithFallback("export_dir", defaults.ExportDir),
	}
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	cs.prefs.SetBool("auto_start", config.AutoStart)
	cs.prefs.SetBool("chime_enabled", config.ChimeEnabled)
	cs.prefs.SetString("export_dir", config.ExportDir)
}
