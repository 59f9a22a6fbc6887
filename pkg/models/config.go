package models

// Config holds application configuration
type Config struct {
	AutoStart    bool   `json:"auto_start"`    // launch at login
	ChimeEnabled bool   `json:"chime_enabled"` // play a chime after saving a reservation
	ExportDir    string `json:"export_dir"`    // last folder used for iCalendar export/import
}

// DefaultConfig returns the configuration used before anything is saved
func DefaultConfig() *Config {
	return &Config{
		AutoStart:    false,
		ChimeEnabled: true,
	}
}
