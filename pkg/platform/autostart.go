package platform

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

// Login item identity
const (
	AppName        = "day-reserve"
	AppDisplayName = "Day Reserve"
)

// Autostart manages the launch-at-login entry for an executable
type Autostart struct {
	app *autostart.App
}

// NewAutostart registers execPath. An empty execPath resolves the running
// executable.
func NewAutostart(execPath string) (*Autostart, error) {
	if execPath == "" {
		var err error
		execPath, err = os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to locate executable: %w", err)
		}

		// Resolve symlinks if any
		execPath, err = filepath.EvalSymlinks(execPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve executable path: %w", err)
		}
	}

	return &Autostart{
		app: &autostart.App{
			Name:        AppName,
			DisplayName: AppDisplayName,
			Exec:        []string{execPath},
		},
	}, nil
}

// Enabled reports whether the login item is installed
func (a *Autostart) Enabled() bool {
	return a.app.IsEnabled()
}

// Sync installs or removes the login item to match enable
func (a *Autostart) Sync(enable bool) error {
	if enable == a.app.IsEnabled() {
		return nil
	}

	if enable {
		if err := a.app.Enable(); err != nil {
			return fmt.Errorf("failed to enable autostart: %w", err)
		}
		log.Println("[PLATFORM] Autostart enabled")
		return nil
	}

	if err := a.app.Disable(); err != nil {
		return fmt.Errorf("failed to disable autostart: %w", err)
	}
	log.Println("[PLATFORM] Autostart disabled")
	return nil
}
