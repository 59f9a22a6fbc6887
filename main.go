package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/borgmon/day-reserve/pkg/audio"
	"github.com/borgmon/day-reserve/pkg/controller"
	"github.com/borgmon/day-reserve/pkg/models"
	"github.com/borgmon/day-reserve/pkg/platform"
	"github.com/borgmon/day-reserve/pkg/store"
	"golang.design/x/hotkey"
)

const appID = "io.github.borgmon.dayreserve"

type DayReserve struct {
	app            fyne.App
	config         *models.Config
	configStore    *store.ConfigStore
	reservations   *store.ReservationStore
	controller     *controller.Controller
	autostart      *platform.Autostart
	calendarWindow *CalendarWindow
	settingsWindow *SettingsWindow
	shortcut       *hotkey.Hotkey
}

func main() {
	dr := &DayReserve{
		app: app.NewWithID(appID),
	}

	if err := dr.initialize(); err != nil {
		log.Fatal(err)
	}

	dr.run()
}

func (dr *DayReserve) initialize() error {
	prefs := dr.app.Preferences()

	dr.configStore = store.NewConfigStore(prefs)
	dr.config = dr.configStore.Load()

	dr.reservations = store.NewReservationStore(prefs)
	dr.reservations.Load()

	autostart, err := platform.NewAutostart("")
	if err != nil {
		log.Printf("Warning: autostart unavailable: %v", err)
	} else {
		dr.autostart = autostart
		// Sync autostart state with config on startup
		if err := dr.autostart.Sync(dr.config.AutoStart); err != nil {
			log.Printf("Warning: failed to setup autostart: %v", err)
		}
	}

	dr.calendarWindow = NewCalendarWindow(dr.app)
	dr.controller = controller.New(dr.reservations, dr.calendarWindow.prompter, dr.calendarWindow)
	dr.controller.OnReserved = func(key string, value models.ReservationValue) {
		if dr.config.ChimeEnabled {
			audio.PlayChime()
		}
	}
	dr.controller.OnError = func(err error) {
		dialog.ShowError(err, dr.calendarWindow.window)
	}

	dr.calendarWindow.OnRender = func(models.Grid) {
		dr.updateSystemTrayMenu()
	}
	dr.calendarWindow.Bind(dr.controller)

	dr.setupSystemTray()
	dr.registerGlobalShortcut()

	return nil
}

func (dr *DayReserve) run() {
	dr.app.Lifecycle().SetOnEnteredForeground(func() {
		// The day may have changed while the app was in the background
		dr.controller.Reload()
	})
	dr.calendarWindow.Show()
	dr.app.Run()
}

func (dr *DayReserve) showCalendarWindow() {
	platform.BringToFront()
	dr.calendarWindow.Show()
}

func (dr *DayReserve) showSettingsWindow() {
	// If settings window already exists, just bring it to front
	if dr.settingsWindow != nil {
		dr.settingsWindow.window.RequestFocus()
		dr.settingsWindow.window.Show()
		return
	}

	dr.settingsWindow = NewSettingsWindow(dr.app, dr.config, dr.autostart, func(newConfig *models.Config) {
		// Export folder is owned by the transfer dialogs
		newConfig.ExportDir = dr.config.ExportDir
		dr.config = newConfig
		dr.configStore.Save(dr.config)
	})
	dr.settingsWindow.window.SetOnClosed(func() {
		dr.settingsWindow = nil
	})
	dr.settingsWindow.Show()
}

func (dr *DayReserve) quit() {
	dr.unregisterGlobalShortcut()
	dr.app.Quit()
}
