package main

import (
	"log"
	"os/exec"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/day-reserve/pkg/audio"
	"github.com/borgmon/day-reserve/pkg/models"
	"github.com/borgmon/day-reserve/pkg/platform"
)

const savedMessage = "Settings saved successfully"

type SettingsWindow struct {
	window    fyne.Window
	app       fyne.App
	config    *models.Config
	autostart *platform.Autostart
	onSave    func(*models.Config)

	autoStartCheck *widget.Check
	chimeCheck     *widget.Check

	saveStatusLabel *widget.Label
	saveButton      *widget.Button
}

func NewSettingsWindow(app fyne.App, config *models.Config, autostart *platform.Autostart, onSave func(*models.Config)) *SettingsWindow {
	sw := &SettingsWindow{
		app:       app,
		config:    config,
		autostart: autostart,
		onSave:    onSave,
	}

	sw.window = app.NewWindow("Day Reserve - Settings")
	sw.buildUI()

	return sw
}

func (sw *SettingsWindow) buildUI() {
	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveStatusLabel.Importance = widget.SuccessImportance

	sw.saveButton = widget.NewButton("Save", sw.save)
	sw.saveButton.Importance = widget.HighImportance
	sw.saveButton.Disable() // Initially disabled until changes are made

	previewButton := widget.NewButton("Preview Chime", func() {
		audio.PlayChime()
	})

	closeButton := widget.NewButton("Close", func() {
		sw.handleClose()
	})

	buttonRow := container.NewBorder(
		nil,
		nil,
		container.NewHBox(sw.saveButton, sw.saveStatusLabel),
		container.NewHBox(previewButton, closeButton),
		container.NewHBox(),
	)

	content := container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		sw.buildGeneralSection(),
	)

	sw.window.SetContent(content)
	sw.window.Resize(fyne.NewSize(640, 420))
	sw.window.CenterOnScreen()

	sw.window.SetCloseIntercept(func() {
		sw.handleClose()
	})
}

func (sw *SettingsWindow) buildGeneralSection() fyne.CanvasObject {
	sw.autoStartCheck = widget.NewCheck("Launch on login", func(bool) {
		sw.updateSaveButtonState()
	})
	sw.autoStartCheck.SetChecked(sw.config.AutoStart)
	if sw.autostart == nil {
		sw.autoStartCheck.Disable()
	}

	sw.chimeCheck = widget.NewCheck("Play a chime after reserving", func(bool) {
		sw.updateSaveButtonState()
	})
	sw.chimeCheck.SetChecked(sw.config.ChimeEnabled)

	storageURIEntry := widget.NewEntry()
	storageURIEntry.SetText(sw.app.Storage().RootURI().String())
	storageURIEntry.Disable()

	openStorageButton := widget.NewButton("Open in File Manager", func() {
		openInFileManager(sw.app.Storage().RootURI().Path())
	})

	autoStartHelp := widget.NewLabel("Start Day Reserve when you log in")
	autoStartHelp.Importance = widget.MediumImportance

	chimeHelp := widget.NewLabel("Confirms new and edited reservations")
	chimeHelp.Importance = widget.MediumImportance

	storageHelp := widget.NewLabel("Reservations and settings are stored here")
	storageHelp.Wrapping = fyne.TextWrapWord
	storageHelp.Importance = widget.MediumImportance

	exportDir := sw.config.ExportDir
	if exportDir == "" {
		exportDir = "(not set)"
	}
	exportDirLabel := widget.NewLabel(exportDir)
	exportDirLabel.Truncation = fyne.TextTruncateEllipsis

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(widget.NewLabel("Auto Start:"), autoStartHelp),
		sw.autoStartCheck,

		container.NewVBox(widget.NewLabel("Chime:"), chimeHelp),
		sw.chimeCheck,

		container.NewVBox(widget.NewLabel("Storage Location:"), storageHelp),
		container.NewBorder(nil, container.NewPadded(openStorageButton), nil, nil, storageURIEntry),

		widget.NewLabel("Last Export Folder:"),
		exportDirLabel,
	)

	content := container.NewVBox(
		widget.NewLabel("General Settings"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}

func (sw *SettingsWindow) save() {
	sw.saveButton.Disable()
	sw.setStatus("Saving...", widget.MediumImportance)

	newConfig := sw.getConfigFromUI()
	go func() {
		if sw.autostart != nil {
			if err := sw.autostart.Sync(newConfig.AutoStart); err != nil {
				log.Printf("Error setting autostart: %v", err)
				fyne.Do(func() {
					sw.setStatus("Error: Failed to set autostart", widget.DangerImportance)
					sw.updateSaveButtonState()
				})
				return
			}
		}

		fyne.Do(func() {
			sw.config = newConfig
			if sw.onSave != nil {
				sw.onSave(newConfig)
			}
			sw.setStatus(savedMessage, widget.SuccessImportance)
			sw.updateSaveButtonState()

			// Clear success message after 3 seconds
			go func() {
				time.Sleep(3 * time.Second)
				fyne.Do(func() {
					if sw.saveStatusLabel.Text == savedMessage {
						sw.setStatus("", widget.SuccessImportance)
					}
				})
			}()
		})
	}()
}

func (sw *SettingsWindow) setStatus(text string, importance widget.Importance) {
	sw.saveStatusLabel.SetText(text)
	sw.saveStatusLabel.Importance = importance
	sw.saveStatusLabel.Refresh()
}

func (sw *SettingsWindow) getConfigFromUI() *models.Config {
	return &models.Config{
		AutoStart:    sw.autoStartCheck.Checked,
		ChimeEnabled: sw.chimeCheck.Checked,
		ExportDir:    sw.config.ExportDir,
	}
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

// hasChanges checks if the current UI state differs from the saved config
func (sw *SettingsWindow) hasChanges() bool {
	current := sw.getConfigFromUI()
	return current.AutoStart != sw.config.AutoStart ||
		current.ChimeEnabled != sw.config.ChimeEnabled
}

func (sw *SettingsWindow) updateSaveButtonState() {
	if sw.saveButton == nil {
		return
	}
	if sw.hasChanges() {
		sw.saveButton.Enable()
	} else {
		sw.saveButton.Disable()
	}
}

// handleClose handles window close with unsaved changes check
func (sw *SettingsWindow) handleClose() {
	if !sw.hasChanges() {
		sw.window.Close()
		return
	}

	dialog.ShowConfirm("Unsaved Changes",
		"You have unsaved changes. Are you sure you want to close?",
		func(confirmed bool) {
			if confirmed {
				sw.window.Close()
			}
		}, sw.window)
}

func openInFileManager(path string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		log.Printf("Unsupported OS: %s", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		log.Printf("Error opening file manager: %v", err)
	}
}
