package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/borgmon/day-reserve/pkg/calendar"
	"github.com/borgmon/day-reserve/pkg/controller"
)

const exportFileName = "reservations.ics"

var icsFilter = storage.NewExtensionFileFilter([]string{".ics"})

func (dr *DayReserve) showExportDialog() {
	window := dr.calendarWindow.window

	if dr.reservations.Len() == 0 {
		dialog.ShowInformation("Export", "There are no reservations to export.", window)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		if writer == nil {
			return // cancelled
		}

		dr.rememberExportDir(writer.URI())

		go func() {
			count, err := dr.exportTo(writer)
			fyne.Do(func() {
				if err != nil {
					log.Printf("[EXPORT] %v", err)
					dialog.ShowError(err, window)
					return
				}
				dialog.ShowInformation("Export", fmt.Sprintf("Exported %d reservations.", count), window)
			})
		}()
	}, window)

	save.SetFileName(exportFileName)
	save.SetFilter(icsFilter)
	if location := dr.exportLocation(); location != nil {
		save.SetLocation(location)
	}
	save.Show()
}

func (dr *DayReserve) exportTo(writer fyne.URIWriteCloser) (int, error) {
	entries := dr.reservations.All()

	err := calendar.Export(writer, entries)
	closeErr := writer.Close()
	if err != nil {
		return 0, fmt.Errorf("failed to export reservations: %w", err)
	}
	if closeErr != nil {
		return 0, fmt.Errorf("failed to write %s: %w", writer.URI().Name(), closeErr)
	}

	log.Printf("[EXPORT] Wrote %d reservations to %s", len(entries), writer.URI())
	return len(entries), nil
}

func (dr *DayReserve) showImportDialog() {
	window := dr.calendarWindow.window

	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		if reader == nil {
			return // cancelled
		}

		dr.rememberExportDir(reader.URI())
		schedule := dr.controller.Schedule()

		go func() {
			result, err := calendar.Import(reader, schedule)
			if closeErr := reader.Close(); closeErr != nil {
				log.Printf("[IMPORT] Warning: failed to close %s: %v", reader.URI(), closeErr)
			}

			fyne.Do(func() {
				if err != nil {
					log.Printf("[IMPORT] %v", err)
					dialog.ShowError(fmt.Errorf("failed to import reservations: %w", err), window)
					return
				}
				dr.applyImport(result, window)
			})
		}()
	}, window)

	open.SetFilter(icsFilter)
	if location := dr.exportLocation(); location != nil {
		open.SetLocation(location)
	}
	open.Show()
}

// applyImport merges imported entries into the store. Runs on the UI goroutine.
func (dr *DayReserve) applyImport(result *calendar.ImportResult, window fyne.Window) {
	if len(result.Entries) == 0 {
		message := "The file contains no reservations."
		if result.Skipped > 0 {
			message = fmt.Sprintf("No reservable days found. %d events were skipped.", result.Skipped)
		}
		dialog.ShowInformation("Import", message, window)
		return
	}

	// An open entry may be overwritten by the import
	if dr.controller.State() == controller.StateEditingDay {
		dr.controller.HandleModalCancel()
	}

	merged := dr.reservations.Merge(result.Entries)
	if err := dr.reservations.Save(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save reservations: %w", err), window)
		return
	}
	dr.controller.Reload()

	message := fmt.Sprintf("Imported %d reservations.", merged)
	if result.Skipped > 0 {
		message += fmt.Sprintf(" %d events were skipped.", result.Skipped)
	}
	log.Printf("[IMPORT] %s", message)
	dialog.ShowInformation("Import", message, window)
}

// rememberExportDir stores the folder of uri for the next file dialog
func (dr *DayReserve) rememberExportDir(uri fyne.URI) {
	parent, err := storage.Parent(uri)
	if err != nil {
		log.Printf("Warning: no parent folder for %s: %v", uri, err)
		return
	}
	if parent.Path() == dr.config.ExportDir {
		return
	}

	dr.config.ExportDir = parent.Path()
	dr.configStore.Save(dr.config)
}

func (dr *DayReserve) exportLocation() fyne.ListableURI {
	if dr.config.ExportDir == "" {
		return nil
	}

	location, err := storage.ListerForURI(storage.NewFileURI(dr.config.ExportDir))
	if err != nil {
		log.Printf("Warning: export folder %s unavailable: %v", dr.config.ExportDir, err)
		return nil
	}
	return location
}
