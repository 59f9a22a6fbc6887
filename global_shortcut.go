package main

import (
	"log"

	"fyne.io/fyne/v2"
	"golang.design/x/hotkey"
)

// registerGlobalShortcut opens the calendar on Ctrl+Shift+D from any app
func (dr *DayReserve) registerGlobalShortcut() {
	hk := hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeyD)
	dr.shortcut = hk

	go func() {
		if err := hk.Register(); err != nil {
			log.Printf("Warning: failed to register Ctrl+Shift+D: %v", err)
			return
		}

		for range hk.Keydown() {
			fyne.Do(func() {
				dr.showCalendarWindow()
			})
		}
	}()
}

func (dr *DayReserve) unregisterGlobalShortcut() {
	if dr.shortcut == nil {
		return
	}
	if err := dr.shortcut.Unregister(); err != nil {
		log.Printf("Warning: failed to unregister Ctrl+Shift+D: %v", err)
	}
	dr.shortcut = nil
}
