package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// formPrompter asks for a line of text with a one-field form dialog
type formPrompter struct {
	window fyne.Window
}

func newFormPrompter(window fyne.Window) *formPrompter {
	return &formPrompter{window: window}
}

// AskText implements controller.Prompter
func (p *formPrompter) AskText(message, initial string, done func(value string, ok bool)) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Name or OFF")
	entry.SetText(initial)

	items := []*widget.FormItem{
		widget.NewFormItem("Name", entry),
	}

	form := dialog.NewForm(message, "OK", "Cancel", items, func(confirmed bool) {
		done(entry.Text, confirmed)
	}, p.window)

	// Enter submits the dialog
	entry.OnSubmitted = func(string) {
		form.Submit()
	}

	form.Resize(fyne.NewSize(380, form.MinSize().Height))
	form.Show()
	p.window.Canvas().Focus(entry)
}
