package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// entryModal shows an existing reservation with Edit, Remove and Cancel
type entryModal struct {
	popup *widget.PopUp
	label *widget.Label
}

func newEntryModal(canvas fyne.Canvas, onEdit, onRemove, onCancel func()) *entryModal {
	m := &entryModal{
		label: widget.NewLabel(""),
	}
	m.label.Alignment = fyne.TextAlignCenter
	m.label.Wrapping = fyne.TextWrapWord

	editButton := widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), onEdit)
	editButton.Importance = widget.HighImportance

	removeButton := widget.NewButtonWithIcon("Remove", theme.DeleteIcon(), onRemove)
	removeButton.Importance = widget.DangerImportance

	cancelButton := widget.NewButton("Cancel", onCancel)

	content := container.NewVBox(
		m.label,
		widget.NewSeparator(),
		container.NewGridWithColumns(3, editButton, removeButton, cancelButton),
	)

	m.popup = widget.NewModalPopUp(container.NewPadded(content), canvas)
	m.popup.Resize(fyne.NewSize(420, m.popup.MinSize().Height))

	return m
}

func (m *entryModal) Show(label string) {
	m.label.SetText(label)
	m.popup.Show()
}

func (m *entryModal) Hide() {
	m.popup.Hide()
}
