package components

import (
	"firearm-inventory/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// EntryForm collects the type, manufacturer and model of a new firearm
type EntryForm struct {
	container         *fyne.Container
	kindSelect        *widget.Select
	manufacturerEntry *widget.Entry
	modelEntry        *widget.Entry
}

func NewEntryForm() *EntryForm {
	f := &EntryForm{}
	f.createComponents()
	f.buildLayout()
	return f
}

func (f *EntryForm) createComponents() {
	f.kindSelect = widget.NewSelect(models.KindOptions(), nil)
	f.kindSelect.PlaceHolder = "Select type"

	f.manufacturerEntry = widget.NewEntry()
	f.manufacturerEntry.SetPlaceHolder("e.g. Glock")

	f.modelEntry = widget.NewEntry()
	f.modelEntry.SetPlaceHolder("e.g. 19")
}

func (f *EntryForm) buildLayout() {
	f.container = container.New(layout.NewFormLayout(),
		widget.NewLabel("Firearm Type:"), f.kindSelect,
		widget.NewLabel("Manufacturer:"), f.manufacturerEntry,
		widget.NewLabel("Model:"), f.modelEntry,
	)
}

// Fill copies the current field values into state
func (f *EntryForm) Fill(state *models.FormState) {
	state.Kind = f.kindSelect.Selected
	state.Manufacturer = f.manufacturerEntry.Text
	state.Model = f.modelEntry.Text
}

// SetValues sets all three fields; an empty kind clears the selector
func (f *EntryForm) SetValues(kind, manufacturer, model string) {
	if kind == "" {
		f.kindSelect.ClearSelected()
	} else {
		f.kindSelect.SetSelected(kind)
	}
	f.manufacturerEntry.SetText(manufacturer)
	f.modelEntry.SetText(model)
}

// Reset clears the entries and the type selector
func (f *EntryForm) Reset() {
	f.SetValues("", "", "")
}

// GetContainer returns the form container
func (f *EntryForm) GetContainer() *fyne.Container {
	return f.container
}
