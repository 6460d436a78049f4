package components

import (
	"firearm-inventory/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the add/delete actions and the filter controls
type Toolbar struct {
	container    *fyne.Container
	addButton    *widget.Button
	deleteButton *widget.Button
	filterSelect *widget.Select
	filterButton *widget.Button

	// Event handlers
	addHandler    func()
	deleteHandler func()
	filterHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.addButton = widget.NewButtonWithIcon("Add Firearm", theme.ContentAddIcon(), nil)
	t.addButton.Importance = widget.HighImportance

	t.deleteButton = widget.NewButtonWithIcon("Delete Selected", theme.DeleteIcon(), nil)
	t.deleteButton.Importance = widget.DangerImportance

	t.filterSelect = widget.NewSelect(models.FilterOptions(), nil)
	t.filterSelect.SetSelected(models.FilterAll)

	t.filterButton = widget.NewButtonWithIcon("Filter", theme.SearchIcon(), nil)
}

func (t *Toolbar) buildLayout() {
	actionSection := container.NewGridWithColumns(2,
		t.addButton,
		t.deleteButton,
	)

	filterSection := container.NewBorder(nil, nil, nil, t.filterButton, t.filterSelect)

	t.container = container.NewVBox(
		actionSection,
		widget.NewSeparator(),
		filterSection,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.addButton.OnTapped = func() {
		if t.addHandler != nil {
			t.addHandler()
		}
	}

	t.deleteButton.OnTapped = func() {
		if t.deleteHandler != nil {
			t.deleteHandler()
		}
	}

	t.filterButton.OnTapped = func() {
		if t.filterHandler != nil {
			t.filterHandler()
		}
	}
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetAddHandler(handler func()) {
	t.addHandler = handler
}

func (t *Toolbar) SetDeleteHandler(handler func()) {
	t.deleteHandler = handler
}

func (t *Toolbar) SetFilterHandler(handler func()) {
	t.filterHandler = handler
}

// Filter returns the selected filter option
func (t *Toolbar) Filter() string {
	return t.filterSelect.Selected
}

// SetFilter selects a filter option without applying it
func (t *Toolbar) SetFilter(option string) {
	t.filterSelect.SetSelected(option)
}

// AddButton, DeleteButton and FilterButton expose the buttons for tests
func (t *Toolbar) AddButton() *widget.Button { return t.addButton }
func (t *Toolbar) DeleteButton() *widget.Button { return t.deleteButton }
func (t *Toolbar) FilterButton() *widget.Button { return t.filterButton }
