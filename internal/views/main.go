package views

import (
	"fmt"

	"firearm-inventory/internal/models"
	"firearm-inventory/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainView is the single inventory screen
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	form          *components.EntryForm
	toolbar       *components.Toolbar
	table         *components.InventoryTable
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	addHandler     func(models.FormState)
	deleteHandler  func(models.FormState)
	filterHandler  func(models.FormState)
	showAllHandler func()
}

// NewMainView builds the inventory screen and sets it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.form = components.NewEntryForm()
	mv.toolbar = components.NewToolbar()
	mv.table = components.NewInventoryTable()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	topArea := container.NewVBox(
		mv.form.GetContainer(),
		mv.toolbar.GetContainer(),
		widget.NewSeparator(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,                     // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		mv.table.Widget(),           // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers snapshots the widgets into a FormState on every action
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetAddHandler(func() {
		if mv.addHandler != nil {
			mv.addHandler(mv.State())
		}
	})

	mv.toolbar.SetDeleteHandler(func() {
		if mv.deleteHandler != nil {
			mv.deleteHandler(mv.State())
		}
	})

	mv.toolbar.SetFilterHandler(func() {
		if mv.filterHandler != nil {
			mv.filterHandler(mv.State())
		}
	})
}

// State returns the current widget values
func (mv *MainView) State() models.FormState {
	state := models.FormState{
		Filter:       mv.toolbar.Filter(),
		SelectedRows: mv.table.SelectedRows(),
	}
	mv.form.Fill(&state)
	return state
}

// Event handler setters - called by controller

func (mv *MainView) SetAddHandler(handler func(models.FormState)) {
	mv.addHandler = handler
}

func (mv *MainView) SetDeleteHandler(handler func(models.FormState)) {
	mv.deleteHandler = handler
}

func (mv *MainView) SetFilterHandler(handler func(models.FormState)) {
	mv.filterHandler = handler
}

func (mv *MainView) SetShowAllHandler(handler func()) {
	mv.showAllHandler = handler
}

// UI update methods - called by controller

// RenderRows replaces the table contents
func (mv *MainView) RenderRows(rows []models.FirearmRecord) {
	mv.table.SetRows(rows)
}

// SetTotals refreshes the status bar
func (mv *MainView) SetTotals(total, visible int, byKind map[models.Kind]int) {
	mv.statusBar.SetTotals(total, visible, byKind)
}

// SetFilter changes the filter selector without applying it
func (mv *MainView) SetFilter(option string) {
	mv.toolbar.SetFilter(option)
}

// ResetForm clears the manufacturer and model entries and the type selector
func (mv *MainView) ResetForm() {
	mv.form.Reset()
}

// ClearSelection unmarks all table rows
func (mv *MainView) ClearSelection() {
	mv.table.ClearSelection()
}

// ShowError displays a blocking error dialog
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(err, mv.window)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// ShowAboutDialog displays application information
func (mv *MainView) ShowAboutDialog(appName, version string) {
	content := container.NewVBox(
		widget.NewLabel(appName),
		widget.NewLabel(fmt.Sprintf("Version: %s", version)),
		widget.NewLabel("Records are kept in memory and are lost when the window closes."),
	)

	dialog.ShowCustom("About", "Close", content, mv.window)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Components, exposed for tests and the menu

func (mv *MainView) Form() *components.EntryForm { return mv.form }
func (mv *MainView) Toolbar() *components.Toolbar { return mv.toolbar }
func (mv *MainView) Table() *components.InventoryTable { return mv.table }
func (mv *MainView) StatusBar() *components.StatusBar { return mv.statusBar }

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
