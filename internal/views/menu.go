package views

import (
	"fyne.io/fyne/v2"
)

// SetupMenus installs the main menu. quit is called for File > Quit.
func (mv *MainView) SetupMenus(appName, version string, quit func()) {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", quit),
	)
	// fyne adds its own Quit item to the first menu unless one is flagged
	fileMenu.Items[0].IsQuit = true

	inventoryMenu := fyne.NewMenu("Inventory",
		fyne.NewMenuItem("Show All", func() {
			if mv.showAllHandler != nil {
				mv.showAllHandler()
			}
		}),
		fyne.NewMenuItem("Clear Selection", mv.ClearSelection),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			mv.ShowAboutDialog(appName, version)
		}),
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(fileMenu, inventoryMenu, helpMenu))
}
