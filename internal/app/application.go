package app

import (
	"fmt"
	"time"

	"firearm-inventory/internal/config"
	"firearm-inventory/internal/controllers"
	"firearm-inventory/internal/logger"
	"firearm-inventory/internal/models"
	"firearm-inventory/internal/shutdown"
	"firearm-inventory/internal/views"

	"fyne.io/fyne/v2"
)

const (
	component       = "Application"
	shutdownTimeout = 5 * time.Second
)

var _ controllers.InventoryView = (*views.MainView)(nil)

// Application bundles the window, the inventory and the controller that
// connects them
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	config     config.Config
	inventory  *models.Inventory
	controller *controllers.MainController
	view       *views.MainView
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
}

// NewApplication builds the main window on fyneApp and wires the MVC parts
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("application: %w", err)
	}

	window := fyneApp.NewWindow(config.AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info(component, "starting application", map[string]interface{}{
		"version": config.AppVersion,
		"config":  cfg.String(),
	})

	inventory := models.NewInventory()
	controller := controllers.NewMainController(inventory, log)
	view := views.NewMainView(window)

	lifecycle := NewLifecycle(fyneApp, inventory, log)
	shutdownMgr := shutdown.NewManager(log, shutdownTimeout)
	shutdownMgr.Register(lifecycle)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		config:     cfg,
		inventory:  inventory,
		controller: controller,
		view:       view,
		lifecycle:  lifecycle,
		shutdown:   shutdownMgr,
	}

	controller.SetMainView(view)
	view.SetupMenus(config.AppName, config.AppVersion, application.requestClose)
	application.setupWindowEvents()

	log.Info(component, "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() error {
	stop := a.shutdown.Listen()
	defer stop()

	a.logger.Info(component, "GUI displayed", nil)
	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	return nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(a.requestClose)

	a.window.SetOnClosed(func() {
		a.logger.Info(component, "window closed", nil)
		a.shutdown.Shutdown()
	})
}

// requestClose asks before discarding records, since nothing is saved
func (a *Application) requestClose() {
	count := a.inventory.Count()
	a.logger.Info(component, "close requested", map[string]interface{}{
		"records": count,
	})

	if count == 0 {
		a.window.Close()
		return
	}

	a.view.ShowConfirm(
		"Exit Application",
		fmt.Sprintf("%d firearm record(s) will be discarded. Exit anyway?", count),
		func(confirmed bool) {
			if confirmed {
				a.window.Close()
			}
		},
	)
}

// Controller returns the main controller
func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

// View returns the main view
func (a *Application) View() *views.MainView {
	return a.view
}
