package app

import (
	"sync"

	"firearm-inventory/internal/logger"
	"firearm-inventory/internal/models"

	"fyne.io/fyne/v2"
)

// Lifecycle quits the fyne application once, from any goroutine
type Lifecycle struct {
	fyneApp   fyne.App
	inventory *models.Inventory
	logger    logger.Logger
	once      sync.Once
}

func NewLifecycle(fyneApp fyne.App, inventory *models.Inventory, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp:   fyneApp,
		inventory: inventory,
		logger:    log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", map[string]interface{}{
			"discarded_records": l.inventory.Count(),
		})

		fyne.Do(l.fyneApp.Quit)

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}
