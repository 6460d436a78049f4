package controllers

import (
	"fmt"

	"firearm-inventory/internal/logger"
	"firearm-inventory/internal/models"
)

const component = "MainController"

// InventoryView is the part of the window the controller drives
type InventoryView interface {
	RenderRows(rows []models.FirearmRecord)
	SetTotals(total, visible int, byKind map[models.Kind]int)
	SetFilter(option string)
	ResetForm()
	ShowError(title string, err error)

	SetAddHandler(handler func(models.FormState))
	SetDeleteHandler(handler func(models.FormState))
	SetFilterHandler(handler func(models.FormState))
	SetShowAllHandler(handler func())
}

// MainController turns form actions into inventory operations and keeps
// the view in step with the inventory
type MainController struct {
	inventory *models.Inventory
	view      InventoryView
	logger    logger.Logger

	// rows as last rendered; selected row indices refer to this slice
	displayed    []models.FirearmRecord
	activeFilter models.Kind

	eventHandlers map[string][]EventHandler
}

// EventHandler reacts to a completed inventory change
type EventHandler func(data interface{}) error

// NewMainController creates a controller over inventory
func NewMainController(inventory *models.Inventory, log logger.Logger) *MainController {
	controller := &MainController{
		inventory:     inventory,
		logger:        log,
		eventHandlers: make(map[string][]EventHandler),
	}

	controller.initializeEventHandlers()
	return controller
}

// SetMainView associates the view, connects its callbacks and draws the
// initial table
func (mc *MainController) SetMainView(view InventoryView) {
	mc.view = view
	mc.setupViewEventHandlers()
	mc.render(mc.activeFilter)
}

// AddFirearm validates the form and appends a record. On success the full
// list is shown and the form is cleared.
func (mc *MainController) AddFirearm(state models.FormState) error {
	state = state.Trimmed()

	if missing := state.MissingFields(); len(missing) > 0 {
		err := &MissingFieldError{Fields: missing}
		mc.handleError("Error", err)
		return err
	}

	kind, err := models.ParseKind(state.Kind)
	if err != nil {
		mc.handleError("Error", err)
		return err
	}

	record := mc.inventory.Add(models.NewFirearmRecord(kind, state.Manufacturer, state.Model))

	mc.activeFilter = models.KindNone
	mc.render(models.KindNone)
	if mc.view != nil {
		mc.view.ResetForm()
		mc.view.SetFilter(models.FilterAll)
	}

	mc.emitEvent("firearm_added", record)
	return nil
}

// DeleteSelected removes every record behind the selected rows
func (mc *MainController) DeleteSelected(state models.FormState) error {
	if !state.HasSelection() {
		mc.handleError("Error", ErrNoSelection)
		return ErrNoSelection
	}

	removed := make([]models.FirearmRecord, 0, len(state.SelectedRows))
	for _, row := range state.SelectedRows {
		if row < 0 || row >= len(mc.displayed) {
			mc.logger.Debug(component, "selected row not displayed", map[string]interface{}{
				"row":       row,
				"displayed": len(mc.displayed),
			})
			continue
		}

		record := mc.displayed[row]
		if mc.inventory.Delete(record.ID) {
			removed = append(removed, record)
		}
	}

	mc.render(mc.activeFilter)

	for _, record := range removed {
		mc.emitEvent("firearm_deleted", record)
	}
	return nil
}

// ApplyFilter shows every record or only those of the chosen kind
func (mc *MainController) ApplyFilter(state models.FormState) error {
	kind, err := models.ParseFilter(state.Filter)
	if err != nil {
		mc.handleError("Error", err)
		return err
	}

	mc.activeFilter = kind
	mc.render(kind)

	mc.emitEvent("filter_applied", kind)
	return nil
}

// ShowAll drops the active filter
func (mc *MainController) ShowAll() {
	mc.activeFilter = models.KindNone
	mc.render(models.KindNone)
	if mc.view != nil {
		mc.view.SetFilter(models.FilterAll)
	}
}

// GetApplicationState returns a summary of what is currently shown
func (mc *MainController) GetApplicationState() ApplicationState {
	return ApplicationState{
		Total:        mc.inventory.Count(),
		Visible:      len(mc.displayed),
		ActiveFilter: mc.activeFilter,
	}
}

// ApplicationState represents the current state of the application
type ApplicationState struct {
	Total        int
	Visible      int
	ActiveFilter models.Kind
}

// render replaces the table contents and refreshes the totals. The total
// always counts the whole inventory.
func (mc *MainController) render(filter models.Kind) {
	mc.displayed = mc.inventory.List(filter)

	if mc.view == nil {
		return
	}
	mc.view.RenderRows(mc.displayed)
	mc.view.SetTotals(mc.inventory.Count(), len(mc.displayed), mc.inventory.CountByKind())
}

// setupViewEventHandlers connects view callbacks to controller methods
func (mc *MainController) setupViewEventHandlers() {
	mc.view.SetAddHandler(func(state models.FormState) {
		_ = mc.AddFirearm(state)
	})
	mc.view.SetDeleteHandler(func(state models.FormState) {
		_ = mc.DeleteSelected(state)
	})
	mc.view.SetFilterHandler(func(state models.FormState) {
		_ = mc.ApplyFilter(state)
	})
	mc.view.SetShowAllHandler(mc.ShowAll)
}

// Event system methods

func (mc *MainController) initializeEventHandlers() {
	mc.addEventListener("firearm_added", mc.onFirearmAdded)
	mc.addEventListener("firearm_deleted", mc.onFirearmDeleted)
	mc.addEventListener("filter_applied", mc.onFilterApplied)
}

// AddEventListener registers an extra handler for eventType
func (mc *MainController) AddEventListener(eventType string, handler EventHandler) {
	mc.addEventListener(eventType, handler)
}

func (mc *MainController) addEventListener(eventType string, handler EventHandler) {
	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

// emitEvent runs the handlers in registration order on the calling goroutine
func (mc *MainController) emitEvent(eventType string, data interface{}) {
	for _, handler := range mc.eventHandlers[eventType] {
		if err := handler(data); err != nil {
			mc.logger.Error(component, fmt.Errorf("event handler (%s): %w", eventType, err), nil)
		}
	}
}

func (mc *MainController) onFirearmAdded(data interface{}) error {
	record, ok := data.(models.FirearmRecord)
	if !ok {
		return fmt.Errorf("invalid data type for firearm_added event")
	}

	mc.logger.Info(component, "firearm added", map[string]interface{}{
		"id":    record.ID.String(),
		"type":  record.Kind.String(),
		"total": mc.inventory.Count(),
	})
	return nil
}

func (mc *MainController) onFirearmDeleted(data interface{}) error {
	record, ok := data.(models.FirearmRecord)
	if !ok {
		return fmt.Errorf("invalid data type for firearm_deleted event")
	}

	mc.logger.Info(component, "firearm deleted", map[string]interface{}{
		"id":    record.ID.String(),
		"type":  record.Kind.String(),
		"total": mc.inventory.Count(),
	})
	return nil
}

func (mc *MainController) onFilterApplied(data interface{}) error {
	kind, ok := data.(models.Kind)
	if !ok {
		return fmt.Errorf("invalid data type for filter_applied event")
	}

	name := kind.String()
	if kind == models.KindNone {
		name = models.FilterAll
	}
	mc.logger.Debug(component, "filter applied", map[string]interface{}{
		"filter":  name,
		"visible": len(mc.displayed),
	})
	return nil
}

// handleError logs a rejected action and shows it to the user
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Warning(component, "action rejected", map[string]interface{}{
		"reason": err.Error(),
	})

	if mc.view != nil {
		mc.view.ShowError(title, err)
	}
}
