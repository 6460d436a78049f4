package components

import (
	"fmt"
	"strings"

	"firearm-inventory/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the inventory total and a per-type breakdown
type StatusBar struct {
	container  *fyne.Container
	totalLabel *widget.Label
	kindLabel  *widget.Label
	viewLabel  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.totalLabel = widget.NewLabel(totalText(0))
	sb.totalLabel.TextStyle = fyne.TextStyle{Bold: true}
	sb.kindLabel = widget.NewLabel("")
	sb.viewLabel = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.totalLabel,
		widget.NewSeparator(),
		sb.kindLabel,
		layout.NewSpacer(),
		sb.viewLabel,
	)
}

// SetTotals updates the labels. total is the whole inventory; visible is
// the number of rows currently in the table.
func (sb *StatusBar) SetTotals(total, visible int, byKind map[models.Kind]int) {
	sb.totalLabel.SetText(totalText(total))

	parts := make([]string, 0, len(byKind))
	for _, k := range models.Kinds() {
		parts = append(parts, fmt.Sprintf("%s: %d", k, byKind[k]))
	}
	sb.kindLabel.SetText(strings.Join(parts, "  "))

	sb.viewLabel.SetText(fmt.Sprintf("Showing %d of %d", visible, total))
}

// TotalText returns the text of the total label
func (sb *StatusBar) TotalText() string {
	return sb.totalLabel.Text
}

// ViewText returns the text of the visible-rows label
func (sb *StatusBar) ViewText() string {
	return sb.viewLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func totalText(total int) string {
	return fmt.Sprintf("Total Inventory: %d", total)
}
