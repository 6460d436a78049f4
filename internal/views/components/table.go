package components

import (
	"sort"

	"firearm-inventory/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

var columnTitles = [3]string{"Type", "Manufacturer", "Model"}

var columnWidths = [3]float32{120, 220, 200}

// InventoryTable renders firearm records as rows of Type, Manufacturer and
// Model. Tapping a row toggles it in the selection, so several rows can be
// marked for deletion at once.
type InventoryTable struct {
	table    *widget.Table
	rows     []models.FirearmRecord
	selected map[int]bool
}

func NewInventoryTable() *InventoryTable {
	t := &InventoryTable{
		selected: make(map[int]bool),
	}
	t.createTable()
	return t
}

func (t *InventoryTable) createTable() {
	t.table = widget.NewTable(
		func() (int, int) {
			return len(t.rows), len(columnTitles)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		t.updateCell,
	)

	t.table.ShowHeaderRow = true
	t.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	t.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(columnTitles) {
			obj.(*widget.Label).SetText(columnTitles[id.Col])
		}
	}

	for col, w := range columnWidths {
		t.table.SetColumnWidth(col, w)
	}

	t.table.OnSelected = func(id widget.TableCellID) {
		t.ToggleRow(id.Row)
		t.table.Unselect(id)
	}
}

func (t *InventoryTable) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)
	if id.Row < 0 || id.Row >= len(t.rows) || id.Col < 0 || id.Col >= len(columnTitles) {
		label.SetText("")
		return
	}

	if t.selected[id.Row] {
		label.Importance = widget.HighImportance
		label.TextStyle = fyne.TextStyle{Bold: true}
	} else {
		label.Importance = widget.MediumImportance
		label.TextStyle = fyne.TextStyle{}
	}
	label.SetText(t.rows[id.Row].Columns()[id.Col])
}

// SetRows replaces the table contents and clears the selection
func (t *InventoryTable) SetRows(rows []models.FirearmRecord) {
	t.rows = rows
	t.selected = make(map[int]bool)
	t.table.Refresh()
}

// Rows returns the records currently shown
func (t *InventoryTable) Rows() []models.FirearmRecord {
	return t.rows
}

// ToggleRow adds or removes a row from the selection
func (t *InventoryTable) ToggleRow(row int) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	if t.selected[row] {
		delete(t.selected, row)
	} else {
		t.selected[row] = true
	}
	t.table.Refresh()
}

// SelectedRows returns the selected row indices in ascending order
func (t *InventoryTable) SelectedRows() []int {
	rows := make([]int, 0, len(t.selected))
	for row := range t.selected {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// ClearSelection unmarks every row
func (t *InventoryTable) ClearSelection() {
	t.selected = make(map[int]bool)
	t.table.Refresh()
}

// Widget returns the underlying table widget
func (t *InventoryTable) Widget() *widget.Table {
	return t.table
}
