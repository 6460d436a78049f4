package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Inventory holds firearm records in insertion order
type Inventory struct {
	mu      sync.RWMutex
	records []FirearmRecord
	now     func() time.Time
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{
		records: make([]FirearmRecord, 0),
		now:     time.Now,
	}
}

// Add appends a record and returns the stored copy. A record without an ID
// gets a fresh one.
func (inv *Inventory) Add(record FirearmRecord) FirearmRecord {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.AddedAt.IsZero() {
		record.AddedAt = inv.now()
	}
	inv.records = append(inv.records, record)
	return record
}

// DeleteAt removes the record at index. Out-of-range indices are ignored;
// the result reports whether anything was removed.
func (inv *Inventory) DeleteAt(index int) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if index < 0 || index >= len(inv.records) {
		return false
	}
	inv.records = append(inv.records[:index], inv.records[index+1:]...)
	return true
}

// Delete removes the record with the given ID
func (inv *Inventory) Delete(id uuid.UUID) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	for i, r := range inv.records {
		if r.ID == id {
			inv.records = append(inv.records[:i], inv.records[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the records, restricted to filter unless it is
// KindNone
func (inv *Inventory) List(filter Kind) []FirearmRecord {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	result := make([]FirearmRecord, 0, len(inv.records))
	for _, r := range inv.records {
		if filter == KindNone || r.Kind == filter {
			result = append(result, r)
		}
	}
	return result
}

// Count returns the number of records
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.records)
}

// CountByKind returns per-kind totals; every selectable kind is present
func (inv *Inventory) CountByKind() map[Kind]int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	counts := make(map[Kind]int, len(kindNames))
	for _, k := range Kinds() {
		counts[k] = 0
	}
	for _, r := range inv.records {
		counts[r.Kind]++
	}
	return counts
}
