package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glock() FirearmRecord {
	return NewFirearmRecord(KindHandgun, "Glock", "19")
}

func TestInventoryAddThenList(t *testing.T) {
	inv := NewInventory()
	stored := inv.Add(glock())

	records := inv.List(KindNone)
	require.Len(t, records, 1)
	assert.Equal(t, KindHandgun, records[0].Kind)
	assert.Equal(t, "Glock", records[0].Manufacturer)
	assert.Equal(t, "19", records[0].Model)
	assert.NotEqual(t, uuid.Nil, records[0].ID)
	assert.Equal(t, stored.ID, records[0].ID)
	assert.False(t, records[0].AddedAt.IsZero())
}

func TestInventoryAddKeepsExistingID(t *testing.T) {
	inv := NewInventory()
	rec := glock()
	rec.ID = uuid.New()

	stored := inv.Add(rec)
	assert.Equal(t, rec.ID, stored.ID)
}

func TestInventoryListFilter(t *testing.T) {
	inv := NewInventory()
	inv.Add(glock())
	rifle := inv.Add(NewFirearmRecord(KindRifle, "Ruger", "10/22"))

	records := inv.List(KindRifle)
	require.Len(t, records, 1)
	assert.Equal(t, rifle, records[0])

	assert.Empty(t, inv.List(KindShotgun))
	assert.Len(t, inv.List(KindNone), 2)
}

func TestInventoryListPreservesInsertionOrder(t *testing.T) {
	inv := NewInventory()
	inv.Add(NewFirearmRecord(KindRifle, "Ruger", "10/22"))
	inv.Add(glock())
	inv.Add(NewFirearmRecord(KindRifle, "Savage", "110"))
	inv.Add(glock())

	var models []string
	for _, r := range inv.List(KindRifle) {
		models = append(models, r.Model)
	}
	assert.Equal(t, []string{"10/22", "110"}, models)
	assert.Len(t, inv.List(KindHandgun), 2, "duplicates are kept")
}

func TestInventoryListReturnsCopy(t *testing.T) {
	inv := NewInventory()
	inv.Add(glock())

	records := inv.List(KindNone)
	records[0].Manufacturer = "changed"

	assert.Equal(t, "Glock", inv.List(KindNone)[0].Manufacturer)
}

func TestInventoryDeleteAtOutOfRange(t *testing.T) {
	inv := NewInventory()
	inv.Add(glock())
	before := inv.List(KindNone)

	for _, idx := range []int{-1, 1, 5} {
		assert.False(t, inv.DeleteAt(idx), "index %d", idx)
		assert.False(t, inv.DeleteAt(idx), "index %d twice", idx)
	}
	assert.Equal(t, before, inv.List(KindNone))
	assert.Equal(t, 1, inv.Count())
}

func TestInventoryDeleteAt(t *testing.T) {
	inv := NewInventory()
	a := inv.Add(NewFirearmRecord(KindHandgun, "Glock", "17"))
	inv.Add(NewFirearmRecord(KindHandgun, "Glock", "19"))
	c := inv.Add(NewFirearmRecord(KindHandgun, "Glock", "26"))

	require.True(t, inv.DeleteAt(1))
	assert.Equal(t, []FirearmRecord{a, c}, inv.List(KindNone))
}

func TestInventoryDeleteByID(t *testing.T) {
	inv := NewInventory()
	a := inv.Add(glock())
	b := inv.Add(glock())

	assert.True(t, inv.Delete(a.ID))
	assert.False(t, inv.Delete(a.ID))
	assert.False(t, inv.Delete(uuid.New()))
	assert.Equal(t, []FirearmRecord{b}, inv.List(KindNone))
}

func TestInventoryCountTracksAddsAndDeletes(t *testing.T) {
	inv := NewInventory()
	adds, deleted := 0, 0

	ops := []int{-1, 0, 3, 0, 7, -1, 2, 0, 0, 9, 0}
	for _, idx := range ops {
		if idx < 0 {
			inv.Add(glock())
			adds++
			continue
		}
		if inv.DeleteAt(idx) {
			deleted++
		}
		inv.Add(glock())
		adds++
	}
	assert.Equal(t, adds-deleted, inv.Count())
}

func TestInventoryDeleteAllRoundTrip(t *testing.T) {
	const n = 6

	t.Run("descending", func(t *testing.T) {
		inv := NewInventory()
		for i := 0; i < n; i++ {
			inv.Add(glock())
		}
		for i := inv.Count() - 1; i >= 0; i-- {
			require.True(t, inv.DeleteAt(i))
		}
		assert.Zero(t, inv.Count())
		assert.Empty(t, inv.List(KindNone))
	})

	t.Run("ascending", func(t *testing.T) {
		inv := NewInventory()
		for i := 0; i < n; i++ {
			inv.Add(glock())
		}
		for inv.Count() > 0 {
			require.True(t, inv.DeleteAt(0))
		}
		assert.Zero(t, inv.Count())
		assert.Empty(t, inv.List(KindNone))
	})
}

func TestInventoryCountByKind(t *testing.T) {
	inv := NewInventory()
	inv.Add(glock())
	inv.Add(glock())
	inv.Add(NewFirearmRecord(KindRifle, "Ruger", "10/22"))

	assert.Equal(t, map[Kind]int{
		KindHandgun: 2,
		KindShotgun: 0,
		KindRifle:   1,
	}, inv.CountByKind())
}
