package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is the category of a firearm record
type Kind int

const (
	// KindNone is the unset kind; as a filter it selects every record
	KindNone Kind = iota
	KindHandgun
	KindShotgun
	KindRifle
)

// FilterAll is the filter option that shows the whole inventory
const FilterAll = "All"

var kindNames = map[Kind]string{
	KindHandgun: "Handgun",
	KindShotgun: "Shotgun",
	KindRifle:   "Rifle",
}

// Kinds returns the selectable kinds in display order
func Kinds() []Kind {
	return []Kind{KindHandgun, KindShotgun, KindRifle}
}

// KindOptions returns the display names used by the kind selector
func KindOptions() []string {
	kinds := Kinds()
	options := make([]string, 0, len(kinds))
	for _, k := range kinds {
		options = append(options, k.String())
	}
	return options
}

// FilterOptions returns "All" followed by every kind name
func FilterOptions() []string {
	return append([]string{FilterAll}, KindOptions()...)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return ""
}

// InvalidKindError reports text that names no known kind
type InvalidKindError struct {
	Value string
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("unknown firearm type %q", e.Value)
}

// ParseKind resolves a display name to a Kind
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindNone, &InvalidKindError{Value: s}
}

// ParseFilter resolves a filter option; "All" yields KindNone
func ParseFilter(s string) (Kind, error) {
	if strings.TrimSpace(s) == FilterAll {
		return KindNone, nil
	}
	return ParseKind(s)
}

// FirearmRecord is a single inventory entry. Records are values; the
// inventory only ever hands out copies.
type FirearmRecord struct {
	ID           uuid.UUID
	Kind         Kind
	Manufacturer string
	Model        string
	AddedAt      time.Time
}

// NewFirearmRecord builds a record without an ID; Inventory.Add assigns one
func NewFirearmRecord(kind Kind, manufacturer, model string) FirearmRecord {
	return FirearmRecord{
		Kind:         kind,
		Manufacturer: manufacturer,
		Model:        model,
	}
}

func (r FirearmRecord) String() string {
	return fmt.Sprintf("%s - %s %s", r.Kind, r.Manufacturer, r.Model)
}

// Columns returns the table cells for the record: Type, Manufacturer, Model
func (r FirearmRecord) Columns() [3]string {
	return [3]string{r.Kind.String(), r.Manufacturer, r.Model}
}
