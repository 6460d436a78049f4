package models

import "strings"

// FormState is a snapshot of the input widgets, taken by the view and
// handed to the controller on every user action
type FormState struct {
	Kind         string
	Manufacturer string
	Model        string
	Filter       string
	SelectedRows []int
}

// Trimmed returns the state with whitespace removed from the text fields
func (s FormState) Trimmed() FormState {
	s.Kind = strings.TrimSpace(s.Kind)
	s.Manufacturer = strings.TrimSpace(s.Manufacturer)
	s.Model = strings.TrimSpace(s.Model)
	s.Filter = strings.TrimSpace(s.Filter)
	return s
}

// MissingFields lists the names of the empty entry fields
func (s FormState) MissingFields() []string {
	t := s.Trimmed()
	var missing []string
	if t.Kind == "" {
		missing = append(missing, "Firearm Type")
	}
	if t.Manufacturer == "" {
		missing = append(missing, "Manufacturer")
	}
	if t.Model == "" {
		missing = append(missing, "Model")
	}
	return missing
}

// HasSelection reports whether any table row is selected
func (s FormState) HasSelection() bool {
	return len(s.SelectedRows) > 0
}
