package controllers

import (
	"fmt"
	"strings"
)

// MissingFieldError is returned when a firearm is added with an empty field
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	if len(e.Fields) == 0 {
		return "All fields must be filled!"
	}
	return fmt.Sprintf("All fields must be filled! Missing: %s", strings.Join(e.Fields, ", "))
}

// NoSelectionError is returned when delete is requested with no row selected
type NoSelectionError struct{}

func (NoSelectionError) Error() string {
	return "No firearm selected!"
}

var ErrNoSelection error = NoSelectionError{}
