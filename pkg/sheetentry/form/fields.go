// Package form drives data entry for one sheet: it builds field descriptors
// from the sheet schema, tracks field values and states, and turns submit
// and update actions into repository calls.
package form

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
)

// Field describes one generated input.
type Field struct {
	// Label is the column name.
	Label string
	// Placeholder is shown while the field is empty and unfocused.
	Placeholder string
	// Validate reports why a value is not acceptable, or nil.
	Validate func(string) error
}

// BuildFields returns one field per column, in column order.
func BuildFields(sheet models.SheetSchema) []Field {
	fields := make([]Field, len(sheet.Columns))
	for i, column := range sheet.Columns {
		fields[i] = Field{
			Label:       column,
			Placeholder: Placeholder(column),
			Validate:    requireValue(column),
		}
	}
	return fields
}

// Placeholder returns the hint text for a column.
func Placeholder(column string) string {
	return "Enter " + strings.ToLower(column)
}

func requireValue(column string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s", models.ErrEmptyField, column)
		}
		return nil
	}
}

// FieldState is where a single input is in its focus cycle.
type FieldState int

const (
	// StatePlaceholder shows the placeholder; the value is empty.
	StatePlaceholder FieldState = iota
	// StateEditing is a focused field.
	StateEditing
	// StateFilled is an unfocused field holding a value.
	StateFilled
)

func (s FieldState) String() string {
	switch s {
	case StatePlaceholder:
		return "placeholder"
	case StateEditing:
		return "editing"
	case StateFilled:
		return "filled"
	default:
		return fmt.Sprintf("FieldState(%d)", int(s))
	}
}
