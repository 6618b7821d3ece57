// Package models defines the schema and record types shared by the workbook
// readers, the repository and the forms.
package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultPreviewColumns is how many leading columns the preview shows when no
// explicit selection was made.
const DefaultPreviewColumns = 4

// maxSheetNameLength is the xlsx limit on worksheet names.
const maxSheetNameLength = 31

// SheetSchema describes the columns of one sheet.
type SheetSchema struct {
	// Columns are the header names in worksheet order.
	Columns []string
	// DisplayColumns is the ordered subset of Columns shown in the preview.
	DisplayColumns []string
}

// NewSheetSchema builds a schema whose preview shows the first
// DefaultPreviewColumns columns.
func NewSheetSchema(columns []string) SheetSchema {
	return SheetSchema{
		Columns:        columns,
		DisplayColumns: DefaultDisplayColumns(columns, DefaultPreviewColumns),
	}
}

// DefaultDisplayColumns returns the first n columns (all of them if fewer).
func DefaultDisplayColumns(columns []string, n int) []string {
	if n <= 0 || n > len(columns) {
		n = len(columns)
	}
	out := make([]string, n)
	copy(out, columns[:n])
	return out
}

// Validate checks the column and display column invariants.
func (s SheetSchema) Validate() error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidSchema)
	}
	seen := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		if c == "" {
			return fmt.Errorf("%w: empty column name", ErrInvalidSchema)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate column %q", ErrInvalidSchema, c)
		}
		seen[c] = true
	}

	if len(s.DisplayColumns) == 0 {
		return fmt.Errorf("%w: no display columns", ErrInvalidSchema)
	}
	shown := make(map[string]bool, len(s.DisplayColumns))
	for _, c := range s.DisplayColumns {
		if !seen[c] {
			return fmt.Errorf("%w: display column %q is not a column", ErrInvalidSchema, c)
		}
		if shown[c] {
			return fmt.Errorf("%w: duplicate display column %q", ErrInvalidSchema, c)
		}
		shown[c] = true
	}
	return nil
}

// ColumnIndex returns the 0-based position of a column, or -1.
func (s SheetSchema) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Project filters a full record down to the display columns. Values the
// record does not reach are returned as "".
func (s SheetSchema) Project(values []string) []string {
	out := make([]string, len(s.DisplayColumns))
	for i, c := range s.DisplayColumns {
		idx := s.ColumnIndex(c)
		if idx >= 0 && idx < len(values) {
			out[i] = values[idx]
		}
	}
	return out
}

// ValidateSheetName checks a worksheet name against the xlsx naming rules.
func ValidateSheetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("sheet name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxSheetNameLength {
		return fmt.Errorf("sheet name cannot exceed %d characters", maxSheetNameLength)
	}
	if strings.ContainsAny(name, `:\/?*[]`) {
		return fmt.Errorf("sheet name cannot contain any of : \\ / ? * [ ]")
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return fmt.Errorf("sheet name cannot start or end with an apostrophe")
	}
	return nil
}
