package models

import "fmt"

// Schema is the ordered set of sheets configured for a workbook. Sheet order
// is the order the sheets were added and is used as tab order.
type Schema struct {
	// BookPath is the workbook file the schema belongs to.
	BookPath string
	names    []string
	sheets   map[string]SheetSchema
}

// NewSchema creates an empty schema for the given workbook path.
func NewSchema(bookPath string) *Schema {
	return &Schema{
		BookPath: bookPath,
		sheets:   make(map[string]SheetSchema),
	}
}

// Get returns the schema of a sheet.
func (s *Schema) Get(name string) (SheetSchema, bool) {
	sheet, ok := s.sheets[name]
	return sheet, ok
}

// SheetNames returns sheet names in insertion order.
func (s *Schema) SheetNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of sheets.
func (s *Schema) Len() int {
	return len(s.names)
}

// AddSheet registers a sheet. It fails if the name is taken or the sheet
// schema is invalid.
func (s *Schema) AddSheet(name string, sheet SheetSchema) error {
	if _, ok := s.sheets[name]; ok {
		return fmt.Errorf("%w: %q", ErrSheetExists, name)
	}
	if err := sheet.Validate(); err != nil {
		return fmt.Errorf("sheet %q: %w", name, err)
	}
	s.names = append(s.names, name)
	s.sheets[name] = sheet
	return nil
}

// Retain drops every sheet not listed in names. The original order is kept.
func (s *Schema) Retain(names []string) {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	kept := s.names[:0]
	for _, n := range s.names {
		if keep[n] {
			kept = append(kept, n)
			continue
		}
		delete(s.sheets, n)
	}
	s.names = kept
}
