package form

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
)

// Repository is the storage a controller reads and writes records through.
type Repository interface {
	LoadAll(sheetName string) ([]models.Record, error)
	Append(sheetName string, values []string) error
	UpdateRow(sheetName string, row int, values []string) error
}

// Controller holds the entry form state of one sheet.
type Controller struct {
	sheetName string
	sheet     models.SheetSchema
	fields    []Field
	repo      Repository

	values    map[string]string
	states    map[string]FieldState
	canSubmit bool

	records []models.Record
	preview [][]string
}

// NewController creates the controller for a sheet. No records are loaded
// until Load is called.
func NewController(sheetName string, sheet models.SheetSchema, repo Repository) *Controller {
	c := &Controller{
		sheetName: sheetName,
		sheet:     sheet,
		fields:    BuildFields(sheet),
		repo:      repo,
		values:    make(map[string]string, len(sheet.Columns)),
		states:    make(map[string]FieldState, len(sheet.Columns)),
	}
	c.Clear()
	return c
}

// SheetName returns the sheet the controller edits.
func (c *Controller) SheetName() string { return c.sheetName }

// Schema returns the sheet schema.
func (c *Controller) Schema() models.SheetSchema { return c.sheet }

// Fields returns the generated field descriptors.
func (c *Controller) Fields() []Field { return c.fields }

// Value returns the current value of a column's field.
func (c *Controller) Value(column string) string { return c.values[column] }

// State returns the focus state of a column's field.
func (c *Controller) State(column string) FieldState { return c.states[column] }

// Display returns what the field shows: its value, or the placeholder while
// in the placeholder state.
func (c *Controller) Display(column string) string {
	if c.states[column] == StatePlaceholder {
		return Placeholder(column)
	}
	return c.values[column]
}

// SetValue records a keystroke's result and re-checks the submit state.
func (c *Controller) SetValue(column, value string) {
	if _, ok := c.values[column]; !ok {
		return
	}
	c.values[column] = value
	if c.states[column] != StateEditing {
		c.states[column] = stateFor(value)
	}
	c.CheckFields()
}

// Focus moves a field into editing.
func (c *Controller) Focus(column string) {
	if _, ok := c.states[column]; ok {
		c.states[column] = StateEditing
	}
}

// Blur leaves editing; an empty field falls back to its placeholder.
func (c *Controller) Blur(column string) {
	if _, ok := c.states[column]; ok {
		c.states[column] = stateFor(c.values[column])
	}
}

func stateFor(value string) FieldState {
	if value == "" {
		return StatePlaceholder
	}
	return StateFilled
}

// CheckFields recomputes whether every field passes validation and returns
// the new submit state.
func (c *Controller) CheckFields() bool {
	c.canSubmit = c.validate() == nil
	return c.canSubmit
}

// CanSubmit reports whether the submit action is enabled.
func (c *Controller) CanSubmit() bool { return c.canSubmit }

func (c *Controller) validate() error {
	var errs []error
	for _, f := range c.fields {
		if err := f.Validate(c.values[f.Label]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Submit appends the form values as a new record. With any field empty it
// returns ErrEmptyField and writes nothing. If the append fails the form is
// left untouched. Once the record is written the fields are cleared and the
// preview reloaded; a failed reload is returned wrapped in ErrReloadFailed,
// the record stays written.
func (c *Controller) Submit() error {
	if err := c.validate(); err != nil {
		c.canSubmit = false
		return err
	}

	values := make([]string, len(c.sheet.Columns))
	for i, column := range c.sheet.Columns {
		values[i] = c.values[column]
	}
	if err := c.repo.Append(c.sheetName, values); err != nil {
		return err
	}

	c.Clear()
	if err := c.Load(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrReloadFailed, err)
	}
	return nil
}

// Clear empties every field and returns it to the placeholder state.
func (c *Controller) Clear() {
	for _, column := range c.sheet.Columns {
		c.values[column] = ""
		c.states[column] = StatePlaceholder
	}
	c.CheckFields()
}

// Load re-reads the sheet's records and rebuilds the preview. On error the
// previously loaded records stay in place.
func (c *Controller) Load() error {
	records, err := c.repo.LoadAll(c.sheetName)
	if err != nil {
		return err
	}

	preview := make([][]string, len(records))
	for i, r := range records {
		preview[i] = c.sheet.Project(r.Values)
	}
	c.records = records
	c.preview = preview
	return nil
}

// Records returns the full records from the last Load.
func (c *Controller) Records() []models.Record { return c.records }

// Preview returns the records from the last Load filtered to the display
// columns.
func (c *Controller) Preview() [][]string { return c.preview }

// Update rewrites the record at a 0-based position of the last Load. The
// record is addressed by the worksheet row it was read from. The in-memory
// record and preview row change only once the workbook was saved.
func (c *Controller) Update(position int, values []string) error {
	if position < 0 || position >= len(c.records) {
		return fmt.Errorf("%w: position %d of %d records", models.ErrRowOutOfRange, position, len(c.records))
	}

	record := c.records[position]
	if err := c.repo.UpdateRow(c.sheetName, record.Row, values); err != nil {
		return err
	}

	updated := make([]string, max(len(values), len(record.Values)))
	copy(updated, record.Values)
	copy(updated, values)
	c.records[position] = models.Record{Row: record.Row, Values: updated}
	c.preview[position] = c.sheet.Project(updated)
	return nil
}
