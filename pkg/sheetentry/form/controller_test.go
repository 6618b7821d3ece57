package form

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/repository"
)

// memRepo keeps rows in memory, numbered like worksheet rows.
type memRepo struct {
	rows      [][]string
	appends   int
	updates   int
	appendErr error
	updateErr error
	loadErr   error
}

func (m *memRepo) LoadAll(string) ([]models.Record, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	var out []models.Record
	for i, r := range m.rows {
		v := make([]string, len(r))
		copy(v, r)
		out = append(out, models.Record{Row: i + 2, Values: v})
	}
	return out, nil
}

func (m *memRepo) Append(_ string, values []string) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appends++
	m.rows = append(m.rows, values)
	return nil
}

func (m *memRepo) UpdateRow(_ string, row int, values []string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates++
	m.rows[row-2] = values
	return nil
}

func peopleSchema() models.SheetSchema {
	return models.SheetSchema{
		Columns:        []string{"Name", "Age"},
		DisplayColumns: []string{"Name"},
	}
}

func TestBuildFields(t *testing.T) {
	fields := BuildFields(models.NewSheetSchema([]string{"First Name", "AGE"}))

	if len(fields) != 2 {
		t.Fatalf("Expected 2 fields, got %d", len(fields))
	}
	if fields[0].Label != "First Name" || fields[0].Placeholder != "Enter first name" {
		t.Errorf("unexpected field %+v", fields[0])
	}
	if fields[1].Placeholder != "Enter age" {
		t.Errorf("Expected 'Enter age', got %q", fields[1].Placeholder)
	}
	if err := fields[0].Validate("  "); !errors.Is(err, models.ErrEmptyField) {
		t.Errorf("Expected ErrEmptyField for blank value, got %v", err)
	}
	if err := fields[0].Validate("Ann"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestFieldStateMachine(t *testing.T) {
	c := NewController("People", peopleSchema(), &memRepo{})

	if c.State("Name") != StatePlaceholder || c.Display("Name") != "Enter name" {
		t.Fatalf("Expected placeholder state, got %v %q", c.State("Name"), c.Display("Name"))
	}

	c.Focus("Name")
	if c.State("Name") != StateEditing || c.Display("Name") != "" {
		t.Errorf("Expected editing with empty display, got %v %q", c.State("Name"), c.Display("Name"))
	}

	c.Blur("Name")
	if c.State("Name") != StatePlaceholder {
		t.Errorf("Expected placeholder after empty blur, got %v", c.State("Name"))
	}

	c.Focus("Name")
	c.SetValue("Name", "Alice")
	c.Blur("Name")
	if c.State("Name") != StateFilled || c.Display("Name") != "Alice" {
		t.Errorf("Expected filled, got %v %q", c.State("Name"), c.Display("Name"))
	}
}

func TestCheckFieldsTogglesSubmit(t *testing.T) {
	c := NewController("People", peopleSchema(), &memRepo{})

	if c.CanSubmit() {
		t.Fatal("submit must start disabled")
	}
	c.SetValue("Name", "Alice")
	if c.CanSubmit() {
		t.Error("submit enabled with Age empty")
	}
	c.SetValue("Age", "30")
	if !c.CanSubmit() {
		t.Error("submit disabled with all fields filled")
	}
	c.SetValue("Age", " ")
	if c.CanSubmit() {
		t.Error("submit enabled with blank Age")
	}
	c.SetValue("Age", "30")
	c.Clear()
	if c.CanSubmit() {
		t.Error("submit enabled after clear")
	}
}

func TestSubmitWithEmptyFieldDoesNotAppend(t *testing.T) {
	repo := &memRepo{}
	c := NewController("People", peopleSchema(), repo)
	c.SetValue("Name", "Alice")

	err := c.Submit()
	if !errors.Is(err, models.ErrEmptyField) {
		t.Fatalf("Expected ErrEmptyField, got %v", err)
	}
	if repo.appends != 0 || len(repo.rows) != 0 {
		t.Errorf("Expected no append, got %d", repo.appends)
	}
	if c.Value("Name") != "Alice" {
		t.Errorf("form state lost: %q", c.Value("Name"))
	}
}

func TestSubmitFailureKeepsForm(t *testing.T) {
	repo := &memRepo{appendErr: models.ErrFileLocked}
	c := NewController("People", peopleSchema(), repo)
	c.SetValue("Name", "Alice")
	c.SetValue("Age", "30")

	if err := c.Submit(); !errors.Is(err, models.ErrFileLocked) {
		t.Fatalf("Expected ErrFileLocked, got %v", err)
	}
	if c.Value("Name") != "Alice" || c.Value("Age") != "30" || !c.CanSubmit() {
		t.Error("form state must survive a failed submit")
	}
}

func TestSubmitReloadFailureClearsForm(t *testing.T) {
	repo := &memRepo{}
	c := NewController("People", peopleSchema(), repo)
	c.SetValue("Name", "Alice")
	c.SetValue("Age", "30")
	repo.loadErr = models.ErrFileLocked

	err := c.Submit()
	if !errors.Is(err, models.ErrReloadFailed) || !errors.Is(err, models.ErrFileLocked) {
		t.Fatalf("Expected ErrReloadFailed wrapping ErrFileLocked, got %v", err)
	}
	if repo.appends != 1 {
		t.Fatalf("Expected 1 append, got %d", repo.appends)
	}
	if c.Value("Name") != "" || c.Value("Age") != "" || c.CanSubmit() {
		t.Error("form must be cleared once the record is written")
	}
	if c.State("Name") != StatePlaceholder {
		t.Errorf("Expected placeholder state, got %v", c.State("Name"))
	}
}

func TestSubmitUpdateScenario(t *testing.T) {
	schema := models.NewSchema("")
	if err := schema.AddSheet("People", peopleSchema()); err != nil {
		t.Fatalf("AddSheet failed: %v", err)
	}
	repo, err := repository.Create(filepath.Join(t.TempDir(), "book.xlsx"), schema)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	c := NewController("People", peopleSchema(), repo)
	if err := c.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(c.Preview()) != 0 {
		t.Fatalf("Expected empty preview, got %v", c.Preview())
	}

	c.SetValue("Name", "Alice")
	c.SetValue("Age", "30")
	if err := c.Submit(); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	records, err := repo.LoadAll("People")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 1 || !reflect.DeepEqual(records[0].Values, []string{"Alice", "30"}) {
		t.Fatalf("unexpected records %+v", records)
	}
	if !reflect.DeepEqual(c.Preview(), [][]string{{"Alice"}}) {
		t.Errorf("Expected preview [[Alice]], got %v", c.Preview())
	}
	if c.Value("Name") != "" || c.State("Name") != StatePlaceholder || c.CanSubmit() {
		t.Error("fields must be cleared after submit")
	}

	if err := c.Update(0, []string{"Alicia", "31"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	records, err = repo.LoadAll("People")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if !reflect.DeepEqual(records[0].Values, []string{"Alicia", "31"}) {
		t.Errorf("Expected updated record, got %v", records[0].Values)
	}
	if !reflect.DeepEqual(c.Preview(), [][]string{{"Alicia"}}) {
		t.Errorf("Expected preview [[Alicia]], got %v", c.Preview())
	}
}

func TestUpdateFailureKeepsRecords(t *testing.T) {
	repo := &memRepo{rows: [][]string{{"Alice", "30"}}}
	c := NewController("People", peopleSchema(), repo)
	if err := c.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	repo.updateErr = models.ErrFileLocked
	if err := c.Update(0, []string{"Bob", "1"}); !errors.Is(err, models.ErrFileLocked) {
		t.Fatalf("Expected ErrFileLocked, got %v", err)
	}
	if !reflect.DeepEqual(c.Records()[0].Values, []string{"Alice", "30"}) {
		t.Errorf("in-memory record changed: %v", c.Records()[0].Values)
	}

	if err := c.Update(3, []string{"x", "y"}); !errors.Is(err, models.ErrRowOutOfRange) {
		t.Errorf("Expected ErrRowOutOfRange, got %v", err)
	}
}

func TestPreviewFiltering(t *testing.T) {
	repo := &memRepo{rows: [][]string{
		{"Alice", "30", "Oslo"},
		{"Bob"},
	}}
	sheet := models.SheetSchema{
		Columns:        []string{"Name", "Age", "City"},
		DisplayColumns: []string{"City", "Name"},
	}
	c := NewController("People", sheet, repo)
	if err := c.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := [][]string{{"Oslo", "Alice"}, {"", "Bob"}}
	if !reflect.DeepEqual(c.Preview(), expected) {
		t.Errorf("Expected %v, got %v", expected, c.Preview())
	}
}
