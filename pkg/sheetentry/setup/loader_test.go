package setup

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/repository"
	"github.com/xuri/excelize/v2"
)

func script(lines ...string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewConsole(strings.NewReader(strings.Join(lines, "\n")+"\n"), out), out
}

// existingWorkbook writes People(Name, Age), an empty Blank sheet and
// Orders(ID, Item, Qty, Price, Date).
func existingWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "People"))
	require.NoError(t, f.SetSheetRow("People", "A1", &[]interface{}{"Name", "Age"}))
	_, err := f.NewSheet("Blank")
	require.NoError(t, err)
	_, err = f.NewSheet("Orders")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Orders", "A1", &[]interface{}{"ID", "Item", "Qty", "Price", "Date"}))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestNewFileWizard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.xlsx")
	console, out := script(
		"yes",
		"abc", "11", "2", // count with two retries
		"People",
		"Name", "Age", "Name", "", // duplicate column rejected
		"2",
		"people", "Bad/Name", "Orders", // case-insensitive clash and invalid name
		"", "ID", "", // empty first column rejected
		"",
		"", // default path
	)

	schema, err := NewLoader(path, console, DefaultLimits()).Load()
	require.NoError(t, err, out.String())

	assert.Equal(t, path, schema.BookPath)
	assert.Equal(t, []string{"People", "Orders"}, schema.SheetNames())

	people, _ := schema.Get("People")
	assert.Equal(t, []string{"Name", "Age"}, people.Columns)
	assert.Equal(t, []string{"Age"}, people.DisplayColumns)

	orders, _ := schema.Get("Orders")
	assert.Equal(t, []string{"ID"}, orders.Columns)
	assert.Equal(t, []string{"ID"}, orders.DisplayColumns)

	headers, err := repository.New(path).ReadHeaders()
	require.NoError(t, err)
	assert.Equal(t, []repository.SheetHeader{
		{Name: "People", Columns: []string{"Name", "Age"}},
		{Name: "Orders", Columns: []string{"ID"}},
	}, headers)

	assert.Contains(t, out.String(), "Please enter a number between 1 and 10")
	assert.Contains(t, out.String(), "'Name' already exists")
	assert.Contains(t, out.String(), "Sheet 'people' already exists")
	assert.Contains(t, out.String(), "You must define at least one column")
}

func TestNewFileWizardCustomPath(t *testing.T) {
	dir := t.TempDir()
	console, _ := script("y", "1", "Log", "Entry", "", "", filepath.Join(dir, "custom"))

	schema, err := NewLoader(filepath.Join(dir, "default.xlsx"), console, DefaultLimits()).Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.xlsx"), schema.BookPath)
	assert.FileExists(t, schema.BookPath)
}

func TestDeclineSetup(t *testing.T) {
	console, _ := script("no", "no")

	schema, err := NewLoader(filepath.Join(t.TempDir(), "missing.xlsx"), console, DefaultLimits()).Load()
	assert.True(t, errors.Is(err, models.ErrNoSchema), "got %v", err)
	assert.Equal(t, 0, schema.Len())
}

func TestSelectExistingFile(t *testing.T) {
	path := existingWorkbook(t)
	console, _ := script("no", "yes", "/nowhere/book.xlsx", path, "no")

	schema, err := NewLoader(filepath.Join(t.TempDir(), "missing.xlsx"), console, DefaultLimits()).Load()
	require.NoError(t, err)
	assert.Equal(t, path, schema.BookPath)
	assert.Equal(t, []string{"People", "Orders"}, schema.SheetNames())
}

func TestLoadExistingKeepsAll(t *testing.T) {
	path := existingWorkbook(t)
	console, _ := script("no")

	schema, err := NewLoader(path, console, DefaultLimits()).Load()
	require.NoError(t, err)

	// Blank has no header and is skipped.
	assert.Equal(t, []string{"People", "Orders"}, schema.SheetNames())
	orders, _ := schema.Get("Orders")
	assert.Equal(t, []string{"ID", "Item", "Qty", "Price"}, orders.DisplayColumns)
}

func TestEditKeepAll(t *testing.T) {
	path := existingWorkbook(t)
	console, _ := script("yes", "7", "1")

	schema, err := NewLoader(path, console, DefaultLimits()).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"People", "Orders"}, schema.SheetNames())
}

func TestEditSelectSheets(t *testing.T) {
	path := existingWorkbook(t)
	console, out := script("yes", "2", "x", "2", "3,1")

	schema, err := NewLoader(path, console, DefaultLimits()).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"People", "Orders"}, schema.SheetNames())
	assert.Contains(t, out.String(), "Invalid input")
	assert.Contains(t, out.String(), "None of the selected sheets has columns")

	console, _ = script("yes", "2", "3")
	schema, err = NewLoader(path, console, DefaultLimits()).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Orders"}, schema.SheetNames())
}

func TestEditAddSheets(t *testing.T) {
	path := existingWorkbook(t)
	console, _ := script("yes", "3", "9", "1", "Blank", "Notes", "Date", "Text", "", "2")

	schema, err := NewLoader(path, console, DefaultLimits()).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"People", "Orders", "Notes"}, schema.SheetNames())

	notes, _ := schema.Get("Notes")
	assert.Equal(t, []string{"Text"}, notes.DisplayColumns)

	headers, err := repository.New(path).ReadHeaders()
	require.NoError(t, err)
	require.Len(t, headers, 4)
	assert.Equal(t, repository.SheetHeader{Name: "Notes", Columns: []string{"Date", "Text"}}, headers[3])
}

func TestNonInteractive(t *testing.T) {
	path := existingWorkbook(t)

	schema, err := NewLoader(path, nil, DefaultLimits()).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"People", "Orders"}, schema.SheetNames())

	missing := filepath.Join(t.TempDir(), "missing.xlsx")
	schema, err = NewLoader(missing, nil, DefaultLimits()).Load()
	assert.True(t, errors.Is(err, models.ErrFileNotFound), "got %v", err)
	assert.Equal(t, 0, schema.Len())
}

func TestUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	schema, err := NewLoader(path, nil, DefaultLimits()).Load()
	assert.Error(t, err)
	assert.Equal(t, 0, schema.Len())
}

func TestAbortOnEOF(t *testing.T) {
	console, _ := script("yes", "2", "People")

	_, err := NewLoader(filepath.Join(t.TempDir(), "new.xlsx"), console, DefaultLimits()).Load()
	assert.True(t, errors.Is(err, models.ErrAborted), "got %v", err)
}

func TestSelectDisplayColumns(t *testing.T) {
	three := []string{"Name", "Age", "City"}
	six := []string{"A", "B", "C", "D", "E", "F"}

	tests := []struct {
		columns  []string
		answer   string
		expected []string
	}{
		{three, "1,2,3,4", []string{"Name", "Age", "City"}},
		{three, "3,1", []string{"City", "Name"}},
		{three, "2,2", []string{"Age"}},
		{three, "", []string{"Name", "Age", "City"}},
		{six, "", []string{"A", "B", "C", "D"}},
		{six, "7,8", []string{"A", "B", "C", "D"}},
		{six, "one,two", []string{"A", "B", "C", "D"}},
		{six, "6", []string{"F"}},
	}

	for _, tt := range tests {
		result := SelectDisplayColumns(tt.columns, tt.answer, models.DefaultPreviewColumns)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("SelectDisplayColumns(%v, %q) = %v, expected %v", tt.columns, tt.answer, result, tt.expected)
		}
	}
}
