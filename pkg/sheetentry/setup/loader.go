// Package setup resolves the workbook schema before the forms start, either
// from an existing workbook's header rows or through a console wizard that
// creates a new workbook.
package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/parser"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/repository"
)

// Limits bounds the wizard's answers.
type Limits struct {
	// MaxSheets caps the sheet count of a new workbook.
	MaxSheets int
	// MaxNewSheets caps how many sheets one edit may add.
	MaxNewSheets int
	// PreviewColumns is the default number of preview columns.
	PreviewColumns int
}

// DefaultLimits returns the wizard's standard bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxSheets:      10,
		MaxNewSheets:   5,
		PreviewColumns: models.DefaultPreviewColumns,
	}
}

// Loader resolves the schema for a workbook path.
type Loader struct {
	path     string
	prompter Prompter
	limits   Limits
}

// NewLoader creates a loader. A nil prompter selects the non-interactive
// resolver: an existing workbook is used as is and a missing one is an error.
func NewLoader(path string, prompter Prompter, limits Limits) *Loader {
	return &Loader{
		path:     path,
		prompter: prompter,
		limits:   limits,
	}
}

// Load returns the schema to run with. Schema.BookPath is the workbook that
// was finally used, which differs from the configured path when the user
// created or selected another file. On failure the returned schema is empty.
func (l *Loader) Load() (*models.Schema, error) {
	if fileExists(l.path) {
		return l.loadExisting(l.path)
	}
	if l.prompter == nil {
		return models.NewSchema(l.path), fmt.Errorf("%w: %s", models.ErrFileNotFound, l.path)
	}

	p := l.prompter
	banner(p, "WORKBOOK NOT FOUND - SETUP REQUIRED")

	create, err := confirm(p, fmt.Sprintf("'%s' does not exist.\nWould you like to create it? (yes/no): ", l.path))
	if err != nil {
		return models.NewSchema(l.path), err
	}
	if create {
		return l.setupNewFile()
	}

	useExisting, err := confirm(p, "Would you like to select an existing workbook? (yes/no): ")
	if err != nil {
		return models.NewSchema(l.path), err
	}
	if !useExisting {
		p.Say("No file selected.")
		return models.NewSchema(l.path), models.ErrNoSchema
	}

	for {
		path, err := p.Ask("Path to existing workbook: ")
		if err != nil {
			return models.NewSchema(l.path), err
		}
		if path == "" {
			p.Say("No file selected.")
			return models.NewSchema(l.path), models.ErrNoSchema
		}
		if !fileExists(path) {
			p.Say("! File not found: %s", path)
			continue
		}
		return l.loadExisting(path)
	}
}

// setupNewFile runs the wizard for a new workbook and writes it.
func (l *Loader) setupNewFile() (*models.Schema, error) {
	p := l.prompter
	banner(p, "SHEET SETUP")

	count, err := askCount(p, fmt.Sprintf("How many sheets do you want to create? (1-%d): ", l.limits.MaxSheets), 1, l.limits.MaxSheets)
	if err != nil {
		return models.NewSchema(l.path), err
	}
	p.Say("+ You will create %d sheet(s).", count)

	schema := models.NewSchema(l.path)
	for i := 1; i <= count; i++ {
		banner(p, fmt.Sprintf("SETTING UP SHEET %d of %d", i, count))

		name, err := askSheetName(p, fmt.Sprintf("Enter name for sheet %d: ", i), schema.SheetNames())
		if err != nil {
			return models.NewSchema(l.path), err
		}
		sheet, err := defineSheet(p, name, l.limits.PreviewColumns)
		if err != nil {
			return models.NewSchema(l.path), err
		}
		if err := schema.AddSheet(name, sheet); err != nil {
			return models.NewSchema(l.path), err
		}

		p.Say("+ Sheet '%s' configured: %d columns, %d preview columns", name, len(sheet.Columns), len(sheet.DisplayColumns))
	}

	banner(p, "CREATING WORKBOOK")
	path, err := p.Ask(fmt.Sprintf("Enter file path (press Enter for '%s'): ", l.path))
	if err != nil {
		return models.NewSchema(l.path), err
	}
	if path == "" {
		path = l.path
	}
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}

	if _, err := repository.Create(path, schema); err != nil {
		p.Say("x Error creating file: %v", err)
		return models.NewSchema(path), err
	}
	schema.BookPath = path

	p.Say("+ Created %s with %d sheet(s)", path, schema.Len())
	return schema, nil
}

// loadExisting derives the schema from a workbook's header rows and offers
// the edit flow.
func (l *Loader) loadExisting(path string) (*models.Schema, error) {
	repo := repository.New(path)
	headers, err := repo.ReadHeaders()
	if err != nil {
		if l.prompter != nil {
			l.prompter.Say("x Error loading file: %v", err)
		}
		return models.NewSchema(path), err
	}

	schema := schemaFromHeaders(path, headers, l.limits.PreviewColumns)

	if p := l.prompter; p != nil {
		p.Say("+ Loaded workbook: %s", path)
		p.Say("+ Found %d sheet(s)", len(headers))

		edit, err := confirm(p, "Would you like to edit the sheet structure? (yes/no): ")
		if err != nil {
			return models.NewSchema(path), err
		}
		if edit {
			if err := l.editExisting(repo, headers, schema); err != nil {
				return models.NewSchema(path), err
			}
		}
		for _, name := range schema.SheetNames() {
			sheet, _ := schema.Get(name)
			p.Say("  - %s: %d columns", name, len(sheet.Columns))
		}
	}

	if schema.Len() == 0 {
		if l.prompter != nil {
			l.prompter.Say("! No valid sheets found with columns.")
		}
		return models.NewSchema(path), models.ErrNoSchema
	}
	return schema, nil
}

// schemaFromHeaders builds a schema from header rows. Sheets without columns
// are skipped; sheets whose header repeats a name are skipped with a warning.
func schemaFromHeaders(path string, headers []repository.SheetHeader, previewColumns int) *models.Schema {
	schema := models.NewSchema(path)
	for _, h := range headers {
		if len(h.Columns) == 0 {
			continue
		}
		sheet := models.SheetSchema{
			Columns:        h.Columns,
			DisplayColumns: models.DefaultDisplayColumns(h.Columns, previewColumns),
		}
		if err := schema.AddSheet(h.Name, sheet); err != nil {
			log.WithFields(log.Fields{"sheet": h.Name, "path": path}).Warnf("skipping sheet: %v", err)
		}
	}
	return schema
}

// editExisting runs the edit menu against schema.
func (l *Loader) editExisting(repo *repository.Repository, headers []repository.SheetHeader, schema *models.Schema) error {
	p := l.prompter
	banner(p, "EDIT EXISTING WORKBOOK")

	names := make([]string, len(headers))
	p.Say("Current sheets:")
	for i, h := range headers {
		names[i] = h.Name
		p.Say("  %d. %s", i+1, h.Name)
	}

	p.Say("")
	p.Say("Options:")
	p.Say("  1. Keep all existing sheets")
	p.Say("  2. Select specific sheets to use")
	p.Say("  3. Add new sheets")

	for {
		choice, err := p.Ask("Your choice (1-3): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			return nil
		case "2":
			return l.selectSheets(names, schema)
		case "3":
			return l.addSheets(repo, names, schema)
		default:
			p.Say("! Please enter 1, 2 or 3.")
		}
	}
}

// selectSheets narrows schema to the sheets the user picks by number.
func (l *Loader) selectSheets(names []string, schema *models.Schema) error {
	p := l.prompter
	p.Say("Enter sheet numbers to use (comma-separated, e.g., 1,3,4):")

	for {
		answer, err := p.Ask("Sheets: ")
		if err != nil {
			return err
		}
		indices, err := parser.ParseIndexList(answer)
		if err != nil {
			p.Say("! Invalid input. Enter numbers separated by commas.")
			continue
		}

		var usable []string
		for _, name := range parser.SelectByIndex(names, indices) {
			if _, ok := schema.Get(name); ok {
				usable = append(usable, name)
			}
		}
		if len(usable) == 0 {
			p.Say("! None of the selected sheets has columns. Try again.")
			continue
		}

		schema.Retain(usable)
		return nil
	}
}

// addSheets defines new sheets, writes them into the workbook and adds them
// to schema after the existing ones.
func (l *Loader) addSheets(repo *repository.Repository, existing []string, schema *models.Schema) error {
	p := l.prompter

	count, err := askCount(p, fmt.Sprintf("How many new sheets to add? (1-%d): ", l.limits.MaxNewSheets), 1, l.limits.MaxNewSheets)
	if err != nil {
		return err
	}

	taken := append([]string(nil), existing...)
	var added []repository.SheetHeader
	var defined []models.SheetSchema
	for i := 1; i <= count; i++ {
		name, err := askSheetName(p, fmt.Sprintf("New sheet %d name: ", i), taken)
		if err != nil {
			return err
		}
		sheet, err := defineSheet(p, name, l.limits.PreviewColumns)
		if err != nil {
			return err
		}
		taken = append(taken, name)
		added = append(added, repository.SheetHeader{Name: name, Columns: sheet.Columns})
		defined = append(defined, sheet)
	}

	if err := repo.AddSheets(added); err != nil {
		p.Say("x Error saving new sheets: %v", err)
		return err
	}
	for i, h := range added {
		if err := schema.AddSheet(h.Name, defined[i]); err != nil {
			return err
		}
	}

	p.Say("+ Added %d new sheet(s) and saved to %s", len(added), repo.Path())
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
