package repository

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/parser"
	"github.com/xuri/excelize/v2"
)

// SheetHeader is the header row of one worksheet.
type SheetHeader struct {
	Name    string
	Columns []string
}

// Create materializes a new workbook at path with one worksheet per sheet of
// the schema, in schema order, each holding only its header row.
func Create(path string, schema *models.Schema) (*Repository, error) {
	names := schema.SheetNames()
	if len(names) == 0 {
		return nil, models.NewOperationError("", "create", models.ErrNoSchema)
	}

	f := excelize.NewFile()
	defer f.Close()

	// excelize starts every workbook with a default sheet; reuse it for the
	// first one so no stray sheet is left behind.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, names[0]); err != nil {
		return nil, models.NewOperationError(names[0], "create", err)
	}

	for i, name := range names {
		sheet, _ := schema.Get(name)
		if i > 0 {
			if _, err := f.NewSheet(name); err != nil {
				return nil, models.NewOperationError(name, "create", err)
			}
		}
		if err := writeRow(f, name, 1, sheet.Columns); err != nil {
			return nil, models.NewOperationError(name, "create", err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return nil, models.NewOperationError("", "create", classify(err))
	}

	log.WithFields(log.Fields{"path": path, "sheets": len(names)}).Debug("created workbook")
	return New(path), nil
}

// ReadHeaders returns the header row of every worksheet in workbook order.
func (r *Repository) ReadHeaders() ([]SheetHeader, error) {
	f, err := r.open()
	if err != nil {
		return nil, models.NewOperationError("", "headers", err)
	}
	defer f.Close()

	var headers []SheetHeader
	for _, name := range f.GetSheetList() {
		columns, err := parser.ReadHeader(f, name)
		if err != nil {
			return nil, models.NewOperationError(name, "headers", err)
		}
		headers = append(headers, SheetHeader{Name: name, Columns: columns})
	}
	return headers, nil
}

// AddSheets appends new worksheets with their header rows to the existing
// workbook and saves it.
func (r *Repository) AddSheets(sheets []SheetHeader) error {
	if len(sheets) == 0 {
		return nil
	}

	f, err := r.open()
	if err != nil {
		return models.NewOperationError("", "add_sheets", err)
	}
	defer f.Close()

	for _, sheet := range sheets {
		if idx, err := f.GetSheetIndex(sheet.Name); err == nil && idx >= 0 {
			return models.NewOperationError(sheet.Name, "add_sheets",
				fmt.Errorf("%w: %q", models.ErrSheetExists, sheet.Name))
		}
		if _, err := f.NewSheet(sheet.Name); err != nil {
			return models.NewOperationError(sheet.Name, "add_sheets", err)
		}
		if err := writeRow(f, sheet.Name, 1, sheet.Columns); err != nil {
			return models.NewOperationError(sheet.Name, "add_sheets", err)
		}
	}

	if err := r.save(f); err != nil {
		return models.NewOperationError("", "add_sheets", err)
	}

	log.WithFields(log.Fields{"path": r.path, "added": len(sheets)}).Debug("added sheets")
	return nil
}
