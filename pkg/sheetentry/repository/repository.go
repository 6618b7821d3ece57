// Package repository reads and writes sheet records in an xlsx workbook.
//
// Every call opens the workbook, applies one change and saves the whole file
// back. No handle is kept between calls, so a concurrent edit by another
// program between a load and an update is overwritten without notice.
package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/parser"
	"github.com/xuri/excelize/v2"
)

// headerRows is the number of rows above the first record.
const headerRows = 1

// Repository performs record operations against one workbook file.
type Repository struct {
	path string
}

// New returns a repository for the workbook at path.
func New(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the workbook path.
func (r *Repository) Path() string {
	return r.path
}

// LoadAll returns every non-empty data row of a sheet. Records are padded to
// the header width; values beyond the header are kept.
func (r *Repository) LoadAll(sheetName string) ([]models.Record, error) {
	f, err := r.open()
	if err != nil {
		return nil, models.NewOperationError(sheetName, "load", err)
	}
	defer f.Close()

	if err := requireSheet(f, sheetName); err != nil {
		return nil, models.NewOperationError(sheetName, "load", err)
	}

	header, err := parser.ReadHeader(f, sheetName)
	if err != nil {
		return nil, models.NewOperationError(sheetName, "load", err)
	}

	records, err := parser.ReadRecords(f, sheetName, len(header))
	if err != nil {
		return nil, models.NewOperationError(sheetName, "load", err)
	}

	log.WithFields(log.Fields{"sheet": sheetName, "records": len(records)}).Debug("loaded records")
	return records, nil
}

// Append writes values as a new row below the last row holding data.
func (r *Repository) Append(sheetName string, values []string) error {
	f, err := r.open()
	if err != nil {
		return models.NewOperationError(sheetName, "append", err)
	}
	defer f.Close()

	if err := requireSheet(f, sheetName); err != nil {
		return models.NewOperationError(sheetName, "append", err)
	}

	last, err := parser.LastDataRow(f, sheetName)
	if err != nil {
		return models.NewOperationError(sheetName, "append", err)
	}
	row := max(last, headerRows) + 1

	if err := writeRow(f, sheetName, row, values); err != nil {
		return models.NewOperationError(sheetName, "append", err)
	}
	if err := r.save(f); err != nil {
		return models.NewOperationError(sheetName, "append", err)
	}

	log.WithFields(log.Fields{"sheet": sheetName, "row": row}).Debug("appended record")
	return nil
}

// Update overwrites the data row at the 0-based position, i.e. worksheet row
// position+2.
func (r *Repository) Update(sheetName string, position int, values []string) error {
	if position < 0 {
		return models.NewOperationError(sheetName, "update",
			fmt.Errorf("%w: position %d", models.ErrRowOutOfRange, position))
	}
	return r.UpdateRow(sheetName, position+headerRows+1, values)
}

// UpdateRow overwrites the cells of a 1-based worksheet row, column by
// column. Cells to the right of values are left untouched.
func (r *Repository) UpdateRow(sheetName string, row int, values []string) error {
	if row <= headerRows {
		return models.NewOperationError(sheetName, "update",
			fmt.Errorf("%w: row %d", models.ErrRowOutOfRange, row))
	}

	f, err := r.open()
	if err != nil {
		return models.NewOperationError(sheetName, "update", err)
	}
	defer f.Close()

	if err := requireSheet(f, sheetName); err != nil {
		return models.NewOperationError(sheetName, "update", err)
	}

	last, err := parser.LastDataRow(f, sheetName)
	if err != nil {
		return models.NewOperationError(sheetName, "update", err)
	}
	if row > last {
		return models.NewOperationError(sheetName, "update",
			fmt.Errorf("%w: row %d (last row is %d)", models.ErrRowOutOfRange, row, last))
	}

	if err := writeRow(f, sheetName, row, values); err != nil {
		return models.NewOperationError(sheetName, "update", err)
	}
	if err := r.save(f); err != nil {
		return models.NewOperationError(sheetName, "update", err)
	}

	log.WithFields(log.Fields{"sheet": sheetName, "row": row}).Debug("updated record")
	return nil
}

// open opens the workbook fresh, mapping a missing file to ErrFileNotFound.
func (r *Repository) open() (*excelize.File, error) {
	if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", models.ErrFileNotFound, r.path)
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, classify(err)
	}
	return f, nil
}

func (r *Repository) save(f *excelize.File) error {
	if err := f.SaveAs(r.path); err != nil {
		return classify(err)
	}
	return nil
}

// classify maps OS level failures onto the repository's sentinel errors.
func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", models.ErrFileNotFound, err)
	case errors.Is(err, fs.ErrPermission), isLocked(err):
		return fmt.Errorf("%w: %v", models.ErrFileLocked, err)
	default:
		return err
	}
}

func requireSheet(f *excelize.File, sheetName string) error {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		return fmt.Errorf("%w: %q", models.ErrSheetNotFound, sheetName)
	}
	return nil
}

func writeRow(f *excelize.File, sheetName string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheetName, cell, &cells)
}
