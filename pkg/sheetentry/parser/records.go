// Package parser provides excelize helpers that turn worksheet rows into
// headers and records.
package parser

import (
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
	"github.com/xuri/excelize/v2"
)

// ReadHeader returns the column names of a sheet: every non-empty cell of
// the first row, in order. A sheet without a header row yields nil.
func ReadHeader(f *excelize.File, sheetName string) ([]string, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Error()
	}
	cells, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var columns []string
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		columns = append(columns, cell)
	}
	return columns, nil
}

// ReadRecords extracts the data rows of a sheet (row 2 onward).
// Rows where every cell is empty are skipped. Rows shorter than width are
// padded with "" so every record covers the header; wider rows are kept
// as they are.
func ReadRecords(f *excelize.File, sheetName string, width int) ([]models.Record, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.Record
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		if rowNum == 1 || models.IsEmpty(row) {
			continue
		}

		values := make([]string, max(width, len(row)))
		copy(values, row)
		result = append(result, models.Record{
			Row:    rowNum,
			Values: values,
		})
	}

	return result, nil
}
