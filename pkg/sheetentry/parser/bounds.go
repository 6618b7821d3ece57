package parser

import (
	"github.com/xuri/excelize/v2"
)

// LastDataRow returns the 1-based number of the last row holding at least one
// non-empty cell, or 0 for an empty sheet.
func LastDataRow(f *excelize.File, sheetName string) (int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, err
	}
	return findLastRow(rows), nil
}

// findLastRow scans from the bottom for the first row with data.
func findLastRow(rows [][]string) int {
	for rowIdx := len(rows) - 1; rowIdx >= 0; rowIdx-- {
		for _, cell := range rows[rowIdx] {
			if cell != "" {
				return rowIdx + 1
			}
		}
	}
	return 0
}
