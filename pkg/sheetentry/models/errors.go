package models

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrFileLocked indicates the workbook could not be written, usually because
// another program holds it open.
var ErrFileLocked = errors.New("file is open in another program")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrSheetExists indicates a sheet with the same name is already defined.
var ErrSheetExists = errors.New("sheet already exists")

// ErrInvalidSchema indicates a sheet schema breaks one of its invariants.
var ErrInvalidSchema = errors.New("invalid sheet schema")

// ErrRowOutOfRange indicates an update addressed a row that is not a data row.
var ErrRowOutOfRange = errors.New("row out of range")

// ErrEmptyField indicates a required form field has no value.
var ErrEmptyField = errors.New("all fields are required")

// ErrReloadFailed indicates a record was written but the records could not
// be read back afterwards.
var ErrReloadFailed = errors.New("record saved but reload failed")

// ErrNoSchema indicates setup finished without any usable sheet.
var ErrNoSchema = errors.New("no usable sheets")

// ErrAborted indicates the interactive setup ran out of input.
var ErrAborted = errors.New("setup aborted")

// OperationError represents a failed workbook operation on one sheet.
type OperationError struct {
	SheetName string
	Op        string // "load", "append", "update", "create", "add_sheets", "headers"
	Err       error
}

func (e *OperationError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed for sheet %q: %v", e.Op, e.SheetName, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError creates a new OperationError.
func NewOperationError(sheetName, op string, err error) *OperationError {
	return &OperationError{
		SheetName: sheetName,
		Op:        op,
		Err:       err,
	}
}
