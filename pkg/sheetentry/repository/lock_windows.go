//go:build windows

package repository

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isLocked reports whether err is Windows refusing access to a file another
// process holds open, as Excel does with an open workbook.
func isLocked(err error) bool {
	return errors.Is(err, windows.ERROR_SHARING_VIOLATION) || errors.Is(err, windows.ERROR_LOCK_VIOLATION)
}
