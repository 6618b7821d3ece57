//go:build !windows

package repository

// isLocked reports whether err is a sharing or lock violation. Only Windows
// enforces mandatory locks on open workbooks; elsewhere a lock shows up as a
// permission error.
func isLocked(err error) bool {
	return false
}
