package models

// Record is one data row of a sheet.
type Record struct {
	// Row is the 1-based worksheet row the record was read from. It stays
	// valid for the session as long as nothing else reorders the sheet.
	Row int `json:"row"`
	// Values are the cell values in column order. Rows wider than the header
	// keep their extra values.
	Values []string `json:"values"`
}

// IsEmpty reports whether every value is blank.
func IsEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
