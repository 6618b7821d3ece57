package parser

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// openFixture saves f to a temporary file and reopens it, so reads go
// through the same path as a workbook on disk.
func openFixture(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f.Close()

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadHeader(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Name")
	f.SetCellValue(sheetName, "C1", "City")
	f.SetCellValue(sheetName, "D1", "Age")
	f.SetCellValue(sheetName, "A2", "Alice")

	f2 := openFixture(t, f)

	columns, err := ReadHeader(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}

	expected := []string{"Name", "City", "Age"}
	if !reflect.DeepEqual(columns, expected) {
		t.Errorf("Expected %v, got %v", expected, columns)
	}
}

func TestReadHeaderEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	f2 := openFixture(t, f)

	columns, err := ReadHeader(f2, "Sheet1")
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}
	if len(columns) != 0 {
		t.Errorf("Expected no columns, got %v", columns)
	}
}

func TestReadRecords(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	f.SetSheetRow(sheetName, "A1", &[]interface{}{"Name", "Age", "City"})
	f.SetSheetRow(sheetName, "A2", &[]interface{}{"Alice", "30", "Oslo"})
	// row 3 left empty
	f.SetSheetRow(sheetName, "A4", &[]interface{}{"Bob"})
	f.SetSheetRow(sheetName, "A5", &[]interface{}{"Carol", "41", "Rome", "note"})

	f2 := openFixture(t, f)

	records, err := ReadRecords(f2, sheetName, 3)
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	tests := []struct {
		row    int
		values []string
	}{
		{2, []string{"Alice", "30", "Oslo"}},
		{4, []string{"Bob", "", ""}},
		{5, []string{"Carol", "41", "Rome", "note"}},
	}
	for i, tt := range tests {
		if records[i].Row != tt.row {
			t.Errorf("record %d: expected row %d, got %d", i, tt.row, records[i].Row)
		}
		if !reflect.DeepEqual(records[i].Values, tt.values) {
			t.Errorf("record %d: expected %v, got %v", i, tt.values, records[i].Values)
		}
	}
}

func TestReadRecordsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	f2 := openFixture(t, f)

	if _, err := ReadRecords(f2, "Nope", 1); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestFindLastRow(t *testing.T) {
	tests := []struct {
		rows     [][]string
		expected int
	}{
		{nil, 0},
		{[][]string{{"H"}}, 1},
		{[][]string{{"H"}, {"a"}, {}, {"", ""}}, 2},
		{[][]string{{}, {}, {"", "x"}}, 3},
	}

	for _, tt := range tests {
		result := findLastRow(tt.rows)
		if result != tt.expected {
			t.Errorf("findLastRow(%v) = %d, expected %d", tt.rows, result, tt.expected)
		}
	}
}
