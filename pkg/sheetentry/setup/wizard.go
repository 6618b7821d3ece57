package setup

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/parser"
)

// askCount asks for a number in [lo, hi] until one is given.
func askCount(p Prompter, prompt string, lo, hi int) (int, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			p.Say("! Invalid input. Please enter a number.")
			continue
		}
		if n < lo || n > hi {
			p.Say("! Please enter a number between %d and %d.", lo, hi)
			continue
		}
		return n, nil
	}
}

// askSheetName asks for a valid sheet name not in taken. Worksheet names are
// compared case-insensitively, as spreadsheet applications do.
func askSheetName(p Prompter, prompt string, taken []string) (string, error) {
	for {
		name, err := p.Ask(prompt)
		if err != nil {
			return "", err
		}
		if err := models.ValidateSheetName(name); err != nil {
			p.Say("! %s.", upperFirst(err.Error()))
			continue
		}
		if containsFold(taken, name) {
			p.Say("! Sheet '%s' already exists. Choose a different name.", name)
			continue
		}
		return name, nil
	}
}

// defineColumns collects column names until an empty entry. At least one
// column is required and names must be unique.
func defineColumns(p Prompter, sheetName string) ([]string, error) {
	p.Say("")
	p.Say("--- Column setup for '%s' ---", sheetName)
	p.Say("Enter column names one by one. Press Enter with empty input to finish.")

	var columns []string
	for {
		name, err := p.Ask("  Column " + strconv.Itoa(len(columns)+1) + ": ")
		if err != nil {
			return nil, err
		}
		if name == "" {
			if len(columns) == 0 {
				p.Say("  ! You must define at least one column!")
				continue
			}
			return columns, nil
		}
		if slices.Contains(columns, name) {
			p.Say("  ! '%s' already exists. Please use a different name.", name)
			continue
		}
		columns = append(columns, name)
		p.Say("  + Added: %s", name)
	}
}

// chooseDisplayColumns asks which columns the preview shows.
//
// Empty input keeps the first previewColumns columns. A list that does not
// parse, or that names no valid column, falls back to the same default.
// Otherwise out-of-range and repeated indices are dropped and the remaining
// columns are kept in the order given.
func chooseDisplayColumns(p Prompter, columns []string, previewColumns int) ([]string, error) {
	p.Say("")
	p.Say("Select columns to display in preview (total available: %d):", len(columns))
	for i, c := range columns {
		p.Say("  %d. %s", i+1, c)
	}
	p.Say("")
	p.Say("Enter column numbers separated by commas (e.g., 1,2,3,4)")
	p.Say("Or press Enter to use the first %d columns.", previewColumns)

	answer, err := p.Ask("Preview columns: ")
	if err != nil {
		return nil, err
	}

	display := SelectDisplayColumns(columns, answer, previewColumns)
	p.Say("+ Preview columns: %s", strings.Join(display, ", "))
	return display, nil
}

// SelectDisplayColumns applies the display column selection policy to a raw
// comma separated answer.
func SelectDisplayColumns(columns []string, answer string, previewColumns int) []string {
	fallback := models.DefaultDisplayColumns(columns, previewColumns)
	if strings.TrimSpace(answer) == "" {
		return fallback
	}

	indices, err := parser.ParseIndexList(answer)
	if err != nil {
		return fallback
	}
	selected := parser.SelectByIndex(columns, indices)
	if len(selected) == 0 {
		return fallback
	}
	return selected
}

// defineSheet runs the column and preview steps for one sheet.
func defineSheet(p Prompter, sheetName string, previewColumns int) (models.SheetSchema, error) {
	columns, err := defineColumns(p, sheetName)
	if err != nil {
		return models.SheetSchema{}, err
	}
	display, err := chooseDisplayColumns(p, columns, previewColumns)
	if err != nil {
		return models.SheetSchema{}, err
	}
	return models.SheetSchema{Columns: columns, DisplayColumns: display}, nil
}

func containsFold(items []string, s string) bool {
	for _, item := range items {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
