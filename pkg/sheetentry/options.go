// Package sheetentry provides schema-driven data entry into xlsx workbooks.
package sheetentry

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/setup"
)

// DefaultWorkbookPath is used when neither the config file nor a flag names
// a workbook.
const DefaultWorkbookPath = "sample.xlsx"

// Options configures a session.
type Options struct {
	// WorkbookPath is the xlsx file to open or create.
	WorkbookPath string `toml:"workbook_path"`
	// PreviewColumns is how many leading columns the preview shows by default.
	PreviewColumns int `toml:"preview_columns"`
	// MaxSheets caps the sheet count of a new workbook, at most 10.
	MaxSheets int `toml:"max_sheets"`
	// MaxNewSheets caps how many sheets one edit may add, at most 5.
	MaxNewSheets int `toml:"max_new_sheets"`
	// Interactive selects the console wizard.
	// If nil, defaults to true.
	Interactive *bool `toml:"interactive,omitempty"`
	// LogFile receives log output while the terminal UI is running.
	// If empty, logs are discarded during that time.
	LogFile string `toml:"log_file,omitempty"`
}

// DefaultOptions returns default session options.
func DefaultOptions() Options {
	limits := setup.DefaultLimits()
	return Options{
		WorkbookPath:   DefaultWorkbookPath,
		PreviewColumns: limits.PreviewColumns,
		MaxSheets:      limits.MaxSheets,
		MaxNewSheets:   limits.MaxNewSheets,
	}
}

// LoadOptions reads options from a TOML file on top of the defaults. A
// missing file yields the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return opts, err
	}
	if err := toml.Unmarshal(b, &opts); err != nil {
		return DefaultOptions(), err
	}
	return opts.normalized(), nil
}

// Save writes the options to a TOML file.
func (o Options) Save(path string) error {
	b, err := toml.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// IsInteractive returns whether the console wizard runs.
func (o Options) IsInteractive() bool {
	if o.Interactive != nil {
		return *o.Interactive
	}
	return true
}

// Limits returns the wizard bounds.
func (o Options) Limits() setup.Limits {
	return setup.Limits{
		MaxSheets:      o.MaxSheets,
		MaxNewSheets:   o.MaxNewSheets,
		PreviewColumns: o.PreviewColumns,
	}
}

// normalized replaces unusable values with defaults. The sheet limits can be
// lowered but never raised above the defaults.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.WorkbookPath == "" {
		o.WorkbookPath = def.WorkbookPath
	}
	if o.PreviewColumns <= 0 {
		o.PreviewColumns = models.DefaultPreviewColumns
	}
	if o.MaxSheets <= 0 || o.MaxSheets > def.MaxSheets {
		o.MaxSheets = def.MaxSheets
	}
	if o.MaxNewSheets <= 0 || o.MaxNewSheets > def.MaxNewSheets {
		o.MaxNewSheets = def.MaxNewSheets
	}
	return o
}
