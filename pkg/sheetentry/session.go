package sheetentry

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/form"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/repository"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/setup"
)

// Session is a resolved schema bound to its workbook.
type Session struct {
	Schema  *models.Schema
	Records *repository.Repository
}

// Start resolves the schema for opts.WorkbookPath. The prompter is used only
// when opts is interactive. A session without sheets is never returned.
func Start(opts Options, prompter setup.Prompter) (*Session, error) {
	opts = opts.normalized()
	if !opts.IsInteractive() {
		prompter = nil
	}

	schema, err := setup.NewLoader(opts.WorkbookPath, prompter, opts.Limits()).Load()
	if err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	if schema.Len() == 0 {
		return nil, models.ErrNoSchema
	}

	log.WithFields(log.Fields{"path": schema.BookPath, "sheets": schema.Len()}).Debug("session ready")
	return &Session{
		Schema:  schema,
		Records: repository.New(schema.BookPath),
	}, nil
}

// Controller returns a form controller for one sheet.
func (s *Session) Controller(sheetName string) (*form.Controller, error) {
	sheet, ok := s.Schema.Get(sheetName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrSheetNotFound, sheetName)
	}
	return form.NewController(sheetName, sheet, s.Records), nil
}

// Controllers returns one form controller per sheet in tab order.
func (s *Session) Controllers() []*form.Controller {
	names := s.Schema.SheetNames()
	controllers := make([]*form.Controller, 0, len(names))
	for _, name := range names {
		sheet, _ := s.Schema.Get(name)
		controllers = append(controllers, form.NewController(name, sheet, s.Records))
	}
	return controllers
}
