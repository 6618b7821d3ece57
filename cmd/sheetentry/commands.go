package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
)

// openSession resolves the schema without prompting.
func openSession(cmd *cobra.Command) (*sheetentry.Session, error) {
	opts, err := options(cmd)
	if err != nil {
		return nil, err
	}
	interactive := false
	opts.Interactive = &interactive
	return sheetentry.Start(opts, nil)
}

func sheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "List the sheets of the workbook and their columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workbook: %s\n", session.Schema.BookPath)
			fmt.Fprintf(out, "Total sheets: %d\n", session.Schema.Len())
			for _, name := range session.Schema.SheetNames() {
				sheet, _ := session.Schema.Get(name)
				fmt.Fprintf(out, "\n%s\n", name)
				fmt.Fprintf(out, "  Columns: %s\n", strings.Join(sheet.Columns, ", "))
				fmt.Fprintf(out, "  Display: %s\n", strings.Join(sheet.DisplayColumns, ", "))
			}
			return nil
		},
	}
}

func recordsCmd() *cobra.Command {
	var displayOnly bool

	cmd := &cobra.Command{
		Use:   "records <sheet>",
		Short: "Print the records of a sheet as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			ctrl, err := session.Controller(args[0])
			if err != nil {
				return err
			}
			if err := ctrl.Load(); err != nil {
				return err
			}

			headers := ctrl.Schema().Columns
			rows := make([][]string, len(ctrl.Records()))
			for i, r := range ctrl.Records() {
				row := make([]string, len(headers))
				copy(row, r.Values)
				rows[i] = row
			}
			if displayOnly {
				headers = ctrl.Schema().DisplayColumns
				rows = ctrl.Preview()
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers(headers...).
				Rows(rows...)
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			fmt.Fprintf(cmd.OutOrStdout(), "%d record(s)\n", len(rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&displayOnly, "display", false, "Show only the display columns")
	return cmd
}

func appendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append <sheet> <column=value>...",
		Short: "Append one record to a sheet",
		Long: `Append one record to a sheet. Every column of the sheet must be given
a non-empty value.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			ctrl, err := session.Controller(args[0])
			if err != nil {
				return err
			}

			values, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			for _, v := range values {
				if ctrl.Schema().ColumnIndex(v.column) < 0 {
					return fmt.Errorf("unknown column %q in sheet %q", v.column, ctrl.SheetName())
				}
				ctrl.SetValue(v.column, v.value)
			}

			if err := ctrl.Submit(); err != nil {
				if !errors.Is(err, models.ErrReloadFailed) {
					return err
				}
				log.Warnf("record written but not read back: %v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Data submitted to '%s'!\n", ctrl.SheetName())
			return nil
		},
	}
}

type assignment struct {
	column string
	value  string
}

// parseAssignments splits column=value arguments. Only the first '=' separates
// the column from the value.
func parseAssignments(args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		column, value, ok := strings.Cut(arg, "=")
		column = strings.TrimSpace(column)
		if !ok || column == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected column=value", arg)
		}
		out = append(out, assignment{column: column, value: value})
	}
	return out, nil
}
