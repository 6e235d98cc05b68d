package ui

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// RenderTable prints one fetched page as a plain text table, for
// scripted use and piped output. The footer carries the pagination
// numbers the interactive screen shows in its status bar.
func RenderTable(w io.Writer, headers []string, rows [][]string, page, pageCount, total int) error {
	t := tablewriter.NewTable(w)
	t.Header(headers)
	for _, row := range rows {
		if err := t.Append(row); err != nil {
			return fmt.Errorf("ui: append row: %w", err)
		}
	}
	if err := t.Render(); err != nil {
		return fmt.Errorf("ui: render table: %w", err)
	}
	_, err := fmt.Fprintf(w, "page %d/%d, %d record(s)\n", page, pageCount, total)
	return err
}

// Alert prints a backend error once, with the server-provided text.
func Alert(w io.Writer, theme *Theme, text string) {
	fmt.Fprintln(w, theme.Error.Render("error: ")+text)
}

// Warn prints a non-fatal notice.
func Warn(w io.Writer, theme *Theme, text string) {
	fmt.Fprintln(w, theme.Warning.Render("warning: ")+text)
}
