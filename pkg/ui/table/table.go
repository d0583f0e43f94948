// Package table renders tabular command output. On a terminal the table is
// drawn with lipgloss and sized to the terminal width, otherwise it is
// written as plain text with tablewriter.
package table

import (
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	tablewriter "github.com/olekukonko/tablewriter"
	lo "github.com/samber/lo"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is implemented by anything which can be written as a table
type TableData interface {
	// Header returns the column header labels
	Header() []string

	// Len returns the number of rows
	Len() int

	// Row returns the cell values for row i, or nil to skip the row.
	// Wrap a value in Bold{} to highlight it on a terminal.
	Row(i int) []any
}

// Bold highlights a cell value on a terminal
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Write the table to w, styled when w is a terminal
func Write(w io.Writer, data TableData) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, err := fmt.Fprintln(w, Render(data, int(f.Fd())))
		return err
	}
	return WriteText(w, data)
}

// WriteText writes the table to w as plain text
func WriteText(w io.Writer, data TableData) error {
	table := tablewriter.NewWriter(w)
	table.Header(data.Header())
	if err := table.Bulk(rows(data, false)); err != nil {
		return err
	}
	return table.Render()
}

// Render returns the styled table. When fd is a terminal which is narrower
// than the table, columns are wrapped to fit.
func Render(data TableData, fd int) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	t.Rows(rows(data, true)...)

	result := t.Render()
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		widest := lo.Max(lo.Map(strings.Split(result, "\n"), func(line string, _ int) int {
			return len([]rune(line))
		}))
		if widest > w {
			result = t.Width(w).Render()
		}
	}
	return result
}

// FormatCell converts a value to the text of a cell. Empty and zero values
// are written as "-".
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case Bold:
		return FormatCell(val.Value)
	case string:
		if val == "" {
			return "-"
		}
		return val
	case []string:
		if len(val) == 0 {
			return "-"
		}
		return strings.Join(val, "\n")
	case int:
		if val == 0 {
			return "-"
		}
		return fmt.Sprint(val)
	case *string:
		if val == nil {
			return "-"
		}
		return FormatCell(*val)
	default:
		if s := fmt.Sprint(val); s != "" {
			return s
		}
		return "-"
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func rows(data TableData, styled bool) [][]string {
	result := make([][]string, 0, data.Len())
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		result = append(result, lo.Map(row, func(v any, _ int) string {
			if b, ok := v.(Bold); ok && styled {
				return boldStyle.Render(FormatCell(b.Value))
			}
			return FormatCell(v)
		}))
	}
	return result
}
