package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Table renders rows under a colored title and header line.
type Table struct {
	writer  io.Writer
	title   string
	headers []string
	rows    [][]string
	noColor bool
}

// NewTable creates a table with the given title and column headers.
func NewTable(w io.Writer, title string, headers []string, noColor bool) *Table {
	return &Table{
		writer:  w,
		title:   title,
		headers: headers,
		noColor: noColor,
	}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table.
func (t *Table) Render() {
	title := color.New(color.Bold, color.FgCyan)
	header := color.New(color.Bold)
	gray := color.New(color.FgHiBlack)
	if t.noColor {
		title.DisableColor()
		header.DisableColor()
		gray.DisableColor()
	}

	title.Fprintln(t.writer, t.title)

	if len(t.rows) == 0 {
		gray.Fprintln(t.writer, "  (none)")
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	fmt.Fprint(t.writer, "  ")
	for i, h := range t.headers {
		header.Fprint(t.writer, cell(h, widths, i))
	}
	fmt.Fprintln(t.writer)

	fmt.Fprint(t.writer, "  ")
	for i, w := range widths {
		gray.Fprint(t.writer, cell(strings.Repeat("-", w), widths, i))
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		fmt.Fprint(t.writer, "  ")
		for i, c := range row {
			if i < len(widths) {
				fmt.Fprint(t.writer, cell(c, widths, i))
			}
		}
		fmt.Fprintln(t.writer)
	}
}

// cell pads all but the last column.
func cell(s string, widths []int, i int) string {
	if i == len(widths)-1 {
		return s
	}

	return padRight(s, widths[i]) + "  "
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return enc.Close()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
