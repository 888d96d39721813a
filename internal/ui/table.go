package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jwulff/memoexport/internal/export"
)

// Column is a fixed-width table column.
type Column struct {
	Name  string
	Width int
}

// Columns is the table layout.
var Columns = []Column{
	{"Date", 19},
	{"Duration", 11},
	{"Old Path", 32},
	{"New Path", 60},
	{"Status", 15},
}

const (
	colOldPath = 2
	colNewPath = 3
)

// Table writes fixed-width rows with box-drawing borders.
type Table struct {
	out    io.Writer
	styles Styles
}

// NewTable returns a Table writing to out.
func NewTable(out io.Writer) *Table {
	return &Table{out: out, styles: NewStyles(lipgloss.NewRenderer(out))}
}

// Truncate shortens s for display to at most width terminal columns by keeping
// its tail behind an ellipsis. It never affects the paths used for I/O.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return tail(s, width)
	}
	return "..." + tail(s, width-3)
}

// tail returns the longest suffix of s that fits in width columns.
func tail(s string, width int) string {
	r := []rune(s)
	used, start := 0, len(r)
	for start > 0 {
		w := runewidth.RuneWidth(r[start-1])
		if used+w > width {
			break
		}
		used += w
		start--
	}
	return string(r[start:])
}

// pad left-aligns text in a cell of width columns. Text wider than the cell
// is not cut.
func pad(text string, width int) string {
	if w := runewidth.StringWidth(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}

func (t *Table) rule(left, mid, right string) string {
	parts := make([]string, len(Columns))
	for i, c := range Columns {
		parts[i] = strings.Repeat("─", c.Width)
	}
	return t.styles.Border.Render(left + "─" + strings.Join(parts, "─"+mid+"─") + "─" + right)
}

func (t *Table) line(cells []string) string {
	bar := t.styles.Border.Render("│")
	return bar + " " + strings.Join(cells, " "+bar+" ") + " " + bar
}

// Header writes the top border, column names, and the separator.
func (t *Table) Header() {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = t.styles.Header.Render(c.Name) + pad("", c.Width-runewidth.StringWidth(c.Name))
	}
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.rule("┌", "┬", "┐"))
	fmt.Fprintln(t.out, t.line(names))
	fmt.Fprintln(t.out, t.rule("├", "┼", "┤"))
}

// Footer writes the bottom border.
func (t *Table) Footer() {
	fmt.Fprintln(t.out, t.rule("└", "┴", "┘"))
}

// FormatRow renders r without a trailing newline.
func (t *Table) FormatRow(r export.Row) string {
	values := []string{
		r.Date,
		r.Duration,
		Truncate(r.Source, Columns[colOldPath].Width),
		Truncate(r.Destination, Columns[colNewPath].Width),
	}
	cells := make([]string, 0, len(Columns))
	for i, v := range values {
		cells = append(cells, pad(v, Columns[i].Width))
	}

	status := string(r.Status)
	styled := t.statusStyle(r.Status).Render(status)
	cells = append(cells, styled+pad("", Columns[len(Columns)-1].Width-runewidth.StringWidth(status)))

	return t.line(cells)
}

// WriteRow writes r's final state on its own line.
func (t *Table) WriteRow(r export.Row) {
	fmt.Fprintln(t.out, t.FormatRow(r))
}

func (t *Table) statusStyle(s export.Status) lipgloss.Style {
	switch s {
	case export.StatusSuccess:
		return t.styles.Success
	case export.StatusFailed:
		return t.styles.Failed
	case export.StatusSkipped:
		return t.styles.Skipped
	default:
		return t.styles.Prompt
	}
}

// Summary writes the end-of-run totals.
func (t *Table) Summary(s export.Summary, exportDir string) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.styles.Title.Render("--- SUMMARY ---"))
	fmt.Fprintf(t.out, "Successfully Exported: %d\n", s.Exported)
	fmt.Fprintf(t.out, "Failed/Inconsistent:   %d\n", s.Failed)
	fmt.Fprintf(t.out, "Log file saved at:     %s\n", s.LogPath)
	if s.Interrupted {
		fmt.Fprintf(t.out, "Interrupted after %d of %d recordings.\n", s.Processed, s.Total)
	}
	fmt.Fprintf(t.out, "\nDone. Check the folder: %s\n", exportDir)
}
