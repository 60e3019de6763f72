package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls how a column's cells are padded.
type Align int

const (
	// AlignLeft pads cells on the right.
	AlignLeft Align = iota
	// AlignRight pads cells on the left, for numeric columns.
	AlignRight
)

// Table is a simple styled table renderer.
type Table struct {
	headers []string
	aligns  []Align
	rows    [][]string
	styles  []*lipgloss.Style
	widths  []int
}

// NewTable creates a new table with the given column headers. All columns
// default to left alignment.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{
		headers: headers,
		aligns:  make([]Align, len(headers)),
		widths:  widths,
	}
}

// AlignRight marks the given column indexes as right-aligned.
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		if c >= 0 && c < len(t.aligns) {
			t.aligns[c] = AlignRight
		}
	}
	return t
}

// AddRow adds a row of values to the table. The number of values should
// match the number of headers.
func (t *Table) AddRow(values ...string) {
	t.addRow(nil, values)
}

// AddStyledRow adds a row rendered with the given style, used for the
// grand-total row.
func (t *Table) AddStyledRow(style lipgloss.Style, values ...string) {
	t.addRow(&style, values)
}

func (t *Table) addRow(style *lipgloss.Style, values []string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
		}
		if w := lipgloss.Width(row[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
	t.styles = append(t.styles, style)
}

// Render returns the formatted table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row.
	for i, h := range t.headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(StyleHeader.Render(pad(h, t.widths[i], t.aligns[i])))
	}
	sb.WriteString("\n")

	// Separator.
	for i, w := range t.widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(StyleMuted.Render(strings.Repeat("─", w)))
	}
	sb.WriteString("\n")

	// Data rows.
	for r, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			cell = pad(cell, t.widths[i], t.aligns[i])
			if t.styles[r] != nil {
				cell = t.styles[r].Render(cell)
			}
			sb.WriteString(cell)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Print writes the table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// pad fills a string to the given width. Width is measured with
// lipgloss.Width so ANSI sequences and wide CJK runes pad correctly.
func pad(s string, width int, align Align) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	fill := strings.Repeat(" ", gap)
	if align == AlignRight {
		return fill + s
	}
	return s + fill
}
