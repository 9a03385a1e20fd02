package style

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls how cell text is padded within a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Column describes one table column.
type Column struct {
	Name  string
	Width int
	Align Alignment
}

// Table renders rows of fixed-width columns with a styled header.
// Cell values may carry ANSI styling; width accounting uses the
// unstyled text.
type Table struct {
	columns   []Column
	rows      [][]string
	indent    string
	headerSep bool
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{
		columns:   columns,
		indent:    "  ",
		headerSep: true,
	}
}

// SetIndent sets the prefix for every rendered line.
func (t *Table) SetIndent(indent string) *Table {
	t.indent = indent
	return t
}

// SetHeaderSeparator toggles the separator line under the header.
func (t *Table) SetHeaderSeparator(on bool) *Table {
	t.headerSep = on
	return t
}

// AddRow appends a row. Missing trailing cells are padded empty.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return t
}

// Render returns the formatted table, one line per row, each ending
// with a newline. A table with no columns renders as the empty string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(t.indent)
	for i, col := range t.columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(t.pad(Header.Render(col.Name), col.Name, col.Width, col.Align))
	}
	b.WriteByte('\n')

	if t.headerSep {
		b.WriteString(t.indent)
		for i, col := range t.columns {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(Muted.Render(strings.Repeat("─", col.Width)))
		}
		b.WriteByte('\n')
	}

	for _, row := range t.rows {
		b.WriteString(t.indent)
		for i, col := range t.columns {
			if i > 0 {
				b.WriteString("  ")
			}
			cell := row[i]
			plain := stripAnsi(cell)
			if runewidth.StringWidth(plain) > col.Width {
				truncated := truncate(plain, col.Width)
				cell, plain = truncated, truncated
			}
			b.WriteString(t.pad(cell, plain, col.Width, col.Align))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// pad pads styled text to width using the plain text for measurement.
// Text at or beyond the width is returned unchanged. Widths are
// terminal cells, so wide runes count double.
func (t *Table) pad(styled, plain string, width int, align Alignment) string {
	gap := width - runewidth.StringWidth(plain)
	if gap <= 0 {
		return styled
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + styled
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + styled + strings.Repeat(" ", gap-left)
	default:
		return styled + strings.Repeat(" ", gap)
	}
}

func truncate(s string, width int) string {
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripAnsi removes ANSI SGR escape sequences from s.
func stripAnsi(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}
