package style

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

func TestNewTable_Defaults(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Package", Width: 16},
		Column{Name: "Path", Width: 32},
	)
	if len(tbl.columns) != 2 {
		t.Errorf("columns = %d, want 2", len(tbl.columns))
	}
	if !tbl.headerSep {
		t.Error("headerSep should default to true")
	}
	if tbl.indent != "  " {
		t.Errorf("indent = %q, want two spaces", tbl.indent)
	}
}

func TestTable_Chaining(t *testing.T) {
	tbl := NewTable(Column{Name: "A", Width: 5})
	if tbl.SetIndent("") != tbl || tbl.SetHeaderSeparator(false) != tbl || tbl.AddRow("x") != tbl {
		t.Error("setters should return the table for chaining")
	}
}

func TestTable_AddRow_PadsMissingCells(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Package", Width: 8},
		Column{Name: "Libs", Width: 5},
	)
	tbl.AddRow("acme")
	if len(tbl.rows[0]) != 2 {
		t.Fatalf("row len = %d, want 2", len(tbl.rows[0]))
	}
	if tbl.rows[0][1] != "" {
		t.Errorf("padded cell = %q, want empty", tbl.rows[0][1])
	}
}

func TestTable_Render(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Package", Width: 10},
		Column{Name: "Libs", Width: 5, Align: AlignRight},
	)
	tbl.SetIndent("")
	tbl.AddRow("acme", "2")
	tbl.AddRow("zlib", "1")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header + sep + 2 rows), got %d: %v", len(lines), lines)
	}
	sep := stripAnsi(lines[1])
	if !strings.Contains(sep, "─") {
		t.Errorf("separator line doesn't look like a separator: %q", sep)
	}
	row := stripAnsi(lines[2])
	if !strings.Contains(row, "acme") || !strings.HasSuffix(row, "2") {
		t.Errorf("row = %q", row)
	}
}

func TestTable_Render_Empty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() with no columns = %q, want empty", got)
	}
}

func TestTable_Render_Truncates(t *testing.T) {
	tbl := NewTable(Column{Name: "Path", Width: 12})
	tbl.SetIndent("").SetHeaderSeparator(false)
	tbl.AddRow("/a/very/long/path/to/acme.lmp")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	row := strings.TrimSpace(stripAnsi(lines[1]))
	if !strings.HasSuffix(row, "...") {
		t.Errorf("truncated row should end with ellipsis: %q", row)
	}
	if len(row) > 12 {
		t.Errorf("row wider than column: %q", row)
	}
}

func TestTable_Render_NonASCII(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Package", Width: 10},
		Column{Name: "Libs", Width: 4},
	)
	tbl.SetIndent("").SetHeaderSeparator(false)
	tbl.AddRow("libänl", "1")
	tbl.AddRow("日本語ライブラリ", "2")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")

	// Multi-byte runes must not inflate the padded width: "libänl" is
	// six cells, so four cells of padding plus the column gap.
	row := stripAnsi(lines[1])
	if want := "libänl      1   "; row != want {
		t.Errorf("non-ASCII row = %q, want %q", row, want)
	}

	// Wide runes count two cells; truncation must not split a rune.
	wide := stripAnsi(lines[2])
	if !utf8.ValidString(wide) {
		t.Errorf("truncated row is not valid UTF-8: %q", wide)
	}
	cells := strings.SplitN(wide, "  ", 2)
	if got := runewidth.StringWidth(cells[0]); got > 10 {
		t.Errorf("wide-rune cell spans %d cells, want <= 10: %q", got, cells[0])
	}
	if !strings.Contains(wide, "...") {
		t.Errorf("wide-rune cell should be truncated with ellipsis: %q", wide)
	}
}

func TestTruncate_WideRunes(t *testing.T) {
	got := truncate("日本語ライブラリ", 8)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if w := runewidth.StringWidth(got); w > 8 {
		t.Errorf("truncate width = %d, want <= 8: %q", w, got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncate should end with ellipsis: %q", got)
	}
}

func TestTable_Pad(t *testing.T) {
	tbl := &Table{}
	tests := []struct {
		align Alignment
		want  string
	}{
		{AlignLeft, "hi        "},
		{AlignRight, "        hi"},
		{AlignCenter, "    hi    "},
	}
	for _, tt := range tests {
		if got := tbl.pad("hi", "hi", 10, tt.align); got != tt.want {
			t.Errorf("pad(align=%d) = %q, want %q", tt.align, got, tt.want)
		}
	}
	if got := tbl.pad("toolong", "toolong", 3, AlignLeft); got != "toolong" {
		t.Errorf("pad overflow = %q, want unchanged", got)
	}
}

func TestStripAnsi(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"\x1b[1macme\x1b[0m", "acme"},
		{"pre\x1b[32mgreen\x1b[0mpost", "pregreenpost"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripAnsi(tt.input); got != tt.want {
			t.Errorf("stripAnsi(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
