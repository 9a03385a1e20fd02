package cmd

import (
	"strings"
	"testing"

	"github.com/libman-dev/libman/internal/testutil"
)

func listFixture(t *testing.T) *testutil.Tree {
	t.Helper()
	tree := testutil.NewTree(t)
	tree.WritePackage("zlib.lmp", "zlib", "Z", "Library: libs/z.lml")
	tree.WriteFile("broken.lmp", "Type: Package", "Name: broken")
	tree.WriteIndex("INDEX.lmi",
		"zlib; zlib.lmp",
		"broken; broken.lmp",
	)
	return tree
}

func TestRunList_Table(t *testing.T) {
	tree := listFixture(t)

	var out strings.Builder
	if err := runList(&out, tree.Path("INDEX.lmi"), false); err != nil {
		t.Fatalf("runList error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Package", "zlib", "Z", "broken", "load failed"} {
		if !strings.Contains(got, want) {
			t.Errorf("listing missing %q:\n%s", want, got)
		}
	}
}

func TestRunList_Plain(t *testing.T) {
	tree := listFixture(t)

	var out strings.Builder
	if err := runList(&out, tree.Path("INDEX.lmi"), true); err != nil {
		t.Fatalf("runList error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("plain listing = %q, want 2 lines", out.String())
	}
	fields := strings.Split(lines[0], "\t")
	if len(fields) != 4 {
		t.Fatalf("plain line = %q, want 4 tab-separated fields", lines[0])
	}
	if fields[0] != "zlib" || fields[1] != "Z" || fields[2] != "1" {
		t.Errorf("plain line fields = %v", fields)
	}
}

func TestRunList_EmptyIndex(t *testing.T) {
	tree := testutil.NewTree(t)
	tree.WriteIndex("INDEX.lmi")

	var out strings.Builder
	if err := runList(&out, tree.Path("INDEX.lmi"), true); err != nil {
		t.Fatalf("runList error: %v", err)
	}
	if !strings.Contains(out.String(), "no packages") {
		t.Errorf("empty index listing = %q", out.String())
	}
}

func TestRunList_MissingIndex(t *testing.T) {
	tree := testutil.NewTree(t)
	var out strings.Builder
	if err := runList(&out, tree.Path("INDEX.lmi"), true); err == nil {
		t.Error("expected error for missing index")
	}
}
