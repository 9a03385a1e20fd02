package export

import (
	"os"
	"path/filepath"
	"testing"
)

func writeExportRoot(t *testing.T, parent, name string) string {
	t.Helper()
	root := filepath.Join(parent, name+TreeSuffix)
	if err := os.MkdirAll(filepath.Join(root, "libs"), 0755); err != nil {
		t.Fatal(err)
	}
	lmp := "Type: Package\nName: " + name + "\nNamespace: " + name + "\n"
	if err := os.WriteFile(filepath.Join(root, name+".lmp"), []byte(lmp), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestFindTrees(t *testing.T) {
	src := t.TempDir()
	writeExportRoot(t, filepath.Join(src, "build", "a"), "acme")
	writeExportRoot(t, filepath.Join(src, "build", "b"), "zlib")
	if err := os.MkdirAll(filepath.Join(src, "build", "other"), 0755); err != nil {
		t.Fatal(err)
	}

	trees, err := FindTrees(src)
	if err != nil {
		t.Fatalf("FindTrees error: %v", err)
	}
	if len(trees) != 2 {
		t.Fatalf("found %d trees, want 2: %v", len(trees), trees)
	}
}

func TestCollect(t *testing.T) {
	src := t.TempDir()
	writeExportRoot(t, filepath.Join(src, "build", "a"), "acme")
	writeExportRoot(t, filepath.Join(src, "build", "b"), "zlib")
	dest := t.TempDir()

	copied, err := Collect(src, dest)
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(copied) != 2 {
		t.Fatalf("copied %d roots, want 2", len(copied))
	}
	for _, name := range []string{"acme", "zlib"} {
		lmp := filepath.Join(dest, name+TreeSuffix, name+".lmp")
		if _, err := os.Stat(lmp); err != nil {
			t.Errorf("missing collected file %s: %v", lmp, err)
		}
	}
}

func TestCollect_DuplicateName(t *testing.T) {
	src := t.TempDir()
	writeExportRoot(t, filepath.Join(src, "build", "a"), "acme")
	writeExportRoot(t, filepath.Join(src, "build", "b"), "acme")

	if _, err := Collect(src, t.TempDir()); err == nil {
		t.Error("expected error for duplicate export root names")
	}
}

func TestCollect_Empty(t *testing.T) {
	copied, err := Collect(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(copied) != 0 {
		t.Errorf("copied = %v, want none", copied)
	}
}
