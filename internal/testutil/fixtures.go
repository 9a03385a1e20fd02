// Package testutil provides test fixtures for building libman
// manifest trees on disk.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Tree is a libman manifest tree rooted in a temp directory.
type Tree struct {
	Root string
	t    *testing.T
}

// NewTree creates an empty manifest tree under t.TempDir.
func NewTree(t *testing.T) *Tree {
	t.Helper()
	return &Tree{Root: t.TempDir(), t: t}
}

// Path resolves a relative path inside the tree.
func (tr *Tree) Path(rel string) string {
	return filepath.Join(tr.Root, rel)
}

// WriteFile writes a file inside the tree, creating parent
// directories as needed.
func (tr *Tree) WriteFile(rel string, lines ...string) string {
	tr.t.Helper()
	path := tr.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tr.t.Fatal(err)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tr.t.Fatal(err)
	}
	return path
}

// WriteIndex writes an index file listing the given "name; path"
// entries and returns its path.
func (tr *Tree) WriteIndex(rel string, entries ...string) string {
	tr.t.Helper()
	lines := []string{"Type: Index"}
	for _, e := range entries {
		lines = append(lines, "Package: "+e)
	}
	return tr.WriteFile(rel, lines...)
}

// WritePackage writes a package file and returns its path. Extra
// lines are appended verbatim after Name and Namespace.
func (tr *Tree) WritePackage(rel, name, namespace string, extra ...string) string {
	tr.t.Helper()
	lines := append([]string{
		"Type: Package",
		"Name: " + name,
		"Namespace: " + namespace,
	}, extra...)
	return tr.WriteFile(rel, lines...)
}

// WriteLibrary writes a library file and returns its path. Extra
// lines are appended verbatim after Name.
func (tr *Tree) WriteLibrary(rel, name string, extra ...string) string {
	tr.t.Helper()
	lines := append([]string{
		"Type: Library",
		"Name: " + name,
	}, extra...)
	return tr.WriteFile(rel, lines...)
}
