// Package manifest defines the libman document types (index, package,
// library) and their validation from parsed field sequences.
package manifest

import (
	"path/filepath"
	"strings"

	"github.com/libman-dev/libman/internal/lmfile"
)

// IndexEntry is one Package entry in a libman index.
type IndexEntry struct {
	// Name is the package name.
	Name string
	// Path is the location of the package's .lmp file, resolved
	// against the directory containing the index.
	Path string
}

// Index is a parsed libman index (.lmi) file.
type Index struct {
	// Entries holds the index entries in document order.
	Entries []IndexEntry
	// Fields is the underlying field sequence, for key queries.
	Fields *lmfile.FieldSequence

	byName map[string]IndexEntry
}

// Get returns the entry for the given package name, if present.
func (idx *Index) Get(name string) (IndexEntry, bool) {
	e, ok := idx.byName[name]
	return e, ok
}

// Has reports whether the index contains the given package name.
func (idx *Index) Has(name string) bool {
	_, ok := idx.byName[name]
	return ok
}

// IndexFromFields validates a field sequence as an index document.
// Relative package paths resolve against the parent of docPath.
func IndexFromFields(fields *lmfile.FieldSequence, docPath string) (*Index, error) {
	typ, err := fields.ExactlyOne("Type")
	if err != nil {
		return nil, invalidf(ErrInvalidIndex, "%v", err)
	}
	if typ.Value != "Index" {
		return nil, invalidf(ErrInvalidIndex, "incorrect Type %q", typ.Value)
	}

	idx := &Index{Fields: fields, byName: map[string]IndexEntry{}}
	baseDir := filepath.Dir(docPath)
	for _, field := range fields.Fields() {
		if field.Key != "Package" {
			continue
		}
		name, path, ok := strings.Cut(field.Value, ";")
		if !ok {
			return nil, invalidf(ErrInvalidIndex, "malformed Package entry %q (expect \"<name>; <path>\")", field.Value)
		}
		name = strings.TrimSpace(name)
		path = strings.TrimSpace(path)
		if idx.Has(name) {
			return nil, invalidf(ErrInvalidIndex, "package %q listed more than once", name)
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		entry := IndexEntry{Name: name, Path: path}
		idx.Entries = append(idx.Entries, entry)
		idx.byName[name] = entry
	}
	return idx, nil
}

// LoadIndex parses and validates the index file at the given path.
func LoadIndex(path string) (*Index, error) {
	fields, err := lmfile.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return IndexFromFields(fields, path)
}
