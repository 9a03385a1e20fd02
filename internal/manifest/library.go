package manifest

import (
	"path/filepath"
	"strings"

	"github.com/libman-dev/libman/internal/lmfile"
)

// Usage names a library within a namespace, as written in Uses and
// Links fields ("<Namespace>/<Library>").
type Usage struct {
	Namespace string
	Library   string
}

func (u Usage) String() string {
	return u.Namespace + "/" + u.Library
}

// Library is a parsed libman library (.lml) file.
type Library struct {
	Name string
	// Path is the linkable for the library, or "" for header-only
	// libraries. Resolved against the directory of the library file.
	Path string
	// Includes holds resolved include directories.
	Includes []string
	// Defines holds preprocessor definitions.
	Defines []string
	Uses    []Usage
	Links   []Usage
	// Fields is the underlying field sequence, for key queries.
	Fields *lmfile.FieldSequence
}

// LibraryFromFields validates a field sequence as a library document.
func LibraryFromFields(fields *lmfile.FieldSequence, docPath string) (*Library, error) {
	typ, err := fields.ExactlyOne("Type")
	if err != nil {
		return nil, invalidf(ErrInvalidLibrary, "%v", err)
	}
	if typ.Value != "Library" {
		return nil, invalidf(ErrInvalidLibrary, "incorrect Type %q", typ.Value)
	}
	name, err := fields.ExactlyOne("Name")
	if err != nil {
		return nil, invalidf(ErrInvalidLibrary, "%v", err)
	}

	baseDir := filepath.Dir(docPath)
	lib := &Library{
		Name:    name.Value,
		Defines: fields.Values("Define"),
		Fields:  fields,
	}

	pathField, err := fields.AtMostOne("Path")
	if err != nil {
		return nil, invalidf(ErrInvalidLibrary, "%v", err)
	}
	if pathField != nil {
		lib.Path = pathField.Value
		if !filepath.IsAbs(lib.Path) {
			lib.Path = filepath.Join(baseDir, lib.Path)
		}
	}

	for _, inc := range fields.Values("Include") {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(baseDir, inc)
		}
		lib.Includes = append(lib.Includes, inc)
	}

	if lib.Uses, err = parseUsages(fields.Values("Uses")); err != nil {
		return nil, err
	}
	if lib.Links, err = parseUsages(fields.Values("Links")); err != nil {
		return nil, err
	}
	return lib, nil
}

func parseUsages(values []string) ([]Usage, error) {
	var usages []Usage
	for _, v := range values {
		parts := strings.Split(v, "/")
		if len(parts) != 2 {
			return nil, invalidf(ErrInvalidLibrary, "invalid usage name %q (expect \"<Namespace>/<Library>\")", v)
		}
		usages = append(usages, Usage{Namespace: parts[0], Library: parts[1]})
	}
	return usages, nil
}

// LoadLibrary parses and validates the library file at the given path.
func LoadLibrary(path string) (*Library, error) {
	fields, err := lmfile.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return LibraryFromFields(fields, path)
}
