package manifest

import (
	"path/filepath"

	"github.com/libman-dev/libman/internal/lmfile"
)

// Package is a parsed libman package (.lmp) file.
type Package struct {
	Name      string
	Namespace string
	// Requires lists the names of packages this package depends on.
	Requires []string
	// Libraries holds the paths of the package's .lml files, resolved
	// against the directory containing the package file.
	Libraries []string
	// Fields is the underlying field sequence, for key queries.
	Fields *lmfile.FieldSequence
}

// PackageFromFields validates a field sequence as a package document.
func PackageFromFields(fields *lmfile.FieldSequence, docPath string) (*Package, error) {
	typ, err := fields.ExactlyOne("Type")
	if err != nil {
		return nil, invalidf(ErrInvalidPackage, "%v", err)
	}
	if typ.Value != "Package" {
		return nil, invalidf(ErrInvalidPackage, "incorrect Type %q", typ.Value)
	}
	name, err := fields.ExactlyOne("Name")
	if err != nil {
		return nil, invalidf(ErrInvalidPackage, "%v", err)
	}
	namespace, err := fields.ExactlyOne("Namespace")
	if err != nil {
		return nil, invalidf(ErrInvalidPackage, "%v", err)
	}

	baseDir := filepath.Dir(docPath)
	pkg := &Package{
		Name:      name.Value,
		Namespace: namespace.Value,
		Requires:  fields.Values("Requires"),
		Fields:    fields,
	}
	for _, lib := range fields.Values("Library") {
		if !filepath.IsAbs(lib) {
			lib = filepath.Join(baseDir, lib)
		}
		pkg.Libraries = append(pkg.Libraries, lib)
	}
	return pkg, nil
}

// LoadPackage parses and validates the package file at the given path.
func LoadPackage(path string) (*Package, error) {
	fields, err := lmfile.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return PackageFromFields(fields, path)
}
