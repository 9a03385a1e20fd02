package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// TreeSuffix is the directory name suffix of a libman export root.
const TreeSuffix = ".libman-export"

// libsDirName is the subdirectory of an export root holding .lml files.
const libsDirName = "libs"

// RenderPackage renders the .lmp document for the package. Library
// references point into the libs/ subdirectory of the export root.
func RenderPackage(pkg *Package) string {
	lines := []string{
		"# libman package file generated by lm. DO NOT EDIT.",
		"Type: Package",
		"Name: " + pkg.Name,
		"Namespace: " + pkg.Namespace,
	}
	for _, req := range pkg.Requires {
		lines = append(lines, "Requires: "+req)
	}
	for _, lib := range pkg.Libraries {
		lines = append(lines, "Library: "+filepath.Join(libsDirName, lib.Name+".lml"))
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderLibrary renders the .lml document for the library.
func RenderLibrary(lib *Library) string {
	lines := []string{
		"# libman library file generated by lm. DO NOT EDIT.",
		"Type: Library",
		"Name: " + lib.Name,
	}
	for _, path := range lib.Paths {
		lines = append(lines, "Path: "+path)
	}
	for _, inc := range lib.Includes {
		lines = append(lines, "Include: "+inc)
	}
	for _, def := range lib.Defines {
		lines = append(lines, "Define: "+def)
	}
	for _, use := range lib.Uses {
		lines = append(lines, "Uses: "+use)
	}
	for _, special := range lib.SpecialUses {
		lines = append(lines, "Special-Uses: "+special)
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteTree writes the package's export root under destDir and returns
// the path of the root (<destDir>/<name>.libman-export). The tree is
// staged under a unique temp directory and renamed into place, so a
// crashed or concurrent run never leaves a partial export visible. An
// existing export root for the same package is replaced.
func WriteTree(pkg *Package, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("creating export destination: %w", err)
	}

	stage := filepath.Join(destDir, ".lm-stage-"+uuid.NewString())
	if err := os.MkdirAll(filepath.Join(stage, libsDirName), 0755); err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	lmpPath := filepath.Join(stage, pkg.Name+".lmp")
	if err := os.WriteFile(lmpPath, []byte(RenderPackage(pkg)), 0644); err != nil {
		return "", fmt.Errorf("writing package file: %w", err)
	}
	for i := range pkg.Libraries {
		lib := &pkg.Libraries[i]
		lmlPath := filepath.Join(stage, libsDirName, lib.Name+".lml")
		if err := os.WriteFile(lmlPath, []byte(RenderLibrary(lib)), 0644); err != nil {
			return "", fmt.Errorf("writing library file for %s: %w", lib.Name, err)
		}
	}

	root := filepath.Join(destDir, pkg.Name+TreeSuffix)
	if err := os.RemoveAll(root); err != nil {
		return "", fmt.Errorf("removing stale export root: %w", err)
	}
	if err := os.Rename(stage, root); err != nil {
		return "", fmt.Errorf("publishing export root: %w", err)
	}
	return root, nil
}

// PackageFilePath returns the path of the .lmp file inside an export
// root written by WriteTree.
func PackageFilePath(root string, pkgName string) string {
	return filepath.Join(root, pkgName+".lmp")
}
