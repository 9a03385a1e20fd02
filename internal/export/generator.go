package export

import (
	"fmt"
	"path/filepath"
)

// specialByLink maps well-known system link names to libman special
// requirements. Linking one of these is a platform capability request,
// not a path to a linkable on disk.
var specialByLink = map[string]string{
	"pthread": "Threading",
	"dl":      "DynamicLinking",
	"m":       "Math",
}

// Library is a fully resolved library ready to be rendered to a .lml
// file.
type Library struct {
	Name string
	// Paths are resolved linkables for the library.
	Paths    []string
	Includes []string
	Defines  []string
	Uses     []string
	// SpecialUses are platform capability requirements (Threading,
	// DynamicLinking, Math).
	SpecialUses []string
	// Infos and Warnings are diagnostics collected during resolution,
	// surfaced to the user by the CLI.
	Infos    []string
	Warnings []string
}

// Package is a fully resolved package ready to be rendered to an
// export tree.
type Package struct {
	Name      string
	Namespace string
	Requires  []string
	Libraries []Library
}

// linkablePatterns yields the file name globs tried when resolving a
// link name to a file on disk.
func linkablePatterns(link string) []string {
	return []string{
		"lib" + link + ".a",
		"lib" + link + ".lib",
		"lib" + link + ".so",
		link + ".dll",
	}
}

// FindLinkable searches libDirs for a linkable file matching the given
// link name. Returns "" when nothing matches.
func FindLinkable(link string, libDirs []string) string {
	for _, dir := range libDirs {
		for _, pattern := range linkablePatterns(link) {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err == nil && len(matches) > 0 {
				return matches[0]
			}
		}
	}
	return ""
}

// Resolve turns an export manifest into a renderable Package. Relative
// paths in the manifest resolve against projectRoot. Link names map to
// special requirements where recognized, and to discovered linkables
// otherwise; unresolvable links become warnings on the library.
func Resolve(cfg *Config, projectRoot string) (*Package, error) {
	if len(cfg.Libraries) == 0 {
		return nil, fmt.Errorf("package %q declares no libraries", cfg.Package.Name)
	}

	libDirs := make([]string, len(cfg.LibraryDirs))
	for i, dir := range cfg.LibraryDirs {
		libDirs[i] = resolveAgainst(projectRoot, dir)
	}

	pkg := &Package{
		Name:      cfg.Package.Name,
		Namespace: cfg.Package.Namespace,
		Requires:  cfg.Package.Requires,
	}
	for _, cl := range cfg.Libraries {
		lib := Library{
			Name:    cl.Name,
			Defines: cl.Defines,
			Uses:    cl.Uses,
		}
		if cl.Path != "" {
			lib.Paths = append(lib.Paths, resolveAgainst(projectRoot, cl.Path))
		}
		for _, inc := range cl.Includes {
			lib.Includes = append(lib.Includes, resolveAgainst(projectRoot, inc))
		}
		for _, link := range cl.Links {
			if special, ok := specialByLink[link]; ok {
				lib.Infos = append(lib.Infos,
					fmt.Sprintf("link to %q interpreted as special requirement %q", link, special))
				lib.SpecialUses = append(lib.SpecialUses, special)
				continue
			}
			found := FindLinkable(link, libDirs)
			if found == "" {
				lib.Warnings = append(lib.Warnings,
					fmt.Sprintf("unresolved link name %q", link))
				continue
			}
			lib.Paths = append(lib.Paths, found)
		}
		pkg.Libraries = append(pkg.Libraries, lib)
	}
	return pkg, nil
}

func resolveAgainst(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
