package export

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/libman-dev/libman/internal/manifest"
	"github.com/libman-dev/libman/internal/util"
)

// withIndexLock serializes index read-modify-write cycles across
// processes. Uses gofrs/flock for cross-platform compatibility.
func withIndexLock(indexPath string, fn func() error) error {
	fileLock := flock.New(indexPath + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("acquiring index lock: %w", err)
	}
	defer func() { _ = fileLock.Unlock() }()
	return fn()
}

// loadIndexEntries reads the current entries of the index file, or
// none when the file does not exist yet.
func loadIndexEntries(indexPath string) ([]manifest.IndexEntry, error) {
	idx, err := manifest.LoadIndex(indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return idx.Entries, nil
}

// RenderIndex renders an index document. Entry paths inside the index
// are written relative to the index's own directory where possible, so
// the tree stays relocatable.
func RenderIndex(entries []manifest.IndexEntry, indexDir string) string {
	lines := []string{
		"# libman index generated by lm. DO NOT EDIT.",
		"Type: Index",
	}
	for _, e := range entries {
		path := e.Path
		if rel, err := filepath.Rel(indexDir, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
		lines = append(lines, fmt.Sprintf("Package: %s; %s", e.Name, path))
	}
	return strings.Join(lines, "\n") + "\n"
}

// AddToIndex registers a package in the index file, creating the index
// if it does not exist. Adding a name the index already lists is an
// error.
func AddToIndex(indexPath, name, lmpPath string) error {
	abs, err := filepath.Abs(lmpPath)
	if err != nil {
		return fmt.Errorf("resolving package path: %w", err)
	}
	return withIndexLock(indexPath, func() error {
		entries, err := loadIndexEntries(indexPath)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.Name == name {
				return fmt.Errorf("package %q is already in the index", name)
			}
		}
		entries = append(entries, manifest.IndexEntry{Name: name, Path: abs})
		return writeIndex(indexPath, entries)
	})
}

// ReplaceInIndex registers a package in the index file, replacing any
// existing entry with the same name. Used by export runs that
// re-publish a package.
func ReplaceInIndex(indexPath, name, lmpPath string) error {
	abs, err := filepath.Abs(lmpPath)
	if err != nil {
		return fmt.Errorf("resolving package path: %w", err)
	}
	return withIndexLock(indexPath, func() error {
		entries, err := loadIndexEntries(indexPath)
		if err != nil {
			return err
		}
		replaced := false
		for i, e := range entries {
			if e.Name == name {
				entries[i].Path = abs
				replaced = true
			}
		}
		if !replaced {
			entries = append(entries, manifest.IndexEntry{Name: name, Path: abs})
		}
		return writeIndex(indexPath, entries)
	})
}

// RemoveFromIndex removes a package from the index file. Removing a
// name the index does not list is an error.
func RemoveFromIndex(indexPath, name string) error {
	return withIndexLock(indexPath, func() error {
		entries, err := loadIndexEntries(indexPath)
		if err != nil {
			return err
		}
		kept := entries[:0]
		found := false
		for _, e := range entries {
			if e.Name == name {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		if !found {
			return fmt.Errorf("package %q is not in the index", name)
		}
		return writeIndex(indexPath, kept)
	})
}

func writeIndex(indexPath string, entries []manifest.IndexEntry) error {
	content := RenderIndex(entries, filepath.Dir(indexPath))
	if err := util.AtomicWriteFile(indexPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}
