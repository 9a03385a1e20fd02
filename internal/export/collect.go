package export

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindTrees walks root and returns every libman export root beneath
// it, in walk order. It does not descend into the export roots
// themselves.
func FindTrees(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && strings.HasSuffix(d.Name(), TreeSuffix) {
			found = append(found, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning for export roots: %w", err)
	}
	return found, nil
}

// Collect copies every export root under srcRoot into destDir. Two
// roots sharing a directory name is an error: the collected layout
// keys packages by root name, and a silent overwrite would drop one
// of them. Returns the destination paths of the copied roots.
func Collect(srcRoot, destDir string) ([]string, error) {
	trees, err := FindTrees(srcRoot)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("creating collect destination: %w", err)
	}

	seen := map[string]string{}
	var copied []string
	for _, tree := range trees {
		name := filepath.Base(tree)
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("more than one export root named %q (%s and %s)", name, prev, tree)
		}
		seen[name] = tree

		dest := filepath.Join(destDir, name)
		if err := copyTree(tree, dest); err != nil {
			return nil, fmt.Errorf("collecting %s: %w", tree, err)
		}
		copied = append(copied, dest)
	}
	return copied, nil
}

func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
