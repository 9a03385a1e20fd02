// atomic.go provides atomic file writes via temp-file-and-rename.
// Manifest files are read by other tools while we rewrite them, so a
// partially written file must never be visible at the final path.

package util

import (
	"fmt"
	"os"
)

// AtomicWriteFile writes data to path atomically. The data is written
// to path+".tmp" and renamed into place, so readers see either the old
// content or the new content, never a partial write.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
