package core

import (
	"fmt"
	"os"
)

// RotateLogIfNeeded moves the log at path to path+".old" once it grows past
// maxBytes. A missing log is not an error.
func RotateLogIfNeeded(path string, maxBytes int64) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	if info.Size() <= maxBytes {
		return nil
	}

	oldPath := path + ".old"
	_ = os.Remove(oldPath)
	if err := os.Rename(path, oldPath); err != nil {
		return fmt.Errorf("rotate log %s: %w", path, err)
	}
	return nil
}
