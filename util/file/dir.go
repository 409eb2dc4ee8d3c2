package file

import (
	"os"

	"github.com/cockroachdb/errors"
)

// EnsureDir creates directory <dir> with all it's parents if it does not exist yet.
//
// Returns true if directory was created.
func EnsureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, errors.Newf("Path exists and is not a directory: %v", dir)
		}
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, errors.Wrap(err, "Stat directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, errors.Wrap(err, "Create directory")
	}
	return true, nil
}

// Exists returns true if <path> exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
