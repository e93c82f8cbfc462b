package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir and any missing parents. An existing directory is
// left as is.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
