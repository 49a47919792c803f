package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// fileDriver keeps one JSON file per key under a root directory.
// It is the default driver: local, inspectable, zero dependencies.
type fileDriver struct {
	root string // absolute root directory
}

// NewFile builds a file driver rooted at the given directory, creating
// it when absent. Relative roots resolve against the working directory.
func NewFile(root string) (Driver, error) {
	return newFileDriver(root)
}

func newFileDriver(root string) (*fileDriver, error) {
	if !filepath.IsAbs(root) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("store/file: getwd: %w", err)
		}
		root = filepath.Join(cwd, root)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("store/file: mkdir %s: %w", root, err)
	}
	return &fileDriver{root: root}, nil
}

func (d *fileDriver) path(key string) string {
	return filepath.Join(d.root, key+".json")
}

func (d *fileDriver) Get(key string) ([]byte, error) {
	raw, err := os.ReadFile(d.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("store/file: read %s: %w", key, err)
	}
	return raw, nil
}

func (d *fileDriver) Put(key string, value []byte) error {
	// Write to a temp file then rename, so a crash mid-write leaves the
	// previous value intact rather than a truncated file.
	tmp := d.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("store/file: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, d.path(key)); err != nil {
		return fmt.Errorf("store/file: rename %s: %w", key, err)
	}
	return nil
}

func (d *fileDriver) Delete(key string) error {
	err := os.Remove(d.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store/file: delete %s: %w", key, err)
	}
	return nil
}
