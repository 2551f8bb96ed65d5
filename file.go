package edn

import (
	"os"
	"path/filepath"
)

// ParseFile reads path, requires a ".edn" extension, and delegates to
// Parse. A bad extension or unreadable file fails with
// InvalidExtensionError or FileError before the core ever runs; once it
// runs, errors are whatever Parse itself returns.
func ParseFile(path string) ([]Value, error) {
	if ext := filepath.Ext(path); ext != ".edn" {
		return nil, &InvalidExtensionError{Ext: ext}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return Parse(data)
}
