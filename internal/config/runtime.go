package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath is the runtime directory before any .env file is loaded, so
// it only consults the process environment.
func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("DAYBOOK_RUNTIME_PATH"))
}

func resolveRuntimePath(path string) string {
	if path == "" {
		path = ".daybook"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
