package store

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "simple-chess"

// DefaultDir returns the platform-specific directory for the saved-game
// database, creating it if needed.
// - macOS: ~/Library/Application Support/simple-chess/db
// - Linux: ~/.local/share/simple-chess/db
// - Windows: %APPDATA%/simple-chess/db
func DefaultDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Linux and other Unix-like: honour XDG_DATA_HOME when set.
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dbDir := filepath.Join(baseDir, appName, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	return dbDir, nil
}
