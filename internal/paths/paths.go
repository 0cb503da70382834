package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "shade"
	configFileName = ".shaderc"
)

// AppDataDir returns the application data directory for the log and the
// history database. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
//
// SHADE_HOME overrides the location.
func AppDataDir() string {
	if dir := os.Getenv("SHADE_HOME"); dir != "" {
		_ = os.MkdirAll(dir, 0700)
		return dir
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path to the user config file (~/.shaderc).
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "shade.log")
}

// DBPath returns the path to the theme history database.
func DBPath() string {
	return filepath.Join(AppDataDir(), "shade.db")
}
