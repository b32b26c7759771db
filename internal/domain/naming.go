package domain

import "path/filepath"

// Directory and file names for ace.
const (
	AppDirName     = "ace"         // Directory name under XDG config/data homes
	ConfigFileName = "config.toml" // Config file name
	LogFileName    = "ace.log"     // Log file name
)

// ConfigDir returns the ace config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func ConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ConfigPath returns the default config file path.
func ConfigPath(configHome string) string {
	return filepath.Join(ConfigDir(configHome), ConfigFileName)
}

// DataDir returns the ace data directory.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// LogPath returns the path to the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}
