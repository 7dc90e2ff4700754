package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirEnv overrides the default data directory location
const DataDirEnv = "AICHAT_DATA_DIR"

// DataPaths holds the resolved locations of the app's local state
type DataPaths struct {
	DataDir    string // base directory, usually ~/.aichat
	DBPath     string // SQLite database file
	ConfigPath string // YAML config file
}

// ResolveDataPaths resolves the data directory.
// Priority: explicit override flag, then AICHAT_DATA_DIR, then ~/.aichat.
func ResolveDataPaths(override string) (DataPaths, error) {
	dir := override
	if dir == "" {
		dir = os.Getenv(DataDirEnv)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DataPaths{}, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".aichat")
	}

	return DataPaths{
		DataDir:    dir,
		DBPath:     filepath.Join(dir, "chat.db"),
		ConfigPath: filepath.Join(dir, "config.yaml"),
	}, nil
}

// EnsureDataDir creates the data directory if it does not exist
func (dp DataPaths) EnsureDataDir() error {
	return os.MkdirAll(dp.DataDir, 0755)
}

// DBExists checks whether the database file exists
func (dp DataPaths) DBExists() bool {
	_, err := os.Stat(dp.DBPath)
	return err == nil
}

// ConfigExists checks whether the config file exists
func (dp DataPaths) ConfigExists() bool {
	_, err := os.Stat(dp.ConfigPath)
	return err == nil
}
