package paths

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.chatshell, or $CHATSHELL_HOME when set.
func BaseDir() string {
	if dir := os.Getenv("CHATSHELL_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".chatshell")
}

// ConfigPath returns the config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// LogDir returns the log directory.
func LogDir() string {
	return filepath.Join(BaseDir(), "logs")
}

// LogPath returns the log file path.
func LogPath() string {
	return filepath.Join(LogDir(), "chatshell.log")
}

// EnsureDir creates the directory tree with proper permissions.
func EnsureDir() error {
	for _, d := range []string{BaseDir(), LogDir()} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
