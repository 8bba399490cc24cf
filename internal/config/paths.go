// Package config provides configuration management for termtable.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName is the application name used for config directories.
const AppName = "termtable"

// EnvConfig names an alternative config file, overriding the XDG location.
const EnvConfig = "TERMTABLE_CONFIG"

// Dir returns the XDG config directory for termtable.
// Falls back to ~/.config/termtable/ if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppName), nil
}

// ConfigPath returns the path to the main config file: $TERMTABLE_CONFIG
// when set, otherwise config.json5 under Dir.
func ConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return ExpandPath(p)
	}

	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.json5")
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
