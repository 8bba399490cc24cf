package config

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/titanous/json5"
)

// ErrInvalid marks a config file that cannot be parsed or a value that
// cannot be stored.
var ErrInvalid = errors.New("invalid configuration")

// File represents the main configuration file structure. Every field is a
// default that command-line flags override.
type File struct {
	Preset      string   `json:"preset,omitempty"`
	Color       string   `json:"color,omitempty"`
	Compact     bool     `json:"compact,omitempty"`
	Padding     int      `json:"padding,omitempty"`
	Border      *bool    `json:"border,omitempty"`
	HeadColor   []string `json:"head_color,omitempty"`
	BorderColor []string `json:"border_color,omitempty"`
	WideChars   bool     `json:"wide_chars,omitempty"`
}

// ReadConfig reads and parses the config file.
// Returns an empty config if the file doesn't exist.
func ReadConfig() (*File, error) {
	path := ConfigPath()
	if path == "" {
		return nil, fmt.Errorf("could not determine config path")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg File
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalid, path, err)
	}

	return &cfg, nil
}

// WriteConfig writes the config to disk atomically.
func WriteConfig(cfg *File) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("could not determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return atomicWrite(path, data, 0600)
}

// ConfigExists returns true if the config file exists.
func ConfigExists() bool {
	path := ConfigPath()
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// atomicWrite writes data to a temp file then renames it to path.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Generate random suffix for temp file
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random bytes: %w", err)
	}
	tmpPath := filepath.Join(dir, ".tmp-"+hex.EncodeToString(randBytes))

	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up on failure
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
