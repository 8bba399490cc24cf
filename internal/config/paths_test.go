package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDir(t *testing.T) {
	// Test with XDG_CONFIG_HOME set
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	expected := filepath.Join(tmpDir, AppName)
	if dir != expected {
		t.Errorf("Dir() = %q, want %q", dir, expected)
	}
}

func TestDirFallback(t *testing.T) {
	// Test fallback when XDG_CONFIG_HOME is not set
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", AppName)
	if dir != expected {
		t.Errorf("Dir() = %q, want %q", dir, expected)
	}
}

func TestConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	path := ConfigPath()
	if !strings.HasSuffix(path, "config.json5") {
		t.Errorf("ConfigPath() = %q, want suffix config.json5", path)
	}
}

func TestConfigPath_Override(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	custom := filepath.Join(t.TempDir(), "tables.json5")
	t.Setenv(EnvConfig, custom)
	if got := ConfigPath(); got != custom {
		t.Errorf("ConfigPath() = %q, want %q", got, custom)
	}

	home, _ := os.UserHomeDir()
	t.Setenv(EnvConfig, "~/tables.json5")
	if got, want := ConfigPath(), filepath.Join(home, "tables.json5"); got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/foo", filepath.Join(home, "foo")},
		{"~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~notuser", "~notuser"}, // Not a tilde expansion
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ExpandPath(tt.input)
			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
