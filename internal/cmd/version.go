package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dedene/termtable/internal/output"
)

// Set through -ldflags at release time.
var (
	version = "0.1.0"
	commit  = ""
	date    = ""
)

// VersionString returns the version followed by the build details that are
// known, e.g. "1.2.0 (abc123 2026-01-02)".
func VersionString() string {
	v := strings.TrimSpace(version)
	if v == "" {
		v = "dev"
	}

	var build []string
	for _, s := range []string{commit, date} {
		if s = strings.TrimSpace(s); s != "" {
			build = append(build, s)
		}
	}
	if len(build) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(build, " "))
}

// VersionCmd prints version info.
type VersionCmd struct{}

type versionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
}

func (c *VersionCmd) Run(ctx context.Context) error {
	if output.GetMode(ctx) == output.ModeJSON {
		return output.WriteJSON(stdout, versionInfo{
			Name:    "termtable",
			Version: strings.TrimSpace(version),
			Commit:  strings.TrimSpace(commit),
			Date:    strings.TrimSpace(date),
		})
	}

	fmt.Fprintln(stdout, "termtable", VersionString())
	return nil
}
