package output

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/dedene/termtable/internal/color"
)

// ColorModes lists the accepted values of the color setting.
var ColorModes = []string{"auto", "always", "never"}

// ValidateColorMode reports whether mode is a known color setting.
func ValidateColorMode(mode string) error {
	for _, m := range ColorModes {
		if mode == m {
			return nil
		}
	}
	return fmt.Errorf("invalid color mode %q (use auto, always or never)", mode)
}

// Colors provides terminal color support.
type Colors struct {
	output  *termenv.Output
	enabled bool
}

// NewColors creates a Colors instance based on the mode setting.
// mode: "auto" (detect), "always" (force), "never" (disable)
func NewColors(mode string) *Colors {
	enabled := IsColorEnabled(mode)

	var profile termenv.Profile
	if enabled {
		profile = termenv.NewOutput(os.Stdout).Profile
	} else {
		profile = termenv.Ascii
	}

	output := termenv.NewOutput(os.Stdout, termenv.WithProfile(profile))

	return &Colors{
		output:  output,
		enabled: enabled,
	}
}

// IsColorEnabled determines if color output should be enabled.
func IsColorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check if stdout is a terminal
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return false
		}
		// Check NO_COLOR env var
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		// Check TERM=dumb
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return true
	}
}

// Enabled returns whether colors are enabled.
func (c *Colors) Enabled() bool {
	return c.enabled
}

// Success returns the string styled as a success message (green).
func (c *Colors) Success(s string) string {
	if !c.enabled {
		return s
	}
	return c.output.String(s).Foreground(c.output.Color("2")).String()
}

// Dim returns the string in a dimmed style.
func (c *Colors) Dim(s string) string {
	if !c.enabled {
		return s
	}
	return c.output.String(s).Faint().String()
}

// Paint wraps s in the escape sequences of the given color tokens. Invalid
// tokens leave s unstyled.
func (c *Colors) Paint(s string, tokens ...string) string {
	if !c.enabled || len(tokens) == 0 {
		return s
	}
	out, err := color.Apply(s, &color.Style{Color: tokens})
	if err != nil {
		return s
	}
	return out
}

// Swatch returns a block of spaces filled with the background of token.
func (c *Colors) Swatch(token string, width int) string {
	block := fmt.Sprintf("%*s", width, "")
	if !c.enabled {
		return block
	}
	out, err := color.Apply(block, &color.Style{Background: []string{token}})
	if err != nil {
		return block
	}
	return out
}
