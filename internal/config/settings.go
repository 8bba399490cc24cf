package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dedene/termtable/internal/color"
	"github.com/dedene/termtable/internal/table"
)

// EnvPreset is the environment variable for choosing the border preset.
const EnvPreset = "TERMTABLE_PRESET"

// DefaultPreset is used when neither flag, environment nor config names one.
const DefaultPreset = "default"

// ErrUnknownKey is returned for config keys termtable does not know.
var ErrUnknownKey = errors.New("unknown config key")

var setters = map[string]func(f *File, value string) error{
	"preset": func(f *File, v string) error {
		if _, ok := table.Preset(v); !ok {
			return fmt.Errorf("%w: unknown preset %q (available: %s)", ErrInvalid, v, strings.Join(table.PresetNames(), ", "))
		}
		f.Preset = v
		return nil
	},
	"color": func(f *File, v string) error {
		switch v {
		case "auto", "always", "never":
			f.Color = v
			return nil
		}
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, v)
	},
	"compact": func(f *File, v string) error {
		b, err := parseBool(v)
		f.Compact = b
		return err
	},
	"padding": func(f *File, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: padding must be a non-negative integer, got %q", ErrInvalid, v)
		}
		f.Padding = n
		return nil
	},
	"border": func(f *File, v string) error {
		b, err := parseBool(v)
		if err != nil {
			return err
		}
		f.Border = &b
		return nil
	},
	"head_color": func(f *File, v string) error {
		tokens, err := parseColors(v)
		f.HeadColor = tokens
		return err
	},
	"border_color": func(f *File, v string) error {
		tokens, err := parseColors(v)
		f.BorderColor = tokens
		return err
	},
	"wide_chars": func(f *File, v string) error {
		b, err := parseBool(v)
		f.WideChars = b
		return err
	},
}

// Keys returns the settable config keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeKey lowercases a key and accepts dashes for underscores.
func NormalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}

// Set validates value and stores it under key. The file is left unchanged
// on error.
func (f *File) Set(key, value string) error {
	set, ok := setters[NormalizeKey(key)]
	if !ok {
		return fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	next := *f
	if err := set(&next, strings.TrimSpace(value)); err != nil {
		return err
	}
	*f = next
	return nil
}

// Unset clears key back to its default.
func (f *File) Unset(key string) error {
	switch NormalizeKey(key) {
	case "preset":
		f.Preset = ""
	case "color":
		f.Color = ""
	case "compact":
		f.Compact = false
	case "padding":
		f.Padding = 0
	case "border":
		f.Border = nil
	case "head_color":
		f.HeadColor = nil
	case "border_color":
		f.BorderColor = nil
	case "wide_chars":
		f.WideChars = false
	default:
		return fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Get returns the display value of key, or "" when it is unset.
func (f *File) Get(key string) string {
	switch NormalizeKey(key) {
	case "preset":
		return f.Preset
	case "color":
		return f.Color
	case "compact":
		return formatBool(f.Compact)
	case "padding":
		if f.Padding == 0 {
			return ""
		}
		return strconv.Itoa(f.Padding)
	case "border":
		if f.Border == nil {
			return ""
		}
		return strconv.FormatBool(*f.Border)
	case "head_color":
		return strings.Join(f.HeadColor, ",")
	case "border_color":
		return strings.Join(f.BorderColor, ",")
	case "wide_chars":
		return formatBool(f.WideChars)
	}
	return ""
}

// ResolvePreset determines which border preset to use.
// Priority: flag > env > config > default.
func ResolvePreset(flagPreset string, cfg *File) (string, table.Chars, error) {
	name := flagPreset
	if name == "" {
		name = os.Getenv(EnvPreset)
	}
	if name == "" && cfg != nil {
		name = cfg.Preset
	}
	if name == "" {
		name = DefaultPreset
	}

	chars, ok := table.Preset(name)
	if !ok {
		return "", table.Chars{}, fmt.Errorf("%w: unknown preset %q (available: %s)", ErrInvalid, name, strings.Join(table.PresetNames(), ", "))
	}
	return name, chars, nil
}

// Apply fills options the document left unset from the config defaults.
func (f *File) Apply(opts *table.Options) {
	if f == nil {
		return
	}
	if opts.Style.Head == nil {
		opts.Style.Head = f.HeadColor
	}
	if opts.Style.Border == nil {
		opts.Style.Border = f.BorderColor
	}
	if opts.Style.Padding == 0 {
		opts.Style.Padding = f.Padding
	}
	if f.Border != nil && !*f.Border {
		opts.Style.NoBorder = true
	}
	opts.Style.Compact = opts.Style.Compact || f.Compact
	opts.WideChars = opts.WideChars || f.WideChars
}

func parseBool(v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: expected true or false, got %q", ErrInvalid, v)
	}
	return b, nil
}

func formatBool(b bool) string {
	if !b {
		return ""
	}
	return "true"
}

func parseColors(v string) ([]string, error) {
	var tokens []string
	for _, t := range strings.Split(v, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	if err := color.Validate(&color.Style{Color: tokens}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return tokens, nil
}
