// Package errfmt provides user-friendly error formatting with actionable suggestions.
package errfmt

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dedene/termtable/internal/color"
	"github.com/dedene/termtable/internal/config"
	"github.com/dedene/termtable/internal/input"
)

// FormatError formats an error for user-friendly display with actionable suggestions.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	// Get the base message
	msg := err.Error()
	sb.WriteString(msg)

	// Already carries its own suggestion
	var se *suggestedError
	if errors.As(err, &se) {
		return sb.String()
	}

	switch {
	case IsColorFormatError(err):
		sb.WriteString("\n\nSuggestion: Use #RRGGBB or a named color. Try 'termtable colors list'")

	case IsParseError(err):
		var pe *input.ParseError
		errors.As(err, &pe)
		sb.WriteString(fmt.Sprintf("\n\nSuggestion: Check the %s syntax, or pick another decoder with --format", pe.Format))

	case errors.Is(err, input.ErrUnknownFormat):
		sb.WriteString("\n\nSuggestion: Use --format json5, csv or tsv")

	case isPresetError(err):
		sb.WriteString("\n\nSuggestion: Unknown preset. Try 'termtable presets'")

	case isConfigError(err):
		sb.WriteString("\n\nSuggestion: Config error. Try 'termtable config show' or 'termtable config set'")

	case IsNotFoundError(err):
		sb.WriteString("\n\nSuggestion: File not found. Check the path, or pipe the table on stdin.")

	case isPermissionError(err):
		sb.WriteString("\n\nSuggestion: Permission denied. Check the file permissions.")
	}

	return sb.String()
}

// IsColorFormatError returns true if the error comes from a malformed color token.
func IsColorFormatError(err error) bool {
	return err != nil && errors.Is(err, color.ErrInvalidColorFormat)
}

// IsParseError returns true if an input document failed to decode.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var pe *input.ParseError
	return errors.As(err, &pe)
}

// IsNotFoundError returns true if the error indicates a missing file.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, fs.ErrNotExist)
}

// isPresetError checks if the error names an unknown border preset.
func isPresetError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unknown preset")
}

// isConfigError checks if the error is configuration-related.
func isConfigError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, config.ErrInvalid) || errors.Is(err, config.ErrUnknownKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "could not determine config path")
}

// isPermissionError checks if the error is permission-related.
func isPermissionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, fs.ErrPermission) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "permission denied")
}

// ErrorContext builds context from an error chain for debugging.
func ErrorContext(err error) []string {
	if err == nil {
		return nil
	}

	var contexts []string
	for err != nil {
		contexts = append(contexts, err.Error())
		err = errors.Unwrap(err)
	}
	return contexts
}

// WrapWithSuggestion wraps an error with a custom suggestion.
func WrapWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &suggestedError{err: err, suggestion: suggestion}
}

type suggestedError struct {
	err        error
	suggestion string
}

func (e *suggestedError) Error() string {
	return fmt.Sprintf("%v\n\nSuggestion: %s", e.err, e.suggestion)
}

func (e *suggestedError) Unwrap() error {
	return e.err
}
