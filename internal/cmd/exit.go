package cmd

import (
	"errors"

	"github.com/dedene/termtable/internal/color"
	"github.com/dedene/termtable/internal/config"
	"github.com/dedene/termtable/internal/input"
)

// Exit codes follow standard conventions:
// 0 - Success
// 1 - General error
// 2 - Usage/parse error
// 3 - Input error
// 4 - Color format error
// 5 - Configuration error
const (
	exitGeneral = 1
	exitUsage   = 2
	exitInput   = 3
	exitColor   = 4
	exitConfig  = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	// Check for ExitError first
	var ee *ExitError
	if errors.As(err, &ee) && ee != nil {
		if ee.Code < 0 {
			return exitGeneral
		}
		return ee.Code
	}

	// Input errors -> 3
	var parseErr *input.ParseError
	if errors.As(err, &parseErr) || errors.Is(err, input.ErrUnknownFormat) {
		return exitInput
	}

	// Color format errors -> 4
	if errors.Is(err, color.ErrInvalidColorFormat) {
		return exitColor
	}

	// Config errors -> 5
	if errors.Is(err, config.ErrInvalid) || errors.Is(err, config.ErrUnknownKey) {
		return exitConfig
	}

	return exitGeneral
}
