package color

import (
	"errors"
	"fmt"
)

// ErrInvalidColorFormat is matched by every color format failure.
var ErrInvalidColorFormat = errors.New("invalid color format")

// InvalidColorFormatError reports a token that is neither a known name nor #RRGGBB.
type InvalidColorFormatError struct {
	Input string
}

func (e *InvalidColorFormatError) Error() string {
	return fmt.Sprintf("invalid color format: %s (expected #RRGGBB or a named color)", describe(e.Input))
}

// Is makes errors.Is(err, ErrInvalidColorFormat) hold for every instance.
func (e *InvalidColorFormatError) Is(target error) bool {
	return target == ErrInvalidColorFormat
}
