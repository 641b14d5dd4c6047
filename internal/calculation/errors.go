package calculation

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an input is outside the domain of a calculation.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
