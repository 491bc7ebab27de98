package apperr

import (
	"errors"
	"fmt"
)

// Error kinds the services report for expected business conditions.
// Handlers map them to HTTP statuses; everything else is treated as an
// infrastructure failure.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// NotFound tags ErrNotFound with the entity that was missing, so logs
// can tell an absent order from an absent menu while callers only need
// errors.Is(err, ErrNotFound).
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

func InvalidArgument(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidArgument)
}

func Conflict(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrConflict)
}
