package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidTask      = errors.New("invalid task")
	ErrIndexOutOfRange  = fmt.Errorf("%w: index out of range", ErrInvalidTask)
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrCorruptRecord    = errors.New("corrupt task record")
	ErrConfigExists     = errors.New("config file already exists")
	ErrUnknownStore     = errors.New("unknown store type")
	ErrStoreNotEmpty    = errors.New("destination store is not empty")
)

// IsUserError reports whether err is a command failure caused by user input.
// Such failures are shown to the user and the session continues.
// ErrCorruptRecord is not one: it only arises when loading stored records.
func IsUserError(err error) bool {
	return errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidTask) ||
		errors.Is(err, ErrInvalidTimestamp)
}
