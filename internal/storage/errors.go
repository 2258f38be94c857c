package storage

import (
	"errors"
	"fmt"
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageCorrupt     = errors.New("storage corrupt")
	ErrStorageWriteFailed = errors.New("storage write failed")
)

// Error records the operation and location behind a storage failure. Kind
// is one of the package sentinels and is what errors.Is matches.
type Error struct {
	Op       string
	Location string
	Kind     error
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Location, e.Kind)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Location, e.Kind, e.Err)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func unavailable(location string, err error) error {
	return &Error{Op: "load", Location: location, Kind: ErrStorageUnavailable, Err: err}
}

func corrupt(location string, err error) error {
	return &Error{Op: "load", Location: location, Kind: ErrStorageCorrupt, Err: err}
}

func writeFailed(location string, err error) error {
	return &Error{Op: "save", Location: location, Kind: ErrStorageWriteFailed, Err: err}
}
