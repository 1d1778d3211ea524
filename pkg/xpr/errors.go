package xpr

import (
	"errors"
	"fmt"
)

// NoMatchError reports that no case condition held and no default was
// available. A case set declared exhaustive turned out not to be, which is
// a caller contract violation rather than a recoverable state.
type NoMatchError struct {
	Subject any
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no matching case found for value: %v", e.Subject)
}

// ErrConflictingDefaults is returned when a switch is configured with both
// a default value and a default factory. Detected before any case is
// scanned.
var ErrConflictingDefaults = errors.New("both default value and default factory supplied")

// ErrDefaultOnExhaustive is returned when an exhaustive switch carries a
// configured default, which the exhaustive form could never use.
var ErrDefaultOnExhaustive = errors.New("default configured on exhaustive switch")

// Belongs reports whether err structurally matches any of the given error
// classes. Matching follows errors.Is, so wrapped errors and classes with a
// custom Is method participate. An empty class set never matches.
func Belongs(err error, classes ...error) bool {
	for _, class := range classes {
		if errors.Is(err, class) {
			return true
		}
	}
	return false
}
