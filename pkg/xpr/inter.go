package xpr

import "time"

type ValueProvider[T any] interface {
	// Value returns the resolved value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can expose a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if evaluation failed
	Err() error
	// IsResolved returns true if the evaluation produced a value
	IsResolved() bool
}

// WithCause extends WithError for values produced through recovery
type WithCause[T any] interface {
	WithError[T]
	// IsRecovered returns true if the value came from a recovery pair or fallback
	IsRecovered() bool
	// Cause returns the intercepted error behind a recovered value
	Cause() error
}

// Unwrapper is the terminal operation of a deferred chain
type Unwrapper[T any] interface {
	// Unwrap executes the chain and returns its value or error
	Unwrap() (T, error)
}

// OutcomeProvider executes a chain and reports the full terminal state
type OutcomeProvider[T any] interface {
	Eval() Outcome[T]
}
