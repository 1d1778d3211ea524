package xpr

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the terminal state of a single evaluation: resolved with a
// value, rejected with an error, or recovered to a value after an
// intercepted error. The zero Outcome is empty.
type Outcome[T any] struct {
	id          uuid.UUID
	createdAt   time.Time
	value       T
	err         error
	cause       error
	isResolved  bool
	isRecovered bool
	hasValue    bool
}

func Resolved[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:      v,
		err:        nil,
		isResolved: true,
		createdAt:  time.Now().UTC(),
		hasValue:   true,
		id:         uuid.New(),
	}
}

func Rejected[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// RecoveredFrom marks a value produced by a recovery pair or fallback,
// keeping the intercepted error as the cause.
func RecoveredFrom[T any](v T, cause error) Outcome[T] {
	return Outcome[T]{
		value:       v,
		cause:       cause,
		isResolved:  true,
		isRecovered: true,
		createdAt:   time.Now().UTC(),
		hasValue:    true,
		id:          uuid.New(),
	}
}

// RejectedAs converts a rejected Outcome to a different value type,
// preserving identity, cause and timestamps.
func RejectedAs[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		err:       from.err,
		cause:     from.cause,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

// Cause returns the intercepted error a recovered value originated from.
func (o Outcome[T]) Cause() error {
	return o.cause
}

func (o Outcome[T]) IsResolved() bool {
	return o.isResolved
}

func (o Outcome[T]) IsRejected() bool {
	return !o.isResolved && o.err != nil
}

func (o Outcome[T]) IsRecovered() bool {
	return o.isRecovered
}

func (o Outcome[T]) HasValue() bool {
	return o.hasValue
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) IsEmpty() bool {
	return o.err == nil && !o.isResolved
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
