package attempt

import (
	"github.com/ib-77/xpr/pkg/xpr"
)

// Thunk is a zero-argument deferred computation that may fail. It runs only
// when the owning chain is unwrapped; a second unwrap runs it again, side
// effects included, since no memoization is promised.
type Thunk[T any] func() (T, error)

// Computation wraps a Thunk without invoking it.
type Computation[T any] struct {
	run Thunk[T]
}

// Start wraps run without executing it.
func Start[T any](run Thunk[T]) Computation[T] {
	return Computation[T]{run: run}
}

// FromValue wraps an already-resolved value.
func FromValue[T any](v T) Computation[T] {
	return Computation[T]{run: func() (T, error) { return v, nil }}
}

// Fail wraps a computation that always fails with err.
func Fail[T any](err error) Computation[T] {
	return Computation[T]{run: func() (T, error) {
		var zero T
		return zero, err
	}}
}

// Unwrap executes the thunk and returns its result; any error passes
// through unmodified since no interception class is registered here.
func (c Computation[T]) Unwrap() (T, error) {
	return c.run()
}

// Eval executes the thunk and reports the terminal state as an Outcome.
func (c Computation[T]) Eval() xpr.Outcome[T] {
	v, err := c.run()
	if err != nil {
		return xpr.Rejected[T](err)
	}
	return xpr.Resolved(v)
}

// Map transforms the eventual value without executing anything yet.
func (c Computation[T]) Map(fn func(T) T) Computation[T] {
	return Computation[T]{run: func() (T, error) {
		v, err := c.run()
		if err != nil {
			return v, err
		}
		return fn(v), nil
	}}
}

// Catch hands the thunk to a Catcher bound to the given interception
// classes. With no classes the catcher intercepts nothing and every thunk
// error propagates from its Unwrap.
func (c Computation[T]) Catch(classes ...error) *Catcher[T] {
	return Catch(c.run, classes...)
}

// Map transforms the eventual value to a new type.
func Map[T, U any](c Computation[T], fn func(T) U) Computation[U] {
	return Computation[U]{run: func() (U, error) {
		v, err := c.run()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v), nil
	}}
}

// MapTry composes a transformation that may itself fail.
func MapTry[T, U any](c Computation[T], fn func(T) (U, error)) Computation[U] {
	return Computation[U]{run: func() (U, error) {
		v, err := c.run()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	}}
}

// Finally executes the computation and collapses it to a plain value via
// the two handlers.
func Finally[T, U any](c Computation[T], onSuccess func(T) U, onError func(error) U) U {
	v, err := c.run()
	if err != nil {
		return onError(err)
	}
	return onSuccess(v)
}
