package match

import (
	"github.com/ib-77/xpr/pkg/xpr"
)

// Thunk produces a case result. It runs only when its case is selected.
type Thunk[T any] func() T

// Case pairs an eagerly evaluated condition with a deferred result thunk.
type Case[T any] struct {
	condition bool
	produce   Thunk[T]
}

// When builds a Case. The condition is a plain boolean the caller has
// already evaluated; only the result thunk is deferred.
func When[T any](condition bool, produce Thunk[T]) Case[T] {
	return Case[T]{condition: condition, produce: produce}
}

// Condition returns the pre-evaluated condition of the case.
func (c Case[T]) Condition() bool {
	return c.condition
}

// Switch selects the first case whose condition holds. The zero Switch is
// usable; On attaches a subject for legibility and diagnostics.
type Switch[T any] struct {
	subject    any
	def        T
	hasDefault bool
	factory    Thunk[T]
	hooks      xpr.Hooks
}

// On starts a switch over subject.
func On[T any](subject any) Switch[T] {
	return Switch[T]{subject: subject}
}

// Default configures the value returned by Eval when no condition holds.
func (s Switch[T]) Default(v T) Switch[T] {
	s.def = v
	s.hasDefault = true
	return s
}

// DefaultFactory configures a thunk invoked by Eval when no condition
// holds.
func (s Switch[T]) DefaultFactory(f Thunk[T]) Switch[T] {
	s.factory = f
	return s
}

// Observe registers observation hooks fired during evaluation. Repeated
// calls accumulate; earlier hooks fire first.
func (s Switch[T]) Observe(h xpr.Hooks) Switch[T] {
	s.hooks = s.hooks.Merge(h)
	return s
}

// Subject returns the carried subject value.
func (s Switch[T]) Subject() any {
	return s.subject
}

func (s Switch[T]) HasDefault() bool {
	return s.hasDefault
}

func (s Switch[T]) HasDefaultFactory() bool {
	return s.factory != nil
}

// Eval scans cases in the order given and returns the result of the first
// case whose condition holds, invoking only that case's thunk. With no true
// condition the default factory applies, then the default value; with
// neither the evaluation fails with a NoMatchError. Configuring both
// defaults is a conflict reported before any case is scanned.
func (s Switch[T]) Eval(cases ...Case[T]) (T, error) {
	var zero T
	if s.hasDefault && s.factory != nil {
		return zero, xpr.ErrConflictingDefaults
	}

	if v, ok := s.scan(cases); ok {
		return v, nil
	}

	if s.factory != nil {
		return s.factory(), nil
	}
	if s.hasDefault {
		return s.def, nil
	}
	return zero, s.noMatch()
}

// Exhaustive scans like Eval but asserts that some condition must hold: a
// miss is a contract violation reported as a NoMatchError, never defaulted.
// A configured default is rejected up front since this form could never
// apply it.
func (s Switch[T]) Exhaustive(cases ...Case[T]) (T, error) {
	var zero T
	if s.hasDefault || s.factory != nil {
		return zero, xpr.ErrDefaultOnExhaustive
	}

	if v, ok := s.scan(cases); ok {
		return v, nil
	}
	return zero, s.noMatch()
}

func (s Switch[T]) scan(cases []Case[T]) (T, bool) {
	for _, c := range cases {
		if c.condition {
			if s.hooks.OnResolve != nil {
				s.hooks.OnResolve()
			}
			return c.produce(), true
		}
	}
	var zero T
	return zero, false
}

func (s Switch[T]) noMatch() error {
	if s.hooks.OnNoMatch != nil {
		s.hooks.OnNoMatch(s.subject)
	}
	return &xpr.NoMatchError{Subject: s.subject}
}
