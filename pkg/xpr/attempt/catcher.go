package attempt

import (
	"errors"

	"github.com/ib-77/xpr/pkg/xpr"
)

type recovery[T any] struct {
	class   error
	handler func(error) (T, error)
}

// Catcher executes a thunk under a scoped interception set. Intercepted
// errors resolve through recovery pairs scanned in registration order, then
// through the fallback value; anything else propagates. The chain is
// assembled fully before any execution occurs.
type Catcher[T any] struct {
	run         Thunk[T]
	classes     []error
	recoveries  []recovery[T]
	fallback    T
	hasFallback bool
	cleanup     func() error
	hooks       xpr.Hooks
}

// Catch builds a Catcher for run intercepting the given error classes.
// Equivalent to Start(run).Catch(classes...).
func Catch[T any](run Thunk[T], classes ...error) *Catcher[T] {
	return &Catcher[T]{run: run, classes: classes}
}

// Fallback registers the value returned when an intercepted error has no
// matching recovery pair. Only one fallback is active; a later call
// overwrites the earlier value.
func (c *Catcher[T]) Fallback(v T) *Catcher[T] {
	c.fallback = v
	c.hasFallback = true
	return c
}

// Recover appends a recovery pair. Pairs are scanned in registration order
// and the first class structurally matching the raised error wins, even
// when a later pair is a narrower match. The handler receives the error and
// returns the value for that branch.
func (c *Catcher[T]) Recover(class error, handler func(error) T) *Catcher[T] {
	return c.RecoverTry(class, func(err error) (T, error) {
		return handler(err), nil
	})
}

// RecoverTry is Recover for handlers that may themselves fail; a handler
// error becomes the pending error of the evaluation.
func (c *Catcher[T]) RecoverTry(class error, handler func(error) (T, error)) *Catcher[T] {
	c.recoveries = append(c.recoveries, recovery[T]{class: class, handler: handler})
	return c
}

// Cleanup registers fn to run exactly once per Unwrap, after the outcome is
// known and before control returns. A non-nil error from fn masks the
// pending outcome, whatever it was. The thunk runs under a defer, so it
// also fires when the main thunk panics.
func (c *Catcher[T]) Cleanup(fn func() error) *Catcher[T] {
	c.cleanup = fn
	return c
}

// Observe registers observation hooks fired during evaluation. Repeated
// calls accumulate; earlier hooks fire first.
func (c *Catcher[T]) Observe(h xpr.Hooks) *Catcher[T] {
	c.hooks = c.hooks.Merge(h)
	return c
}

// Classes returns the registered interception classes.
func (c *Catcher[T]) Classes() []error {
	return c.classes
}

// RecoveryClasses returns the recovery pair classes in registration order.
func (c *Catcher[T]) RecoveryClasses() []error {
	classes := make([]error, 0, len(c.recoveries))
	for _, rec := range c.recoveries {
		classes = append(classes, rec.class)
	}
	return classes
}

func (c *Catcher[T]) HasFallback() bool {
	return c.hasFallback
}

func (c *Catcher[T]) HasCleanup() bool {
	return c.cleanup != nil
}

// Unwrap executes the chain once and returns its value or pending error.
func (c *Catcher[T]) Unwrap() (T, error) {
	o := c.Eval()
	if o.HasValue() {
		return o.Value(), nil
	}
	var zero T
	return zero, o.Err()
}

// Eval executes the chain once:
//
//  1. run the main thunk;
//  2. on success, remember the value;
//  3. on an intercepted error, scan recovery pairs in order, first match
//     wins; else use the fallback if present; else the error stays pending;
//  4. on a non-intercepted error, skip recovery and fallback entirely;
//  5. run the cleanup thunk exactly once;
//  6. report the remembered value or the pending error.
func (c *Catcher[T]) Eval() (final xpr.Outcome[T]) {
	if c.cleanup != nil {
		defer func() {
			if c.hooks.OnCleanup != nil {
				c.hooks.OnCleanup()
			}
			if cerr := c.cleanup(); cerr != nil {
				final = xpr.Rejected[T](cerr)
			}
		}()
	}

	v, err := c.run()
	if err == nil {
		if c.hooks.OnResolve != nil {
			c.hooks.OnResolve()
		}
		return xpr.Resolved(v)
	}

	if !xpr.Belongs(err, c.classes...) {
		return xpr.Rejected[T](err)
	}
	if c.hooks.OnIntercept != nil {
		c.hooks.OnIntercept(err)
	}

	for _, rec := range c.recoveries {
		if !errors.Is(err, rec.class) {
			continue
		}
		rv, rerr := rec.handler(err)
		if rerr != nil {
			return xpr.Rejected[T](rerr)
		}
		if c.hooks.OnRecover != nil {
			c.hooks.OnRecover(err)
		}
		return xpr.RecoveredFrom(rv, err)
	}

	if c.hasFallback {
		if c.hooks.OnFallback != nil {
			c.hooks.OnFallback(err)
		}
		return xpr.RecoveredFrom(c.fallback, err)
	}

	return xpr.Rejected[T](err)
}
