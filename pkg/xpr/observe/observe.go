package observe

import (
	"sync/atomic"

	"github.com/ib-77/xpr/pkg/xpr"
)

// Counter keeps thread-safe tallies of evaluation events.
type Counter struct {
	resolved   atomic.Int64
	intercepts atomic.Int64
	recoveries atomic.Int64
	fallbacks  atomic.Int64
	noMatches  atomic.Int64
	cleanups   atomic.Int64
}

// Resolved returns the count of evaluations that produced a value directly.
func (c *Counter) Resolved() int64 { return c.resolved.Load() }

// Intercepted returns the count of errors caught by an intercept set.
func (c *Counter) Intercepted() int64 { return c.intercepts.Load() }

// Recovered returns the count of errors resolved by a recovery pair.
func (c *Counter) Recovered() int64 { return c.recoveries.Load() }

// Fallbacks returns the count of errors resolved by a fallback value.
func (c *Counter) Fallbacks() int64 { return c.fallbacks.Load() }

// NoMatches returns the count of switch evaluations with no true condition.
func (c *Counter) NoMatches() int64 { return c.noMatches.Load() }

// Cleanups returns the count of cleanup thunk invocations.
func (c *Counter) Cleanups() int64 { return c.cleanups.Load() }

// Hooks returns an xpr.Hooks wiring every evaluation event into the
// counter.
func (c *Counter) Hooks() xpr.Hooks {
	return xpr.Hooks{
		OnResolve:   func() { c.resolved.Add(1) },
		OnIntercept: func(error) { c.intercepts.Add(1) },
		OnRecover:   func(error) { c.recoveries.Add(1) },
		OnFallback:  func(error) { c.fallbacks.Add(1) },
		OnNoMatch:   func(any) { c.noMatches.Add(1) },
		OnCleanup:   func() { c.cleanups.Add(1) },
	}
}

// OnResolve builds a hook set firing callback for directly produced values.
func OnResolve(callback func()) xpr.Hooks {
	return xpr.Hooks{OnResolve: callback}
}

// OnIntercept builds a hook set firing callback for intercepted errors.
func OnIntercept(callback func(error)) xpr.Hooks {
	return xpr.Hooks{OnIntercept: callback}
}

// OnRecover builds a hook set firing callback for recovered errors.
func OnRecover(callback func(error)) xpr.Hooks {
	return xpr.Hooks{OnRecover: callback}
}

// OnFallback builds a hook set firing callback for fallback resolutions.
func OnFallback(callback func(error)) xpr.Hooks {
	return xpr.Hooks{OnFallback: callback}
}

// OnNoMatch builds a hook set firing callback when no case matched.
func OnNoMatch(callback func(any)) xpr.Hooks {
	return xpr.Hooks{OnNoMatch: callback}
}

// OnCleanup builds a hook set firing callback for cleanup invocations.
func OnCleanup(callback func()) xpr.Hooks {
	return xpr.Hooks{OnCleanup: callback}
}
