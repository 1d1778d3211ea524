package xpr

// Hooks carries optional observation callbacks fired during evaluation.
// Every field may be nil. The library itself never logs; hooks are the only
// observation point, and the caller owns what happens inside them.
type Hooks struct {
	// OnResolve fires when an evaluation produces a value directly.
	OnResolve func()
	// OnIntercept fires when a thunk error belongs to the intercept set.
	OnIntercept func(err error)
	// OnRecover fires when a recovery pair resolves an intercepted error.
	OnRecover func(err error)
	// OnFallback fires when the fallback value resolves an intercepted error.
	OnFallback func(err error)
	// OnNoMatch fires when no case condition held and no default applied.
	OnNoMatch func(subject any)
	// OnCleanup fires as the cleanup thunk is invoked.
	OnCleanup func()
}

// Merge combines two hook sets. When both register the same callback, the
// receiver's fires first.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnResolve:   join(h.OnResolve, other.OnResolve),
		OnIntercept: joinErr(h.OnIntercept, other.OnIntercept),
		OnRecover:   joinErr(h.OnRecover, other.OnRecover),
		OnFallback:  joinErr(h.OnFallback, other.OnFallback),
		OnNoMatch:   joinAny(h.OnNoMatch, other.OnNoMatch),
		OnCleanup:   join(h.OnCleanup, other.OnCleanup),
	}
}

func join(a, b func()) func() {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func() { a(); b() }
}

func joinErr(a, b func(error)) func(error) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(err error) { a(err); b(err) }
}

func joinAny(a, b func(any)) func(any) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(v any) { a(v); b(v) }
}
