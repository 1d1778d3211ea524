package apply

// Applier applies a function to values produced by factories.
type Applier[T any] struct {
	fn func(T)
}

// To builds an Applier around fn.
func To[T any](fn func(T)) Applier[T] {
	return Applier[T]{fn: fn}
}

// Call invokes factory once, applies the function to its result and returns
// a thunk replaying the memoized result without re-running the factory.
func (a Applier[T]) Call(factory func() T) func() T {
	v := factory()
	a.fn(v)
	return func() T { return v }
}

// ForEach invokes factory once and applies the function to each element in
// iteration order, returning a thunk replaying the slice.
func (a Applier[T]) ForEach(factory func() []T) func() []T {
	vs := factory()
	for _, v := range vs {
		a.fn(v)
	}
	return func() []T { return vs }
}

// Pair is a two-element positional tuple for unpacking appliers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a three-element positional tuple for unpacking appliers.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Unpack2 adapts a two-argument function into an Applier over Pair values.
func Unpack2[A, B any](fn func(A, B)) Applier[Pair[A, B]] {
	return To(func(p Pair[A, B]) { fn(p.First, p.Second) })
}

// Unpack3 adapts a three-argument function into an Applier over Triple
// values.
func Unpack3[A, B, C any](fn func(A, B, C)) Applier[Triple[A, B, C]] {
	return To(func(t Triple[A, B, C]) { fn(t.First, t.Second, t.Third) })
}

// Spread adapts a variadic function into an Applier over argument slices.
func Spread(fn func(args ...any)) Applier[[]any] {
	return To(func(args []any) { fn(args...) })
}

// Tap returns ret unchanged. The effect arguments exist so side effects can
// be written inline in a single expression; the caller evaluated them
// before Tap ran, in argument order.
func Tap[T any](ret T, _ ...any) T {
	return ret
}
