// Package apply provides eager function-application helpers for writing
// side effects as single expressions.
//
// Key operations:
// - To: build an Applier around a one-argument function
// - Call/ForEach: invoke a factory and apply the function to its result(s)
// - Unpack2/Unpack3/Spread: unpack tuple-shaped results as arguments
// - Tap: return a value after inline side effects
//
// Unlike the attempt and match packages there is no deferral here: Call and
// ForEach run their factory immediately and hand back a replay thunk of the
// memoized result.
package apply
