// Package attempt provides deferred computations and scoped error
// interception as single expressions.
//
// A Computation[T] wraps a thunk without running it; a Catcher[T] executes
// the same thunk under a named set of error classes and resolves
// intercepted errors through ordered recovery pairs or a fallback value.
//
// Key operations:
// - Start/FromValue/Fail: wrap a thunk, a value or a fixed error
// - Map/MapTry: compose transformations without executing anything
// - Catch: bind the thunk to an interception class set
// - Fallback/Recover/Cleanup: assemble the recovery strategy
// - Unwrap/Eval: execute once and return the value, error or Outcome
// - Finally: collapse an evaluation to a plain value via handlers
//
// Nothing runs until Unwrap or Eval; building a chain only captures thunks.
package attempt
