// Package match provides a first-match conditional selection expression.
//
// A Case pairs an eagerly evaluated boolean condition with a deferred
// result thunk; a Switch scans cases in the order given and runs only the
// first thunk whose condition holds. Laziness of the non-selected thunks is
// the point: branches with side effects are safe to write inline.
//
// Key operations:
// - When: pair a condition with a result thunk
// - On: start a switch over a subject value
// - Default/DefaultFactory: configure the no-match result for Eval
// - Eval: select with defaults allowed
// - Exhaustive: select asserting that some condition must hold
//
// The subject drives nothing; matching is entirely the case conditions. It
// is carried for call-site legibility and appears in the no-match error.
package match
