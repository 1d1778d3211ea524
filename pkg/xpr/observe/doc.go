// Package observe provides opt-in counters and hook builders for watching
// catcher and switch evaluations.
//
// The combinator packages fire xpr.Hooks callbacks and nothing else; this
// package turns those callbacks into thread-safe tallies or into whatever
// metrics backend the caller wires up (see the otel example test).
package observe
