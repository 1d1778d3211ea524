package observe

import (
	"errors"
	"testing"

	"github.com/ib-77/xpr/pkg/xpr/attempt"
	"github.com/ib-77/xpr/pkg/xpr/match"
)

var errUnavailable = errors.New("unavailable")

func TestCounter_TalliesCatcherEvents(t *testing.T) {
	t.Parallel()
	counter := &Counter{}

	_, _ = attempt.Catch(func() (int, error) { return 1, nil }, errUnavailable).
		Observe(counter.Hooks()).
		Unwrap()
	_, _ = attempt.Catch(func() (int, error) { return 0, errUnavailable }, errUnavailable).
		Observe(counter.Hooks()).
		Fallback(-1).
		Cleanup(func() error { return nil }).
		Unwrap()
	_, _ = attempt.Catch(func() (int, error) { return 0, errUnavailable }, errUnavailable).
		Observe(counter.Hooks()).
		Recover(errUnavailable, func(error) int { return 0 }).
		Unwrap()

	if counter.Resolved() != 1 {
		t.Fatalf("expected 1 resolved, got %d", counter.Resolved())
	}
	if counter.Intercepted() != 2 {
		t.Fatalf("expected 2 intercepted, got %d", counter.Intercepted())
	}
	if counter.Fallbacks() != 1 || counter.Recovered() != 1 {
		t.Fatalf("expected 1 fallback and 1 recovery, got %d and %d", counter.Fallbacks(), counter.Recovered())
	}
	if counter.Cleanups() != 1 {
		t.Fatalf("expected 1 cleanup, got %d", counter.Cleanups())
	}
}

func TestCounter_TalliesSwitchEvents(t *testing.T) {
	t.Parallel()
	counter := &Counter{}

	_, _ = match.On[string](1).Observe(counter.Hooks()).Eval(
		match.When(true, func() string { return "hit" }),
	)
	_, _ = match.On[string](2).Observe(counter.Hooks()).Exhaustive(
		match.When(false, func() string { return "never" }),
	)

	if counter.Resolved() != 1 || counter.NoMatches() != 1 {
		t.Fatalf("expected 1 resolved and 1 no-match, got %d and %d", counter.Resolved(), counter.NoMatches())
	}
}

func TestHookBuilders_SingleCallback(t *testing.T) {
	t.Parallel()
	var recovered error
	_, _ = attempt.Catch(func() (int, error) { return 0, errUnavailable }, errUnavailable).
		Observe(OnRecover(func(err error) { recovered = err })).
		Recover(errUnavailable, func(error) int { return 0 }).
		Unwrap()
	if !errors.Is(recovered, errUnavailable) {
		t.Fatalf("expected recover hook to see the error, got: %v", recovered)
	}

	var missed any
	_, _ = match.On[int]("k").
		Observe(OnNoMatch(func(subject any) { missed = subject })).
		Exhaustive(match.When(false, func() int { return 0 }))
	if missed != "k" {
		t.Fatalf("expected no-match hook to see the subject, got: %v", missed)
	}
}
