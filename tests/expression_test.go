package tests

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/xpr/pkg/xpr"
	"github.com/ib-77/xpr/pkg/xpr/apply"
	"github.com/ib-77/xpr/pkg/xpr/attempt"
	"github.com/ib-77/xpr/pkg/xpr/match"
	"github.com/ib-77/xpr/pkg/xpr/observe"
)

var errParse = errors.New("parse failure")

// TestScoreReportEndToEnd runs raw inputs through the whole surface: parse
// under a catcher with recovery, classify with a switch, collect rendered
// lines with an applier.
func TestScoreReportEndToEnd(t *testing.T) {
	inputs := []string{"12", "-3", "bad", "0", ""}

	parse := func(raw string) attempt.Thunk[int] {
		return func() (int, error) {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", errParse, raw)
			}
			return n, nil
		}
	}

	counter := &observe.Counter{}
	cleanups := 0

	var report []string
	collect := apply.To(func(line string) { report = append(report, line) })

	for _, raw := range inputs {
		score, err := attempt.Catch(parse(raw), errParse).
			Observe(counter.Hooks()).
			Recover(errParse, func(error) int { return 0 }).
			Cleanup(func() error {
				cleanups++
				return nil
			}).
			Unwrap()
		require.NoError(t, err)

		label, err := match.On[string](score).Exhaustive(
			match.When(score < 0, func() string { return "negative" }),
			match.When(score == 0, func() string { return "zero" }),
			match.When(score > 0, func() string { return "positive" }),
		)
		require.NoError(t, err)

		_ = collect.Call(func() string { return fmt.Sprintf("%q -> %d (%s)", raw, score, label) })
	}

	assert.Equal(t, len(inputs), cleanups, "cleanup must run once per evaluation")
	assert.Equal(t, int64(3), counter.Resolved())
	assert.Equal(t, int64(2), counter.Recovered())
	assert.Len(t, report, len(inputs))
	assert.Equal(t, `"bad" -> 0 (zero)`, report[2])
	assert.Equal(t, `"-3" -> -3 (negative)`, report[1])
}

// TestGradingWithDefaults exercises the call-form switch with a default and
// the conflicting-defaults guard.
func TestGradingWithDefaults(t *testing.T) {
	grade := func(score int) (string, error) {
		return match.On[string](score).Default("ungraded").Eval(
			match.When(score >= 90, func() string { return "A" }),
			match.When(score >= 80, func() string { return "B" }),
			match.When(score >= 70, func() string { return "C" }),
		)
	}

	for score, want := range map[int]string{95: "A", 83: "B", 70: "C", 12: "ungraded"} {
		got, err := grade(score)
		require.NoError(t, err)
		assert.Equal(t, want, got, "score %d", score)
	}

	_, err := match.On[string](1).
		Default("v").
		DefaultFactory(func() string { return "f" }).
		Eval(match.When(true, func() string { return "hit" }))
	assert.ErrorIs(t, err, xpr.ErrConflictingDefaults)
}

// TestLazyPipelineComposition checks that a mapped computation only runs at
// unwrap time, and that outcomes keep their recovery cause.
func TestLazyPipelineComposition(t *testing.T) {
	steps := 0
	c := attempt.Map(
		attempt.Start(func() (int, error) {
			steps++
			return 21, nil
		}),
		func(v int) string {
			steps++
			return strconv.Itoa(v * 2)
		},
	)
	assert.Zero(t, steps, "nothing may run before unwrap")

	v, err := c.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "42", v)
	assert.Equal(t, 2, steps)

	o := attempt.Catch(func() (int, error) { return 0, errParse }, errParse).
		Fallback(-1).
		Eval()
	assert.True(t, o.IsRecovered())
	assert.Equal(t, -1, o.Value())
	assert.ErrorIs(t, o.Cause(), errParse)
	assert.NotEqual(t, uuid.Nil, o.Id())
	assert.NotZero(t, o.CreatedAt())
}
