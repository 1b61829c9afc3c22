package forage_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cnuernber/forage"
)

// TestCompositeFixedAlternation verifies the scheduler splices two
// generators in fixed-length runs: A, A, B, B, A, A, B, B, …
func TestCompositeFixedAlternation(t *testing.T) {
	a := constant(0, 1)
	b := constant(math.Pi, 2)
	c, err := forage.NewComposite(
		[]forage.Stream{a, b},
		[]forage.SwitchFunc{forage.SwitchEvery(2), forage.SwitchEvery(2)},
		nil,
	)
	require.NoError(t, err)

	want := []float64{1, 1, 2, 2, 1, 1, 2, 2}
	for i, l := range want {
		v, ok := c.Next()
		require.True(t, ok)
		require.Equal(t, l, v.Len, "step %d", i)
	}
}

// TestCompositeLabels verifies the current generator's label is attached
// to each produced vector.
func TestCompositeLabels(t *testing.T) {
	c, err := forage.NewComposite(
		[]forage.Stream{constant(0, 1), constant(0, 2)},
		[]forage.SwitchFunc{forage.SwitchEvery(1), forage.SwitchEvery(1)},
		[]string{"long", "short"},
	)
	require.NoError(t, err)

	want := []string{"long", "short", "long", "short"}
	for i, label := range want {
		v, ok := c.Next()
		require.True(t, ok)
		require.Equal(t, label, v.Label, "step %d", i)
	}
}

// TestCompositeCarryReset verifies the switch state resets when the
// scheduler advances, so every run of a generator has full length.
func TestCompositeCarryReset(t *testing.T) {
	c, err := forage.NewComposite(
		[]forage.Stream{constant(0, 1), constant(0, 2)},
		[]forage.SwitchFunc{forage.SwitchEvery(3), forage.SwitchEvery(2)},
		nil,
	)
	require.NoError(t, err)

	want := []float64{1, 1, 1, 2, 2, 1, 1, 1, 2, 2}
	for i, l := range want {
		v, ok := c.Next()
		require.True(t, ok)
		require.Equal(t, l, v.Len, "step %d", i)
	}
}

// TestCompositeExhaustion verifies a finite sub-stream ends the
// composite stream.
func TestCompositeExhaustion(t *testing.T) {
	c, err := forage.NewComposite(
		[]forage.Stream{forage.Steps(forage.StepVector{Len: 1})},
		[]forage.SwitchFunc{forage.SwitchEvery(5)},
		nil,
	)
	require.NoError(t, err)

	_, ok := c.Next()
	require.True(t, ok)
	_, ok = c.Next()
	require.False(t, ok)
}

// TestCompositeBadInputs verifies the scheduler's precondition errors.
func TestCompositeBadInputs(t *testing.T) {
	_, err := forage.NewComposite(nil, nil, nil)
	require.ErrorIs(t, err, forage.ErrNoGenerators)

	_, err = forage.NewComposite(
		[]forage.Stream{constant(0, 1)},
		[]forage.SwitchFunc{forage.SwitchEvery(1), forage.SwitchEvery(1)},
		nil,
	)
	require.ErrorIs(t, err, forage.ErrMismatchedSchedule)

	_, err = forage.NewComposite(
		[]forage.Stream{constant(0, 1)},
		[]forage.SwitchFunc{forage.SwitchEvery(1)},
		[]string{"a", "b"},
	)
	require.ErrorIs(t, err, forage.ErrMismatchedSchedule)
}
