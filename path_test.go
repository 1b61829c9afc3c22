package forage_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cnuernber/forage"
	"github.com/cnuernber/forage/dist"
)

// TestAccumulateRoundTrip verifies that the distance between consecutive
// stops equals the length of the step vector that produced the later one.
func TestAccumulateRoundTrip(t *testing.T) {
	src := dist.NewSource(3, 5)
	gen := &forage.Generator{
		Direction: dist.Angles(src),
		Length:    dist.Pareto{Src: src, Scale: 0.5, Shape: 1.5},
	}
	steps := make([]forage.StepVector, 100)
	for i := range steps {
		steps[i], _ = gen.Next()
	}

	path := forage.Accumulate(forage.Stop{X: -3, Y: 7}, steps)
	require.Len(t, path, len(steps)+1)
	require.Equal(t, forage.Stop{X: -3, Y: 7}, path[0])
	for i, v := range steps {
		d := forage.Distance(path[i], path[i+1])
		require.InEpsilon(t, v.Len, d, 1e-9, "segment %d", i)
	}
}

// TestAccumulateAxes pins down the direction convention: 0 is +x, π/2 is +y.
func TestAccumulateAxes(t *testing.T) {
	path := forage.Accumulate(forage.Stop{}, []forage.StepVector{
		{Dir: 0, Len: 2},
		{Dir: math.Pi / 2, Len: 3},
	})
	require.InDelta(t, 2, path[1].X, 1e-12)
	require.InDelta(t, 0, path[1].Y, 1e-12)
	require.InDelta(t, 2, path[2].X, 1e-12)
	require.InDelta(t, 3, path[2].Y, 1e-12)
}

// TestAccumulateLabels verifies a vector's label lands on the stop it
// produces, and nowhere else.
func TestAccumulateLabels(t *testing.T) {
	path := forage.Accumulate(forage.Stop{}, []forage.StepVector{
		{Dir: 0, Len: 1, Label: "a"},
		{Dir: 0, Len: 1},
	})
	require.Equal(t, "", path[0].Label)
	require.Equal(t, "a", path[1].Label)
	require.Equal(t, "", path[2].Label)
}

// TestPathLen checks total path length against hand-computed segments.
func TestPathLen(t *testing.T) {
	path := forage.Path{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}}
	require.InDelta(t, 11, forage.PathLen(path), 1e-12)
	require.Equal(t, 0.0, forage.PathLen(path[:1]))
}
