package forage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cnuernber/forage"
	"github.com/cnuernber/forage/dist"
)

// TestLevyLengthCap verifies a Lévy walk with no detection anywhere has
// total length equal to the configured cap.
func TestLevyLengthCap(t *testing.T) {
	src := dist.NewSource(1, 2)
	o, err := forage.LevyFoodwalk(lookNever, 1, forage.LevyConfig{
		Direction: dist.Angles(src),
		Length:    dist.Pareto{Src: src, Scale: 1, Shape: 1},
		PathLen:   100,
	})
	require.NoError(t, err)
	require.Nil(t, o.Found)
	require.InDelta(t, 100, forage.PathLen(o.Path), 1e-9)
}

// TestLevyFirstDir verifies the first-direction override applies without
// disturbing the drawn step lengths.
func TestLevyFirstDir(t *testing.T) {
	cfg := forage.LevyConfig{
		Length:  dist.Pareto{Src: dist.NewSource(9, 9), Scale: 1, Shape: 2},
		PathLen: 50,
	}
	cfg.Direction = dist.Angles(dist.NewSource(8, 8))
	first := 0.0
	cfg.FirstDir = &first

	o, err := forage.LevyFoodwalk(lookNever, 1, cfg)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(o.Path), 2)
	// first segment runs along +x
	require.Greater(t, o.Path[1].X, o.Path[0].X)
	require.InDelta(t, o.Path[0].Y, o.Path[1].Y, 1e-9)
}

// TestStraightFoodwalk verifies a straight walk is a two-stop path that
// truncates at the detection point.
func TestStraightFoodwalk(t *testing.T) {
	dir := 0.0
	o, err := forage.StraightFoodwalk(lookNear(7, 0, 1e-9), 1, forage.StraightConfig{
		Dir:    &dir,
		MaxLen: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, o.Found)
	require.Len(t, o.Path, 2)
	require.InDelta(t, 7, o.Path[1].X, 1e-9)
	require.InDelta(t, 0, o.Path[1].Y, 1e-9)
}

// TestStraightPad verifies the pad displacement moves the start within
// the configured cap.
func TestStraightPad(t *testing.T) {
	src := dist.NewSource(4, 4)
	dir := 0.0
	o, err := forage.StraightFoodwalk(lookNever, 1, forage.StraightConfig{
		Dir:       &dir,
		Direction: dist.Angles(src),
		MaxLen:    10,
		MaxPad:    3,
		Pad:       dist.Uniform{Src: src, High: 3},
	})
	require.NoError(t, err)
	require.Nil(t, o.Found)
	require.Len(t, o.Path, 2)
	require.LessOrEqual(t, forage.Distance(forage.Stop{}, o.Path[0]), 3.0)
	require.InDelta(t, 10, forage.PathLen(o.Path), 1e-9)
}

// TestAdvanceLevy verifies the companion routine consumes exactly the
// draws of the walk it stands in for, so sources stay aligned across
// alternative runs.
func TestAdvanceLevy(t *testing.T) {
	mkcfg := func(src *dist.Source) forage.LevyConfig {
		return forage.LevyConfig{
			Direction: dist.Angles(src),
			Length:    dist.Pareto{Src: src, Scale: 1, Shape: 1.5},
			PathLen:   500,
		}
	}

	walked := dist.NewSource(6, 6)
	o, err := forage.LevyFoodwalk(lookNever, 1, mkcfg(walked))
	require.NoError(t, err)

	advanced := dist.NewSource(6, 6)
	n := forage.AdvanceLevy(mkcfg(advanced))
	require.Equal(t, len(o.Path)-1, n)

	a, err := walked.Save()
	require.NoError(t, err)
	b, err := advanced.Save()
	require.NoError(t, err)
	require.Equal(t, a, b)
}
