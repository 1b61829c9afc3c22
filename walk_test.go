package forage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cnuernber/forage"
	"github.com/cnuernber/forage/dist"
)

// TestPathWithFood verifies detection in a later segment truncates the
// path at the detection coordinate.
func TestPathWithFood(t *testing.T) {
	path := forage.Path{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 8}}
	found, upto, err := forage.PathWithFood(lookNear(4, 6, 1e-9), 1, path)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotEmpty(t, found.Targets)
	require.Len(t, upto, 3)
	require.Equal(t, path[0], upto[0])
	require.Equal(t, path[1], upto[1])
	require.InDelta(t, 4, upto[2].X, 1e-9)
	require.InDelta(t, 6, upto[2].Y, 1e-9)
}

// TestPathWithFoodMiss verifies a silent detector returns the entire path.
func TestPathWithFoodMiss(t *testing.T) {
	path := forage.Path{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 8}}
	found, upto, err := forage.PathWithFood(lookNever, 1, path)
	require.NoError(t, err)
	require.Nil(t, found)
	require.Equal(t, path, upto)
}

// TestPathWithFoodShort verifies the two-stop precondition.
func TestPathWithFoodShort(t *testing.T) {
	_, _, err := forage.PathWithFood(lookNever, 1, forage.Path{{X: 0, Y: 0}})
	require.ErrorIs(t, err, forage.ErrShortPath)

	_, _, err = forage.PathWithFood(lookNever, 1, nil)
	require.ErrorIs(t, err, forage.ErrShortPath)
}

// TestFoodwalkRemainder verifies the remainder starts two stops before
// the end of the truncated path, carrying the full segment that contains
// the detection point.
func TestFoodwalkRemainder(t *testing.T) {
	path := forage.Path{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 8}, {X: 9, Y: 8}}
	o, err := forage.Foodwalk(lookNear(4, 6, 1e-9), 1, path)
	require.NoError(t, err)
	require.NotNil(t, o.Found)
	require.Len(t, o.Path, 3)
	require.Equal(t, forage.Path{{X: 4, Y: 0}, {X: 4, Y: 8}, {X: 9, Y: 8}}, o.Remainder)
}

// TestFoodwalkReconstruct verifies the original path is reproduced by
// dropping the truncated path's overlap with the remainder and
// concatenating.
func TestFoodwalkReconstruct(t *testing.T) {
	src := dist.NewSource(17, 29)
	gen := &forage.Generator{
		Direction: dist.Angles(src),
		Length:    dist.Pareto{Src: src, Scale: 2, Shape: 1},
	}
	path := forage.Accumulate(forage.Stop{}, forage.TrimToLength(gen, 200, true))
	target := path[len(path)/2]

	o, err := forage.Foodwalk(lookNear(target.X, target.Y, 0.5), 0.1, path)
	require.NoError(t, err)
	require.NotNil(t, o.Found)

	rebuilt := append(forage.Path{}, o.Path[:len(o.Path)-2]...)
	rebuilt = append(rebuilt, o.Remainder...)
	require.Equal(t, path, rebuilt)
}

// TestFoodwalkMiss verifies the remainder is nil when nothing was found,
// instead of duplicating the path.
func TestFoodwalkMiss(t *testing.T) {
	path := forage.Path{{X: 0, Y: 0}, {X: 4, Y: 0}}
	o, err := forage.Foodwalk(lookNever, 1, path)
	require.NoError(t, err)
	require.Nil(t, o.Found)
	require.Nil(t, o.Remainder)
	require.Equal(t, path, o.Path)
}
