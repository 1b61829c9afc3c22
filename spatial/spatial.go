// Package spatial indexes foodspots for perception queries.
//
// A Grid hashes foodspots into square cells sized to the perception
// radius, so answering "which foodspots are perceptible from (x, y)"
// only inspects the 3×3 block of cells around the query point. The
// walk engine consumes a Grid only through its Look method, which
// satisfies the forage.Detector contract.
package spatial

import (
	"math"
	"sort"

	"github.com/cnuernber/forage"
)

// A Foodspot is a point target an animal can perceive.
type Foodspot struct {
	X float64
	Y float64
}

type cellKey struct {
	X int
	Y int
}

// A Grid is a cell-hash index over a fixed set of foodspots.
type Grid struct {
	radius float64
	cell   float64
	cells  map[cellKey][]*Foodspot
}

// NewGrid indexes the given foodspots for perception queries within
// radius, which must be positive.
func NewGrid(radius float64, spots []Foodspot) *Grid {
	g := &Grid{
		radius: radius,
		cell:   radius,
		cells:  make(map[cellKey][]*Foodspot, len(spots)),
	}
	for i := range spots {
		p := &spots[i]
		k := g.key(p.X, p.Y)
		g.cells[k] = append(g.cells[k], p)
	}
	return g
}

func (g *Grid) key(x, y float64) cellKey {
	return cellKey{
		X: int(math.Floor(x / g.cell)),
		Y: int(math.Floor(y / g.cell)),
	}
}

// Look returns the foodspots perceptible from (x, y), nearest first,
// or nil if none lie within the perception radius. It is a pure
// function of its arguments and is the detector used by walk searches.
func (g *Grid) Look(x, y float64) []forage.Target {
	k := g.key(x, y)
	var found []*Foodspot
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			for _, p := range g.cells[cellKey{X: k.X + dx, Y: k.Y + dy}] {
				if math.Hypot(p.X-x, p.Y-y) <= g.radius {
					found = append(found, p)
				}
			}
		}
	}
	if found == nil {
		return nil
	}
	sort.Slice(found, func(i, j int) bool {
		di := math.Hypot(found[i].X-x, found[i].Y-y)
		dj := math.Hypot(found[j].X-x, found[j].Y-y)
		return di < dj
	})
	ts := make([]forage.Target, len(found))
	for i, p := range found {
		ts[i] = p
	}
	return ts
}
