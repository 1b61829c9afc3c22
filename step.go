package forage

// A Generator produces one random step vector per pull, drawing a
// direction and a length from its two distributions. It satisfies Stream;
// the stream is infinite and advances the distributions' shared random
// source on every pull, so it cannot be restarted — replaying a walk
// requires recreating the generator from identical source state.
type Generator struct {
	// Direction yields step directions in radians.
	Direction Dist

	// Length yields non-negative step lengths.
	Length Dist

	// MinLen and MaxLen optionally truncate length draws to
	// [MinLen, MaxLen]. They are ignored unless MaxLen > MinLen.
	MinLen float64
	MaxLen float64

	// Label is attached to every produced step vector.
	Label string
}

// Next draws the direction first, then the length, so that a generator
// consumes exactly two draws per step in a fixed, documented order.
func (g *Generator) Next() (StepVector, bool) {
	dir := g.Direction.Draw()
	var l float64
	if g.MaxLen > g.MinLen {
		l = g.Length.DrawIn(g.MinLen, g.MaxLen)
	} else {
		l = g.Length.Draw()
	}
	return StepVector{Dir: dir, Len: l, Label: g.Label}, true
}
