// Package forage simulates animals searching for food along random
// or structured paths in continuous 2D space.
//
// A walk is built in stages: step generators turn draws from probability
// distributions into relative displacement vectors, a trimmer cuts the
// resulting stream to a target total length, an accumulator turns the
// finite vector sequence into absolute coordinates, and a segment scanner
// samples the path at fixed arc-length increments until a foodspot
// becomes perceptible. Strategy drivers compose these stages into named
// searches such as straight walks and Lévy walks.
//
// The package is single threaded and demand driven: step streams produce
// one vector per pull, and every pull advances the shared random source,
// so draw order is deterministic and runs are reproducible from a saved
// source state. Callers wanting parallel runs must give each run its own
// source.
package forage

// A Target is an opaque handle to something an animal can perceive,
// typically a foodspot owned by whatever spatial index backs the detector.
type Target any

// A Detector reports the targets perceptible from the point (x, y).
// A nil or empty result means nothing is perceptible there.
// Detectors must be pure functions of their arguments.
type Detector func(x, y float64) []Target

// A Dist yields successive draws from a one-dimensional probability
// distribution. Every draw advances the underlying random source.
type Dist interface {
	// Draw returns the next value from the distribution.
	Draw() float64

	// DrawIn returns the next value from the distribution
	// truncated to the interval [low, high].
	DrawIn(low, high float64) float64
}

// A StepVector is a relative displacement in polar form.
type StepVector struct {
	Dir   float64 // direction in radians, in [0, 2π)
	Len   float64 // non-negative length
	Label string  // optional tag, carried onto the produced stop
}

// A Stop is an absolute coordinate visited during a walk.
type Stop struct {
	X     float64
	Y     float64
	Label string // optional tag
}

// A Path is an ordered sequence of stops in traversal order.
// The Euclidean distance between adjacent stops equals the length of the
// step vector that produced the later stop, within floating tolerance.
type Path []Stop

// A Stream produces step vectors one at a time, on demand.
//
// Next reports ok == false once the stream is exhausted. Generator-backed
// streams are infinite and never report exhaustion; they are also not
// restartable, except by recreating the generator from identical
// distribution state.
type Stream interface {
	Next() (v StepVector, ok bool)
}

// StreamFunc adapts a function to the Stream interface.
type StreamFunc func() (StepVector, bool)

// Next calls f.
func (f StreamFunc) Next() (StepVector, bool) { return f() }

// Steps returns a finite stream over a fixed sequence of step vectors.
func Steps(vs ...StepVector) Stream {
	i := 0
	return StreamFunc(func() (StepVector, bool) {
		if i >= len(vs) {
			return StepVector{}, false
		}
		v := vs[i]
		i++
		return v, true
	})
}

// A Detection records the targets perceived at a point of a walk.
type Detection struct {
	Targets []Target // non-empty
	At      Stop     // coordinate where the targets were perceived
}

// A WalkOutcome is the result of running a food search over a full walk.
type WalkOutcome struct {
	// Found is nil if no target was perceived anywhere along the walk.
	Found *Detection

	// Path ends at the detection coordinate when Found is non-nil,
	// and is the entire walk otherwise.
	Path Path

	// Remainder is the unexplored tail of the walk, starting two stops
	// before the end of Path so that it carries the full segment that
	// contains the detection point. It is nil when nothing was found,
	// since it would duplicate Path.
	Remainder Path
}
