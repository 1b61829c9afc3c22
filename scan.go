package forage

import "math"

// maxSteepness is the slope magnitude above which a segment is scanned
// with the roles of x and y swapped. Incrementing x along a near-vertical
// segment moves y by amounts that can vanish in rounding, so steep
// segments are normalized to shallow ones before scanning.
const maxSteepness = 1

// FindInSegment walks from p1 toward p2 in arc-length increments of eps,
// calling look at each sample, and returns the first detection, or nil if
// look stays silent all the way to the endpoint. eps must be positive.
// Detection accuracy is bounded by eps: a target whose perceptibility
// region falls entirely between two samples is missed.
//
// A zero-length segment (p1 == p2) is scanned as a single point.
func FindInSegment(look Detector, eps float64, p1, p2 Stop) *Detection {
	if p1.X == p2.X && p1.Y == p2.Y {
		if ts := look(p1.X, p1.Y); len(ts) > 0 {
			return &Detection{Targets: ts, At: Stop{X: p1.X, Y: p1.Y}}
		}
		return nil
	}

	slope := Slope(p1, p2)
	swapped := false
	if math.IsInf(slope, 0) || math.Abs(slope) > maxSteepness {
		// Steepness normalization: scan the transposed segment, whose
		// slope is the reciprocal, and swap coordinates around the
		// detector call. This keeps |slope| ≤ 1 so the per-axis
		// increments below stay well away from zero.
		p1, p2 = Stop{X: p1.Y, Y: p1.X}, Stop{X: p2.Y, Y: p2.X}
		slope = 1 / slope
		swapped = true
	}

	// Decompose the arc-length increment into per-axis increments,
	// signed by the direction of travel.
	xeps := eps / math.Sqrt(1+slope*slope)
	yeps := math.Abs(slope * xeps)
	if p2.X < p1.X {
		xeps = -xeps
	}
	if p2.Y < p1.Y {
		yeps = -yeps
	}

	x, y := p1.X, p1.Y
	for {
		var ts []Target
		if swapped {
			ts = look(y, x)
		} else {
			ts = look(x, y)
		}
		if len(ts) > 0 {
			at := Stop{X: x, Y: y}
			if swapped {
				at.X, at.Y = at.Y, at.X
			}
			return &Detection{Targets: ts, At: at}
		}

		// Only x is tested against its endpoint, never y. After the
		// steepness normalization x advances by at least eps/√2 per
		// iteration and the clamp below lands it exactly on p2.X, so
		// the loop always terminates; testing y instead could spin
		// forever when the slope rounds to zero and y never moves.
		// The few-eps worth of y left uncovered near the endpoint is
		// immaterial at the scan resolution.
		if x == p2.X {
			return nil
		}

		x += xeps
		y += yeps
		if (xeps > 0 && x > p2.X) || (xeps < 0 && x < p2.X) {
			x = p2.X
		}
		if (yeps > 0 && y > p2.Y) || (yeps < 0 && y < p2.Y) {
			y = p2.Y
		}
	}
}
