package forage

import "math"

// StraightConfig parameterizes a straight food walk.
type StraightConfig struct {
	// Start is the walk origin, before any pad displacement.
	Start Stop

	// Dir is the walk direction. If nil, one is drawn from Direction.
	Dir *float64

	// Direction yields random angles. It is consulted when Dir is nil
	// and for the pad displacement direction when MaxPad > 0.
	Direction Dist

	// MaxLen is the total walk length. Negative values are clamped to 0.
	MaxLen float64

	// MaxPad, when positive, offsets Start by a displacement of random
	// direction and of random length in [0, MaxPad] drawn from Pad.
	MaxPad float64

	// Pad yields the pad displacement length. Required when MaxPad > 0.
	Pad Dist
}

// StraightFoodwalk searches for food along a single straight segment of
// length MaxLen. Draw order is fixed for reproducibility: the walk
// direction (when random) is drawn first, then the pad direction, then
// the pad length.
func StraightFoodwalk(look Detector, eps float64, cfg StraightConfig) (WalkOutcome, error) {
	var dir float64
	if cfg.Dir != nil {
		dir = *cfg.Dir
	} else {
		dir = cfg.Direction.Draw()
	}
	start := cfg.Start
	if cfg.MaxPad > 0 {
		θ := cfg.Direction.Draw()
		dx, dy := Rotate(θ, cfg.Pad.DrawIn(0, cfg.MaxPad), 0)
		start.X += dx
		start.Y += dy
	}
	path := Accumulate(start, []StepVector{{Dir: dir, Len: math.Max(cfg.MaxLen, 0)}})
	return Foodwalk(look, eps, path)
}

// LevyConfig parameterizes a Lévy food walk.
type LevyConfig struct {
	// Start is the walk origin.
	Start Stop

	// Direction yields step directions, Length step lengths. For a true
	// Lévy walk Length is power-law distributed, but any length
	// distribution works (exponential gives a Brownian-like search).
	Direction Dist
	Length    Dist

	// MinLen and MaxLen optionally truncate individual step lengths;
	// see Generator.
	MinLen float64
	MaxLen float64

	// PathLen is the target total walk length. Negative values are
	// clamped to 0.
	PathLen float64

	// NoTrim, when set, keeps the final step vector at its drawn length
	// instead of shortening it to make the walk length exact.
	NoTrim bool

	// FirstDir optionally overrides the direction of the first step,
	// after all draws are made, so that draw order is unaffected.
	FirstDir *float64
}

// LevyFoodwalk generates a random walk of total length PathLen from the
// configured distributions and searches it for food.
func LevyFoodwalk(look Detector, eps float64, cfg LevyConfig) (WalkOutcome, error) {
	steps := levySteps(cfg)
	if cfg.FirstDir != nil && len(steps) > 0 {
		steps[0].Dir = *cfg.FirstDir
	}
	return Foodwalk(look, eps, Accumulate(cfg.Start, steps))
}

// AdvanceLevy consumes exactly the draws a LevyFoodwalk with the same
// config would consume, without building or searching the walk. It
// returns the number of steps drawn. Alternative runs sharing one random
// source use it to keep their draw sequences aligned: runs that skip the
// walk still advance the source by the same amount.
func AdvanceLevy(cfg LevyConfig) int {
	return len(levySteps(cfg))
}

func levySteps(cfg LevyConfig) []StepVector {
	gen := &Generator{
		Direction: cfg.Direction,
		Length:    cfg.Length,
		MinLen:    cfg.MinLen,
		MaxLen:    cfg.MaxLen,
	}
	return TrimToLength(gen, math.Max(cfg.PathLen, 0), !cfg.NoTrim)
}
