package forage

// TrimToLength consumes steps from a stream until their summed length
// reaches target, and returns the consumed prefix. target must be ≥ 0;
// callers holding a possibly negative value must clamp it first.
//
// With trim true (the usual mode) the final vector is shortened, keeping
// its direction, so that the returned list's total length equals target
// exactly. With trim false the list is returned as accumulated and may
// exceed target by less than the final vector's full length.
//
// A stream that exhausts before reaching target is not an error: the
// result is simply everything consumed, with total length below target.
func TrimToLength(s Stream, target float64, trim bool) []StepVector {
	var out []StepVector
	var sum float64
	for sum < target {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
		sum += v.Len
	}
	if trim && len(out) > 0 {
		out[len(out)-1].Len -= sum - target
	}
	return out
}
