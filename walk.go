package forage

// PathWithFood scans the segments of path in traversal order and reports
// the first detection. On detection it returns the detection plus the
// path truncated to end at the detection coordinate; otherwise it returns
// a nil detection and the entire path. The path must have at least two
// stops, or ErrShortPath is returned.
func PathWithFood(look Detector, eps float64, path Path) (*Detection, Path, error) {
	if len(path) < 2 {
		return nil, nil, ErrShortPath
	}
	for i := 0; i+1 < len(path); i++ {
		d := FindInSegment(look, eps, path[i], path[i+1])
		if d == nil {
			continue
		}
		trunc := make(Path, 0, i+2)
		trunc = append(trunc, path[:i+1]...)
		trunc = append(trunc, d.At)
		return d, trunc, nil
	}
	return nil, path, nil
}

// Foodwalk runs PathWithFood over a full walk and derives the complete
// outcome. When something was found, Remainder is the suffix of the
// original path starting two stops before the end of the truncated path:
// it carries the one full segment containing the detection point, so the
// original path is reproduced exactly by dropping the truncated path's
// last two stops and concatenating. When nothing was found Remainder is
// nil, as it would only duplicate Path.
func Foodwalk(look Detector, eps float64, path Path) (WalkOutcome, error) {
	found, upto, err := PathWithFood(look, eps, path)
	if err != nil {
		return WalkOutcome{}, err
	}
	o := WalkOutcome{Found: found, Path: upto}
	if found != nil {
		o.Remainder = path[len(upto)-2:]
	}
	return o, nil
}
