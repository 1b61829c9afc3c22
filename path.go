package forage

// Accumulate converts a finite step sequence into a path of absolute
// stops. The path starts with start; each subsequent stop is the previous
// one displaced by the corresponding vector, obtained by rotating
// (v.Len, 0) by v.Dir. A vector's label, if any, is attached to the stop
// it produces.
func Accumulate(start Stop, steps []StepVector) Path {
	path := make(Path, 1, len(steps)+1)
	path[0] = start
	cur := start
	for _, v := range steps {
		dx, dy := Rotate(v.Dir, v.Len, 0)
		cur = Stop{X: cur.X + dx, Y: cur.Y + dy, Label: v.Label}
		path = append(path, cur)
	}
	return path
}
