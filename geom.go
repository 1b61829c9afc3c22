package forage

import "math"

// Rotate rotates the vector (x, y) by the angle θ in radians.
func Rotate(θ, x, y float64) (float64, float64) {
	sin, cos := math.Sincos(θ)
	return x*cos - y*sin, x*sin + y*cos
}

// Distance returns the Euclidean distance between two stops.
func Distance(a, b Stop) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Slope returns the slope of the line through p1 and p2.
// The result is ±Inf for a vertical line and NaN when p1 == p2.
func Slope(p1, p2 Stop) float64 {
	return (p2.Y - p1.Y) / (p2.X - p1.X)
}

// Intercept returns the y-intercept of the line of the given slope through p.
func Intercept(slope float64, p Stop) float64 {
	return p.Y - slope*p.X
}

// PathLen returns the total length of a path, i.e. the sum of the
// Euclidean distances between consecutive stops.
func PathLen(path Path) float64 {
	var sum float64
	for i := 1; i < len(path); i++ {
		sum += Distance(path[i-1], path[i])
	}
	return sum
}
