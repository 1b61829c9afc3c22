// Package dist provides the random source and probability distributions
// that parameterize foraging walks.
//
// All distributions draw from a shared Source whose complete internal
// state can be saved and restored, so reproducibility is an explicit
// contract: two runs with identical source state make identical draws.
// A Source is not safe for concurrent use; parallel runs must each own
// one, seeded independently.
package dist

import (
	"math"
	"math/rand/v2"
)

// A Source is a seedable pseudo-random source with save/restore of its
// full internal state. It wraps a PCG generator, whose state marshals to
// a small opaque blob.
type Source struct {
	pcg *rand.PCG
	rng *rand.Rand
}

// NewSource returns a source seeded with the two given values.
func NewSource(seed1, seed2 uint64) *Source {
	pcg := rand.NewPCG(seed1, seed2)
	return &Source{pcg: pcg, rng: rand.New(pcg)}
}

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 { return s.rng.Float64() }

// Save returns an opaque blob holding the source's current state.
func (s *Source) Save() ([]byte, error) { return s.pcg.MarshalBinary() }

// Restore resets the source to a previously saved state.
func (s *Source) Restore(blob []byte) error { return s.pcg.UnmarshalBinary(blob) }

// Uniform draws uniformly from [Low, High).
type Uniform struct {
	Src  *Source
	Low  float64
	High float64
}

// Angles returns a uniform distribution over [0, 2π), suitable for step
// directions.
func Angles(src *Source) Uniform {
	return Uniform{Src: src, High: 2 * math.Pi}
}

// Draw returns the next uniform value in [Low, High).
func (u Uniform) Draw() float64 {
	return u.Low + (u.High-u.Low)*u.Src.Float64()
}

// DrawIn returns the next uniform value in [low, high), ignoring the
// configured bounds.
func (u Uniform) DrawIn(low, high float64) float64 {
	return low + (high-low)*u.Src.Float64()
}

// Pareto draws from a Pareto (power-law) distribution with density
// proportional to x^-(Shape+1) for x ≥ Scale. With Shape = μ-1 this is
// the classic Lévy-walk step length distribution of exponent μ.
type Pareto struct {
	Src   *Source
	Scale float64 // minimum value, > 0
	Shape float64 // tail exponent α, > 0
}

// Draw returns the next Pareto value, by inverting the CDF
// F(x) = 1 - (Scale/x)^Shape.
func (p Pareto) Draw() float64 {
	return p.Scale * math.Pow(1-p.Src.Float64(), -1/p.Shape)
}

// DrawIn returns the next value from the Pareto distribution truncated
// to [low, high], by restricting the uniform draw to the image of
// [low, high] under the CDF before inverting.
func (p Pareto) DrawIn(low, high float64) float64 {
	cdf := func(x float64) float64 { return 1 - math.Pow(p.Scale/x, p.Shape) }
	lo := cdf(math.Max(low, p.Scale))
	hi := cdf(high)
	u := lo + (hi-lo)*p.Src.Float64()
	return p.Scale * math.Pow(1-u, -1/p.Shape)
}

// Exponential draws from an exponential distribution with the given
// rate. As a step length distribution it yields Brownian-like walks, the
// usual null model against Lévy searches.
type Exponential struct {
	Src  *Source
	Rate float64 // > 0
}

// Draw returns the next exponential value, by inverting the CDF
// F(x) = 1 - exp(-Rate·x).
func (e Exponential) Draw() float64 {
	return -math.Log(1-e.Src.Float64()) / e.Rate
}

// DrawIn returns the next value from the exponential distribution
// truncated to [low, high].
func (e Exponential) DrawIn(low, high float64) float64 {
	cdf := func(x float64) float64 { return 1 - math.Exp(-e.Rate*x) }
	lo := cdf(math.Max(low, 0))
	hi := cdf(high)
	u := lo + (hi-lo)*e.Src.Float64()
	return -math.Log(1-u) / e.Rate
}
