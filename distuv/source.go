// Package distuv provides the univariate random sources the engine
// draws from: a linear congruential uniform generator, the Box-Muller
// normal pair it feeds, and the standard normal CDF/quantile used to
// report and invert simulated values.
package distuv

// Source is a 32-bit linear congruential generator: state advances by
// state = 69069*state + 1 (mod 2^32). It is not cryptographically
// secure and is not safe for concurrent use; callers own sequencing,
// matching the engine's sequential, single-threaded draw order.
//
// Identical seeds reproduce identical streams, which the engine's
// reproducibility contract depends on.
type Source struct {
	state uint32
}

// NewSource returns a Source initialised with seed. Every seed,
// including zero, is permitted: the recurrence has the full period
// 2^32 from any starting state, and a seed of zero yields 1 as its
// first raw value.
func NewSource(seed uint32) *Source {
	return &Source{state: seed}
}

// Seed reinitialises the source's state, discarding any progress.
func (s *Source) Seed(seed uint32) {
	s.state = seed
}

// State returns the generator's current internal state, e.g. for
// persisting across a seed file.
func (s *Source) State() uint32 {
	return s.state
}

const multiplier = 69069
const increment = 1

// invModulus is 2^-32: the original engine's G_INVMOD, derived from a
// modulus of 256*256*256*128*2 = 2^32.
const invModulus = 1.0 / 4294967296.0

// Uint32 advances the generator's state by one step (state =
// 69069*state + 1 mod 2^32) and returns the new raw state. Uniform and
// UniformRange are built on top of this; callers that need the raw
// LCG output directly (e.g. to drive a discrete selection) call this
// instead of reconstructing it from Uniform's scaled result.
func (s *Source) Uint32() uint32 {
	s.state = multiplier*s.state + increment
	return s.state
}

// Uniform advances the generator's state and returns the new state
// scaled into [0, 1).
func (s *Source) Uniform() float64 {
	return float64(s.Uint32()) * invModulus
}

// UniformRange returns a value uniformly distributed in [lo, hi],
// both inclusive, by affine transform of Uniform.
func (s *Source) UniformRange(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Uniform()
}
