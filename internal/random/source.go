package random

// Uniform produces values in [0, 1).
type Uniform interface {
	Float64() float64
}

// Source is a seeded mulberry32 generator. The whole sequence is a pure
// function of the seed, so two sources with the same seed always agree.
// A Source is not safe for concurrent use; give each goroutine its own.
type Source struct {
	state uint32
}

// NewSource creates a Source positioned at the start of the seed's sequence.
func NewSource(seed uint32) *Source {
	return &Source{state: seed}
}

// Float64 advances the source and returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	s.state += 0x6d2b79f5
	t := (s.state ^ (s.state >> 15)) * (1 | s.state)
	t = (t + (t^(t>>7))*(61|t)) ^ t
	return float64(t^(t>>14)) / 4294967296
}

// Intn returns a value in [0, n) using a single draw.
func (s *Source) Intn(n int) int {
	return int(s.Float64() * float64(n))
}
