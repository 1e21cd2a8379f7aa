package random

import "lukechampine.com/frand"

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string

	// Shuffle permutes n elements using the swap function
	Shuffle(n int, swap func(i, j int))
}

// FastRandom implements Random on top of frand's ChaCha-based generator
type FastRandom struct {
	rng *frand.RNG
}

// New creates a FastRandom seeded from the operating system
func New() *FastRandom {
	return &FastRandom{rng: frand.New()}
}

// NewSeeded creates a FastRandom whose sequence is fully determined by the seed
func NewSeeded(seed []byte) *FastRandom {
	padded := make([]byte, 32)
	copy(padded, seed)
	return &FastRandom{rng: frand.NewCustom(padded, 1024, 12)}
}

// Intn returns a random int in [0, n)
func (r *FastRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// String generates a random string of the given length from the given alphabet
func (r *FastRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}

// Shuffle permutes n elements using the swap function
func (r *FastRandom) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	r.rng.Shuffle(n, swap)
}
