package lixi

import "math/rand/v2"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// stdRNG delegates to the auto-seeded global source of math/rand/v2.
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

// DefaultRNG is the source used when nil is passed as an RNG.
var DefaultRNG RNG = stdRNG{}

// seededRNG wraps a *rand.Rand, used for reproducible runs.
type seededRNG struct {
	r *rand.Rand
}

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

// NewSeededRNG returns a reproducible RNG. Not safe for concurrent use.
func NewSeededRNG(seed uint64) RNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle permutes values in place with the Fisher-Yates algorithm:
// every permutation is equally likely, given a uniform rng.
func Shuffle[T any](values []T, rng RNG) {
	if rng == nil {
		rng = DefaultRNG
	}
	for i := len(values) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

// Assign shuffles a copy of amounts and deals them into envelopes, one per slot.
// The input slice is left untouched.
func Assign(amounts []int, rng RNG) []Envelope {
	shuffled := make([]int, len(amounts))
	copy(shuffled, amounts)
	Shuffle(shuffled, rng)

	envelopes := make([]Envelope, len(shuffled))
	for slot, amount := range shuffled {
		envelopes[slot] = Envelope{Slot: slot, Amount: amount}
	}
	return envelopes
}
