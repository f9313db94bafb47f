package random

import (
	"crypto/rand"
	"math/big"
)

// Random provides dice rolls that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Roll returns the face of a fair die with the given number of sides, in [1, sides]
	Roll(sides int) int
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(result.Int64())
}

// Roll returns a face in [1, sides], or 0 for a die without sides
func (r *CryptoRandom) Roll(sides int) int {
	if sides <= 0 {
		return 0
	}
	return r.Intn(sides) + 1
}
