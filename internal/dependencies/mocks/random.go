package mocks

import (
	"github.com/mcoot/feastgame/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// RollResults is a queue of faces to return from Roll
	RollResults []int
	rollIndex   int

	// Sides records the die size of every Roll call
	Sides []int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Roll returns the next queued face, or 1 if none remaining
func (r *MockRandom) Roll(sides int) int {
	r.Sides = append(r.Sides, sides)
	if r.rollIndex >= len(r.RollResults) {
		return 1
	}
	result := r.RollResults[r.rollIndex]
	r.rollIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueRolls adds faces to the Roll result queue
func (r *MockRandom) QueueRolls(faces ...int) {
	r.RollResults = append(r.RollResults, faces...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.RollResults = nil
	r.rollIndex = 0
	r.Sides = nil
}
