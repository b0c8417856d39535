package maxsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMaxCrossing_Reference checks the crossing scan at the top-level split
// of the reference sequence.
func TestMaxCrossing_Reference(t *testing.T) {
	s := &Solver[int]{values: []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}, n: 9}

	// mid = 4: left scan -1, 3, 0, 1, -1 → best 3 at i=3; right scan 2, 3, -2, 2 → best 3 at i=6.
	got := s.maxCrossing(0, 4, 8)
	assert.Equal(t, candidate[int]{low: 3, high: 6, sum: 6}, got)
}

// TestMaxCrossing_FirstElementAccepted verifies that negative neighbours of
// mid are still taken when nothing better exists on that side.
func TestMaxCrossing_FirstElementAccepted(t *testing.T) {
	s := &Solver[int]{values: []int{-9, -4, -6, -8}, n: 4}

	got := s.maxCrossing(0, 1, 3)
	assert.Equal(t, candidate[int]{low: 1, high: 2, sum: -10}, got)
}

// TestMaxCrossing_KeepsFirstBestIndex verifies strict comparison: an equal
// running sum further from mid does not move the boundary.
func TestMaxCrossing_KeepsFirstBestIndex(t *testing.T) {
	s := &Solver[int]{values: []int{2, -2, 3, 1, -1, 1}, n: 6}

	// left from mid=2: 3, 1, 3 → stays at 2; right from 3: 1, 0, 1 → stays at 3.
	got := s.maxCrossing(0, 2, 5)
	assert.Equal(t, candidate[int]{low: 2, high: 3, sum: 4}, got)
}

// TestSolveRange_BaseCase verifies the single-element base case keeps 0-based indices.
func TestSolveRange_BaseCase(t *testing.T) {
	s := &Solver[int]{values: []int{7, -3, 5}, n: 3}

	assert.Equal(t, candidate[int]{low: 1, high: 1, sum: -3}, s.solveRange(1, 1))
	assert.Equal(t, candidate[int]{low: 0, high: 2, sum: 9}, s.solveRange(0, 2))
}
