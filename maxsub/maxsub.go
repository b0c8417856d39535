package maxsub

import "slices"

// Solver — divide-and-conquer maximum subarray
//
// Description:
//
//	Solver owns an immutable copy of the input sequence and finds the
//	contiguous, non-empty run with the largest sum.
//
// Algorithm Outline (solveRange(low, high)):
//  1. If low == high, the single element is its own best run.
//  2. mid = ⌊(low+high)/2⌋.
//  3. left  = solveRange(low, mid)
//     right = solveRange(mid+1, high)
//     cross = maxCrossing(low, mid, high)
//  4. Return the candidate with the largest sum. On equal sums prefer
//     left, then right, then cross.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n) for the copy + O(log n) stack frames
//
// Errors:
//   - ErrInvalidInput — if the sequence passed to NewSolver is empty.
type Solver[T Number] struct {
	values []T
	n      int
}

// NewSolver returns a Solver over a private copy of values.
// Later changes to values do not affect the solver.
//
// Returns ErrInvalidInput if values is empty.
func NewSolver[T Number](values []T) (*Solver[T], error) {
	if len(values) == 0 {
		return nil, ErrInvalidInput
	}

	return &Solver[T]{
		values: slices.Clone(values),
		n:      len(values),
	}, nil
}

// Solve is a convenience wrapper: NewSolver(values) followed by Solve().
//
// Example:
//
//	res, err := maxsub.Solve([]int{-3, -1, -2})
//	// res == Result{Start: 2, End: 2, Sum: -1}
func Solve[T Number](values []T) (Result[T], error) {
	s, err := NewSolver(values)
	if err != nil {
		return Result[T]{}, err
	}

	return s.Solve(), nil
}

// Len returns the number of elements the solver was built with.
func (s *Solver[T]) Len() int {
	return s.n
}

// Solve returns the maximum-sum subarray over the whole sequence with
// 1-based Start/End. Solve does not modify the solver; repeated calls
// return identical results.
func (s *Solver[T]) Solve() Result[T] {
	best := s.solveRange(0, s.n-1)

	return Result[T]{
		Start: best.low + 1,
		End:   best.high + 1,
		Sum:   best.sum,
	}
}

// Values returns a copy of the elements covered by r.
// It returns nil when r does not describe a range inside this solver.
func (s *Solver[T]) Values(r Result[T]) []T {
	if r.Start < 1 || r.End < r.Start || r.End > s.n {
		return nil
	}

	return slices.Clone(s.values[r.Start-1 : r.End])
}

// solveRange returns the best candidate inside [low, high] (0-based, inclusive).
func (s *Solver[T]) solveRange(low, high int) candidate[T] {
	if low == high {
		return candidate[T]{low: low, high: high, sum: s.values[low]}
	}

	mid := low + (high-low)/2

	left := s.solveRange(low, mid)
	right := s.solveRange(mid+1, high)
	cross := s.maxCrossing(low, mid, high)

	switch {
	case left.sum >= right.sum && left.sum >= cross.sum:
		return left
	case right.sum >= left.sum && right.sum >= cross.sum:
		return right
	default:
		return cross
	}
}

// maxCrossing returns the best run that contains both mid and mid+1.
// Requires low ≤ mid < high.
//
// The left half is scanned from mid down to low, the right half from
// mid+1 up to high; each side keeps the first index reaching its strictly
// largest running sum. Seeding each side with its first element plays the
// role of an initial -∞ best.
//
// Complexity: O(high-low+1).
func (s *Solver[T]) maxCrossing(low, mid, high int) candidate[T] {
	var (
		total    T
		leftSum  T
		rightSum T
		maxLeft  int
		maxRight int
		i        int
	)

	// mid → low
	total = s.values[mid]
	leftSum, maxLeft = total, mid
	for i = mid - 1; i >= low; i-- {
		total += s.values[i]
		if total > leftSum {
			leftSum, maxLeft = total, i
		}
	}

	// mid+1 → high
	total = s.values[mid+1]
	rightSum, maxRight = total, mid+1
	for i = mid + 2; i <= high; i++ {
		total += s.values[i]
		if total > rightSum {
			rightSum, maxRight = total, i
		}
	}

	return candidate[T]{low: maxLeft, high: maxRight, sum: leftSum + rightSum}
}
