// Package maxsub finds the maximum-sum contiguous subarray of a numeric
// sequence using the classic divide-and-conquer algorithm.
//
// 🚀 What is the maximum subarray problem?
//
//	Given a sequence of signed values (daily profit/loss, price deltas,
//	signal gains) find the non-empty run of consecutive elements whose
//	sum is the largest. It shows up in:
//	  • Trading: the most profitable buy/sell window
//	  • Signal processing: the strongest burst in a noisy series
//	  • Genomics: high-scoring segments of a score track
//
// ✨ Key features:
//   - generic over integer and floating-point element types (Number)
//   - 1-based Start/End in results, matching "day 1, day 2, …" reporting
//   - deterministic tie-break: left half, then right half, then crossing
//   - all-negative input yields the least-negative single element, never
//     an empty run with sum 0
//   - the Solver keeps its own copy of the input and never mutates it
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/subarray/maxsub"
//
//	s, err := maxsub.NewSolver([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4})
//	if err != nil {
//	  // ErrInvalidInput for an empty sequence
//	}
//	res := s.Solve()
//	fmt.Println(res) // start=4 end=7 sum=6
//
//	// or in one call
//	res, err = maxsub.Solve(values)
//
// Performance:
//
//   - Time:   O(n log n)  (T(n) = 2T(n/2) + O(n))
//   - Memory: O(n) for the stored copy, O(log n) recursion depth
//
// See example_test.go for runnable examples.
package maxsub
