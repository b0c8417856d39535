// Package maxsub defines the element constraint, result type and sentinel
// errors for the maximum subarray solver.
package maxsub

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates the input sequence is empty (or nil).
var ErrInvalidInput = errors.New("maxsub: input sequence must be non-empty")

// Number is the set of element types the solver accepts.
// Sums are accumulated in the element type itself and integer overflow is
// not detected. A wrapped sum also breaks the comparisons between
// candidates, so the selected range itself can be wrong, not only its Sum.
// int8 and int16 are left out for that reason; use int64 when the total of
// the whole sequence may exceed the int32 range.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Result describes the maximum-sum subarray.
//
// Fields:
//   - Start — 1-based index of the first element of the run.
//   - End   — 1-based index of the last element of the run (inclusive).
//   - Sum   — total of the elements in [Start, End].
//
// Invariant: 1 ≤ Start ≤ End ≤ n for a solver over n elements.
type Result[T Number] struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Sum   T   `json:"sum"`
}

// Len returns the number of elements covered by r.
func (r Result[T]) Len() int {
	return r.End - r.Start + 1
}

// String renders r as "start=S end=E sum=X".
func (r Result[T]) String() string {
	return fmt.Sprintf("start=%d end=%d sum=%v", r.Start, r.End, r.Sum)
}

// candidate is an internal 0-based inclusive range [low, high] and its sum.
type candidate[T Number] struct {
	low, high int
	sum       T
}
