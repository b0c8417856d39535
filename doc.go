// Package subarray is a small playground for the maximum subarray problem:
// given daily profit/loss figures, find the contiguous run whose sum is
// the largest.
//
// 🚀 What is inside?
//
//	• maxsub/      — divide-and-conquer Solver (O(n log n)), generic over
//	                 integer and floating-point element types
//	• cmd/maxsub/  — demonstration CLI (flags, env vars, YAML config)
//	• examples/    — most profitable window over crypto candle closes
//
// ✨ Why divide and conquer?
//
//   - Teaching value – the textbook split / cross / combine recursion
//   - Deterministic – equal sums resolve left half, right half, crossing run
//   - Pure Go – the library itself has no dependencies
//
// Quick ASCII example:
//
//	 -2  1 -3 [ 4 -1  2  1 ] -5  4
//	           └── sum = 6 ──┘
//
//	go get github.com/katalvlaran/subarray/maxsub
package subarray
