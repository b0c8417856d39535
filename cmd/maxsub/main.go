// Command maxsub runs the divide-and-conquer maximum subarray solver over a
// sequence of daily profit/loss figures and prints the best run.
//
// Usage:
//
//	maxsub                               # reference sequence
//	maxsub --values=-2,1,-3,4 -f json    # custom sequence, JSON output
//	MAXSUB_VALUES=3,-1,2 maxsub -v       # env override, debug logging
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
