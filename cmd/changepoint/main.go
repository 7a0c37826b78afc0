// Command changepoint finds level changes in a series of numbers read
// from a file or stdin.
//
// Usage:
//
//	changepoint detect series.txt
//	changepoint detect --lambda 16 --json < series.txt
//	changepoint delta --start 10 --end 90 series.txt
//	changepoint --config detector.yaml detect series.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
