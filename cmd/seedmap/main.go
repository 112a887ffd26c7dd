// Command seedmap prints the lowest location reachable from the seeds of an
// almanac file, composing the seven stages into one function instead of
// walking every seed.
//
// Usage:
//
//	seedmap [input-file] [flags]
//
// Examples:
//
//	seedmap                          # reads ./input.txt, seed ranges
//	seedmap almanac.txt --mode=seeds # every seed on its own
//	seedmap almanac.txt --workers 4 --coalesce --timing
//	seedmap --config seedmap.yaml -v
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seedmap:", err)
		os.Exit(1)
	}
}
