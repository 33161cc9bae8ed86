// SPDX-License-Identifier: MIT
// Command transit answers questions about a transit network described by a
// station file: the shortest travel time between two stations, the stations
// around one, traversal orders, summary statistics and a DOT drawing. It can
// also generate synthetic networks.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
