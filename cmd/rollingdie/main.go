// Command rollingdie solves rolling-die mazes with A* search.
//
//	rollingdie solve maze.txt fancy_manhattan
//	rollingdie compare maze.txt manhattan euclidean
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
