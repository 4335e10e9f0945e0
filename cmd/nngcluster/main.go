// Command nngcluster is the CLI front end for the size-constrained
// nearest-neighbor clustering engine: package cluster, backed by either
// a live search oracle (package oracle) or a precomputed nearest-neighbor
// digraph (package digraph) and a seed-selection heuristic (package seed).
package main

import "github.com/katalvlaran/nngcluster/cmd/nngcluster/cmd"

func main() {
	cmd.Execute()
}
