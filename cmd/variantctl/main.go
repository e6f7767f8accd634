// Package main provides the CLI entrypoint for variantctl.
//
// variantctl loads a product catalog from YAML and runs the variant engine
// against it:
//   - domain: list attributes and values
//   - matrix: print the combination matrix
//   - availability: flag selectable values for a partial selection
//   - clean / valid: check a selection for consistency
//   - apply: simulate a user click, with selection repair
//   - resolve: find the variants matching a selection
//   - closest: rank values by similarity
package main

import (
	"fmt"
	"os"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
