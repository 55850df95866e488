// Package main provides the CLI entrypoint for merge-generator.
//
// merge-generator emits, for every struct marked //merge:generate, a merger
// that copies updatable fields from a newer value into an older one, plus a
// registry mapping each type to its merger:
//   - gen: both passes
//   - mergers: Pass A, writing the manifest
//   - registry: Pass B, reading the manifest
//   - plan: print the merge rules without generating
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
