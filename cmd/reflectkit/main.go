// Package main provides the CLI entrypoint for reflectkit.
//
// reflectkit loads Go packages (AST + go/types) and prints:
//   - the fields of a struct and of its embedded ancestors
//   - its getters and setters
//   - the pairing of fields with accessors
package main

import (
	"os"

	"reflectkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
