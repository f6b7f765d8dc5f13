// Package main is the entry point of the leapgql CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/leapgql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
