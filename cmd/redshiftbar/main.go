// Package main is the entry point for the redshiftbar CLI.
package main

import (
	"os"

	"github.com/redshiftbar/redshiftbar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
