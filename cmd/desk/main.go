// Package main is the front desk command line: the room board in the
// terminal, contract generation and database migrations.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
