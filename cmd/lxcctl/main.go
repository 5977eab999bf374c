// Package main is the entry point for the lxcctl CLI binary.
package main

import (
	"os"

	"github.com/irahardianto/lxcctl/cmd/lxcctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
