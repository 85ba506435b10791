// Habitkeep - a local-first habit tracking CLI.
package main

import (
	"os"

	"github.com/mkenter/habitkeep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
