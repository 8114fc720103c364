// Command aoc2024 prints the answers for one or all days of the 2024 edition.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/adventofcode/runner"
	"github.com/katalvlaran/adventofcode/y2024"
)

func main() {
	cmd := runner.NewCommand(2024, y2024.Registry(), runner.PaddedDayFile)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
