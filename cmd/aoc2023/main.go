// Command aoc2023 prints the answers for one or all days of the 2023 edition.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/adventofcode/runner"
	"github.com/katalvlaran/adventofcode/y2023"
)

func main() {
	cmd := runner.NewCommand(2023, y2023.Registry(), runner.PlainDayFile)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
