// Command aoc2022 prints the answers for one or all days of the 2022 edition.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/adventofcode/runner"
	"github.com/katalvlaran/adventofcode/y2022"
)

func main() {
	cmd := runner.NewCommand(2022, y2022.Registry(), runner.PlainDayFile)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
