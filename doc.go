// Package adventofcode holds puzzle solutions for the 2022, 2023 and 2024
// editions together with the small graph toolkit they share.
//
// Layout
//
//	puzzle/     Answer, Solver, Registry, MalformedError, context logger, parse helpers
//	gridgraph/  rectangular rune grids viewed as implicit graphs (Conn4 / Conn8)
//	bfs/        generic breadth-first search: multi-source, filters, early exit
//	dfs/        generic depth-first search and topological sort
//	dijkstra/   generic weighted shortest paths
//	runner/     input files, configuration, cobra command, parallel run-all
//	y2022/ y2023/ y2024/ one package per day, plus a Registry per edition
//	cmd/aocYYYY thin binaries wiring a Registry into runner.NewCommand
//
// Every day exposes
//
//	func Solve(ctx context.Context, input string) (puzzle.Answer, error)
//
// and reports bad input with puzzle.Malformed, never a panic.
//
// Running
//
//	go run ./cmd/aoc2022 --day 13 --data-dir ./data
//	go run ./cmd/aoc2024 --all --data-dir ./data -v
//
// 2022 and 2023 read data/dayN.txt; 2024 reads data/day0N.txt.
package adventofcode
