// Command 2025 solves the Advent of Code 2025 puzzles.
package main

import (
	"embed"

	"github.com/joltage/aoc"
)

func main() {
	aoc.Run(2025, sources, &solver{})
}

// Samples are read from the doc comments of the solutions.
//
//go:embed day*.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
