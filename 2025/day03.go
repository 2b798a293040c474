package main

import (
	"github.com/joltage/aoc"
)

// totalJoltage sums the best k-battery joltage of every bank. Banks are
// independent, so they are solved concurrently.
func totalJoltage(banks []string, k int) int {
	return aoc.ParallelMapFold(banks,
		func(bank string) int {
			return aoc.Joltage(aoc.Digits(bank), k)
		},
		func(sum, j int) int { return sum + j },
		0,
	)
}

func (s solver) banks() []string {
	var banks []string
	s.ForLines(func(line string) {
		if line != "" {
			banks = append(banks, line)
		}
	})
	return banks
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	return totalJoltage(s.banks(), 2)
}

// want=3121910778619
func (s solver) D3p2() any {
	return totalJoltage(s.banks(), 12)
}
