package main

import (
	"github.com/joltage/aoc"
)

const roll = '@'

func isRoll(c rune) bool { return c == roll }

func parseRolls(lines []string) aoc.Grid[rune] {
	return aoc.ParseGrid(lines, func(r rune) rune { return r })
}

// accessible returns the rolls with fewer than four rolls around them.
func accessible(g aoc.Grid[rune]) []aoc.Pt {
	var pts []aoc.Pt
	g.ForEach(func(p aoc.Pt, c rune) {
		if isRoll(c) && g.CountNeighbors(p, isRoll) < 4 {
			pts = append(pts, p)
		}
	})
	return pts
}

// removeAccessible removes accessible rolls in rounds until a round leaves
// the grid unchanged, and returns how many were removed in total.
func removeAccessible(g aoc.Grid[rune]) int {
	removed := 0
	for {
		before := g.Hash()
		pts := accessible(g)
		for _, p := range pts {
			g.Set(p, '.')
		}
		removed += len(pts)
		if g.Hash() == before {
			return removed
		}
	}
}

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func (s solver) D4p1() any {
	return len(accessible(parseRolls(s.Lines())))
}

// want=43
func (s solver) D4p2() any {
	g := parseRolls(s.Lines())
	n := removeAccessible(g)
	s.Debugf("%d rolls left", g.Count(isRoll))
	return n
}
