package aoc

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular grid of cells indexed as g[y][x].
type Grid[T any] [][]T

// ParseGrid builds a grid with one row per line, converting each rune of
// the line with cell.
func ParseGrid[T any](lines []string, cell func(rune) T) Grid[T] {
	g := make(Grid[T], 0, len(lines))
	for _, line := range lines {
		row := make([]T, 0, len(line))
		for _, r := range line {
			row = append(row, cell(r))
		}
		g = append(g, row)
	}
	return g
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell, row by row.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Count returns the number of cells for which match returns true.
func (g Grid[T]) Count(match func(T) bool) int {
	n := 0
	g.ForEach(func(_ Pt, v T) {
		if match(v) {
			n++
		}
	})
	return n
}

// CountNeighbors returns how many of the (up to 8) cells around p are in
// the grid and satisfy match.
func (g Grid[T]) CountNeighbors(p Pt, match func(T) bool) int {
	n := 0
	p.ForNeighbors(func(q Pt) bool {
		if v, ok := g.AtOk(q); ok && match(v) {
			n++
		}
		return true
	})
	return n
}

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a hash of the contents of g.
func (g Grid[T]) Hash() deephash.Sum {
	hashersMu.Lock()
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ForNeighbors calls f for each of the 8 points around p until f returns
// false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
