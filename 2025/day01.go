package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/joltage/aoc"
)

const dialSize = 100

type dial struct {
	pos    int
	zeros  int // rotations that ended at 0
	clicks int // times any click landed on 0
}

func newDial() *dial { return &dial{pos: 50} }

func (d *dial) rotate(delta int) {
	wasZero := d.pos == 0
	v := d.pos + delta
	d.clicks += abs(v / dialSize)
	if !wasZero && v <= 0 {
		d.clicks++
	}
	d.pos = aoc.Mod(v, dialSize)
	if d.pos == 0 {
		d.zeros++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// parseRotation parses "L<n>" or "R<n>" into a signed click count.
func parseRotation(s string) (int, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("rotation %q too short", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, fmt.Errorf("rotation %q: %w", s, err)
	}
	switch s[0] {
	case 'L':
		return -n, nil
	case 'R':
		return n, nil
	}
	return 0, fmt.Errorf("rotation %q: direction must be L or R", s)
}

func (s solver) turnDial() *dial {
	d := newDial()
	s.ForLinesY(func(y int, line string) {
		delta, err := parseRotation(line)
		if err != nil {
			log.Fatalf("line %d: %v", y+1, err)
		}
		d.rotate(delta)
		s.Debugf("%s -> %d", line, d.pos)
	})
	return d
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	return s.turnDial().zeros
}

// want=6
func (s solver) D1p2() any {
	return s.turnDial().clicks
}
