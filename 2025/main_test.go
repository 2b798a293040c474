package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joltage/aoc"
)

func TestSamples(t *testing.T) {
	require.Empty(t, aoc.CheckSamples(sources, &solver{}))
}

func TestDial(t *testing.T) {
	steps := []struct {
		rot    string
		pos    int
		zeros  int
		clicks int
	}{
		{"L68", 82, 0, 1},
		{"L30", 52, 0, 1},
		{"R48", 0, 1, 2},
		{"L5", 95, 1, 2},
		{"R60", 55, 1, 3},
		{"L55", 0, 2, 4},
		{"L1", 99, 2, 4},
		{"L99", 0, 3, 5},
		{"R14", 14, 3, 5},
		{"L82", 32, 3, 6},
	}
	d := newDial()
	for _, st := range steps {
		delta, err := parseRotation(st.rot)
		require.NoError(t, err)
		d.rotate(delta)
		require.Equal(t, st.pos, d.pos, "after %s", st.rot)
		require.Equal(t, st.zeros, d.zeros, "after %s", st.rot)
		require.Equal(t, st.clicks, d.clicks, "after %s", st.rot)
	}
}

func TestDialFullTurns(t *testing.T) {
	d := newDial()
	d.rotate(1000)
	require.Equal(t, 50, d.pos)
	require.Equal(t, 10, d.clicks)

	d = newDial()
	d.rotate(-1000)
	require.Equal(t, 50, d.pos)
	require.Equal(t, 10, d.clicks)

	d = newDial()
	d.rotate(-50)
	d.rotate(-100)
	require.Equal(t, 0, d.pos)
	require.Equal(t, 2, d.zeros)
	require.Equal(t, 2, d.clicks)
}

func TestParseRotation(t *testing.T) {
	for in, want := range map[string]int{"L68": -68, "R48": 48, "R0": 0} {
		got, err := parseRotation(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "L", "X5", "Rfive"} {
		_, err := parseRotation(bad)
		require.Error(t, err, bad)
	}
}

func TestInvalidIDs(t *testing.T) {
	tests := []struct {
		r       aoc.Range
		twice   []int
		atLeast []int
	}{
		{aoc.Range{Lo: 11, Hi: 22}, []int{11, 22}, []int{11, 22}},
		{aoc.Range{Lo: 95, Hi: 115}, []int{99}, []int{99, 111}},
		{aoc.Range{Lo: 998, Hi: 1012}, []int{1010}, []int{999, 1010}},
		{aoc.Range{Lo: 1188511880, Hi: 1188511890}, []int{1188511885}, []int{1188511885}},
		{aoc.Range{Lo: 1698522, Hi: 1698528}, nil, nil},
		{aoc.Range{Lo: 565653, Hi: 565659}, nil, []int{565656}},
		{aoc.Range{Lo: 824824821, Hi: 824824827}, nil, []int{824824824}},
		{aoc.Range{Lo: 2121212118, Hi: 2121212124}, nil, []int{2121212121}},
	}
	collect := func(r aoc.Range, invalid func(int) bool) []int {
		var out []int
		for id := r.Lo; id <= r.Hi; id++ {
			if invalid(id) {
				out = append(out, id)
			}
		}
		return out
	}
	for _, tt := range tests {
		require.Equal(t, tt.twice, collect(tt.r, repeatedTwice), "twice %v", tt.r)
		require.Equal(t, tt.atLeast, collect(tt.r, repeatedAtLeastTwice), "at least twice %v", tt.r)
	}
}

func TestParseIDRanges(t *testing.T) {
	rs, err := parseIDRanges("11-22,95-115\n")
	require.NoError(t, err)
	require.Equal(t, aoc.Ranges{{Lo: 11, Hi: 22}, {Lo: 95, Hi: 115}}, rs)

	_, err = parseIDRanges("11-22,oops")
	require.Error(t, err)
}

func TestTotalJoltage(t *testing.T) {
	banks := []string{"987654321111111", "811111111111119", "234234234234278", "818181911112111"}
	require.Equal(t, 357, totalJoltage(banks, 2))
	require.Equal(t, 3121910778619, totalJoltage(banks, 12))
	require.Zero(t, totalJoltage(nil, 2))
}

func TestAccessibleSample(t *testing.T) {
	// x marks the rolls a forklift can reach.
	marked := []string{
		"..xx.xx@x.",
		"x@@.@.@.@@",
		"@@@@@.x.@@",
		"@.@@@@..@.",
		"x@.@@@@.@x",
		".@@@@@@@.@",
		".@.@.@.@@@",
		"x.@@@.@@@@",
		".@@@@@@@@.",
		"x.x.@@@.x.",
	}
	var lines []string
	var want []aoc.Pt
	for y, row := range marked {
		for x, c := range row {
			if c == 'x' {
				want = append(want, aoc.Pt{X: x, Y: y})
			}
		}
		lines = append(lines, strings.ReplaceAll(row, "x", "@"))
	}
	g := parseRolls(lines)
	require.Equal(t, want, accessible(g))
	require.Len(t, want, 13)
	require.Equal(t, 43, removeAccessible(g))
}

func TestRemoveAccessible(t *testing.T) {
	g := parseRolls([]string{
		"@@@",
		"@@@",
		"@@@",
	})
	require.Len(t, accessible(g), 4, "only the corners")
	require.Equal(t, 9, removeAccessible(g))
	require.Zero(t, g.Count(isRoll))
}

func TestParseInventory(t *testing.T) {
	inv, err := parseInventory("3-5\n10-14\n\n1\n5\n")
	require.NoError(t, err)
	require.Equal(t, aoc.Ranges{{Lo: 3, Hi: 5}, {Lo: 10, Hi: 14}}, inv.fresh)
	require.Equal(t, []int{1, 5}, inv.ids)

	_, err = parseInventory("3-5\n")
	require.ErrorContains(t, err, "blank line")

	_, err = parseInventory("3-5\nx\n\n1\n")
	require.ErrorContains(t, err, "line 2")

	_, err = parseInventory("3-5\n\n1\nnope\n")
	require.ErrorContains(t, err, "line 4")

	inv, err = parseInventory("3-5\n\n\n\n7\n")
	require.NoError(t, err)
	require.Equal(t, []int{7}, inv.ids)

	_, err = parseInventory("3-5\n\n\n\n7\nbad\n")
	require.ErrorContains(t, err, "line 6", "extra blank lines still count")
}
