package aoc

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Range is an inclusive range of integers [Lo, Hi].
type Range struct {
	Lo, Hi int
}

// ParseRange parses "lo-hi".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("range %q: missing '-'", s)
	}
	var r Range
	var err error
	if r.Lo, err = strconv.Atoi(lo); err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	if r.Hi, err = strconv.Atoi(hi); err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	if r.Hi < r.Lo {
		return Range{}, fmt.Errorf("range %q: end before start", s)
	}
	return r, nil
}

func (r Range) Contains(v int) bool {
	return r.Lo <= v && v <= r.Hi
}

// Len returns the number of integers in r.
func (r Range) Len() int {
	return r.Hi - r.Lo + 1
}

// Ranges is a list of ranges, possibly overlapping.
type Ranges []Range

// Contains reports whether any range contains v.
func (rs Ranges) Contains(v int) bool {
	return slices.ContainsFunc(rs, func(r Range) bool { return r.Contains(v) })
}

// Merge returns the union of rs as sorted, disjoint, non-adjacent ranges.
// rs is not modified.
func (rs Ranges) Merge() Ranges {
	sorted := slices.Clone(rs)
	slices.SortFunc(sorted, func(a, b Range) int { return cmp.Compare(a.Lo, b.Lo) })
	var out Ranges
	for _, r := range sorted {
		if n := len(out); n > 0 && r.Lo <= out[n-1].Hi+1 {
			out[n-1].Hi = max(out[n-1].Hi, r.Hi)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Len returns the number of distinct integers covered by rs.
func (rs Ranges) Len() int {
	n := 0
	for _, r := range rs.Merge() {
		n += r.Len()
	}
	return n
}
