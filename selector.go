package aoc

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var errEmpty = errors.New("select from empty sequence")

// SelectMaxIndices returns the indices of the k elements of seq that,
// kept in their original order, form the greatest sequence compared
// element by element. The indices are strictly increasing.
//
// Each pick takes the largest element of the window that still leaves
// enough elements after it for the remaining picks. Equal maxima resolve
// to the leftmost one, which leaves the widest window for the next pick;
// taking the rightmost instead can lose, as for 9,9,8 with k=2 (98, not 99).
func SelectMaxIndices[T constraints.Ordered](seq []T, k int) ([]int, error) {
	if len(seq) == 0 {
		return nil, errEmpty
	}
	if k < 1 || k > len(seq) {
		return nil, fmt.Errorf("select %d of %d elements: k out of range", k, len(seq))
	}
	out := make([]int, 0, k)
	skip := 0
	for remaining := k; remaining > 0; remaining-- {
		// The last remaining-1 elements must stay available.
		end := len(seq) - (remaining - 1)
		best := skip
		for i := skip + 1; i < end; i++ {
			if seq[i] > seq[best] { // strictly greater: ties stay leftmost
				best = i
			}
		}
		out = append(out, best)
		skip = best + 1
	}
	return out, nil
}

// SelectMax is like SelectMaxIndices but returns the selected elements.
func SelectMax[T constraints.Ordered](seq []T, k int) ([]T, error) {
	ix, err := SelectMaxIndices(seq, k)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(ix))
	for i, j := range ix {
		out[i] = seq[j]
	}
	return out, nil
}

// MaxSubsequence is like SelectMax but panics if k is out of range.
func MaxSubsequence[T constraints.Ordered](seq []T, k int) []T {
	return MustGet(SelectMax(seq, k))
}

// Joltage returns the largest k-digit number that can be formed from the
// digits of bank without reordering them.
func Joltage(bank []int, k int) int {
	return Undigits(MaxSubsequence(bank, k))
}
