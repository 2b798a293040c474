package aoc

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	in := make([]int, 0, len(line))
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// Undigits returns the number whose decimal digits, most significant
// first, are ds. It panics if any element is not in 0-9.
func Undigits(ds []int) int {
	n := 0
	for _, d := range ds {
		if d < 0 || d > 9 {
			panic(fmt.Sprintf("not a digit: %d", d))
		}
		n = n*10 + d
	}
	return n
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Mod returns x modulo m in [0, m), unlike % which keeps the sign of x.
func Mod[T constraints.Signed](x, m T) T {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Parallel calls f on each element of in in its own goroutine and
// returns the results in the order of in.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
