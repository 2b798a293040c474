package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/joltage/aoc"
)

// repeats reports whether id is a block of digits repeated n times.
func repeats(id string, n int) bool {
	if n < 2 || len(id)%n != 0 {
		return false
	}
	block := id[:len(id)/n]
	return strings.Repeat(block, n) == id
}

// repeatedTwice reports whether id is some block of digits repeated
// exactly twice, like 6464.
func repeatedTwice(id int) bool {
	return repeats(strconv.Itoa(id), 2)
}

// repeatedAtLeastTwice reports whether id is some block of digits
// repeated two or more times, like 121212.
func repeatedAtLeastTwice(id int) bool {
	s := strconv.Itoa(id)
	for n := 2; n <= len(s); n++ {
		if repeats(s, n) {
			return true
		}
	}
	return false
}

func parseIDRanges(line string) (aoc.Ranges, error) {
	var rs aoc.Ranges
	for _, f := range strings.Split(strings.TrimSpace(line), ",") {
		if f == "" {
			continue
		}
		r, err := aoc.ParseRange(f)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}

func sumInvalid(rs aoc.Ranges, invalid func(int) bool) int {
	sum := 0
	for _, r := range rs {
		for id := r.Lo; id <= r.Hi; id++ {
			if invalid(id) {
				sum += id
			}
		}
	}
	return sum
}

func (s solver) idRanges() aoc.Ranges {
	rs, err := parseIDRanges(string(s.Input()))
	if err != nil {
		log.Fatal(err)
	}
	return rs
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	return sumInvalid(s.idRanges(), repeatedTwice)
}

// want=4174379265
func (s solver) D2p2() any {
	return sumInvalid(s.idRanges(), repeatedAtLeastTwice)
}
