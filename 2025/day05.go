package main

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/joltage/aoc"
)

type inventory struct {
	fresh aoc.Ranges
	ids   []int
}

// parseInventory parses the fresh ID ranges, a blank line, then the
// available IDs, one per line. Errors name the line of in they came from.
func parseInventory(in string) (inventory, error) {
	lines := strings.Split(strings.TrimRight(strings.ReplaceAll(in, "\r\n", "\n"), "\n"), "\n")
	blank := slices.IndexFunc(lines, func(line string) bool {
		return strings.TrimSpace(line) == ""
	})
	if blank < 0 {
		return inventory{}, errors.New("no blank line between ranges and ids")
	}
	var inv inventory
	for i, line := range lines[:blank] {
		r, err := aoc.ParseRange(line)
		if err != nil {
			return inventory{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		inv.fresh = append(inv.fresh, r)
	}
	for i, line := range lines[blank+1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, err := strconv.Atoi(line)
		if err != nil {
			return inventory{}, fmt.Errorf("line %d: %w", blank+2+i, err)
		}
		inv.ids = append(inv.ids, id)
	}
	return inv, nil
}

func (s solver) inventory() inventory {
	inv, err := parseInventory(string(s.Input()))
	if err != nil {
		log.Fatal(err)
	}
	return inv
}

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func (s solver) D5p1() any {
	inv := s.inventory()
	n := 0
	for _, id := range inv.ids {
		if inv.fresh.Contains(id) {
			n++
		}
	}
	return n
}

// want=14
func (s solver) D5p2() any {
	fresh := s.inventory().fresh
	s.Debug("merged ranges:", len(fresh.Merge()), "of", len(fresh))
	return fresh.Len()
}
