package main

import (
	"fmt"
	"strings"
)

func init() {
	register("4a", day4a)
	register("4b", day4b)
}

type scratchcard struct {
	winning []int64
	have    []int64
}

func day4a(input string) (int64, error) {
	cards, err := parseLines(getLines(input), parseScratchcard)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range cards {
		total += points(c.matches())
	}
	return total, nil
}

func day4b(input string) (int64, error) {
	cards, err := parseLines(getLines(input), parseScratchcard)
	if err != nil {
		return 0, err
	}
	return sum(cardCopies(cards)), nil
}

// parseScratchcard parses a line like "Card 1: 41 48 83 | 83 86  6 31".
func parseScratchcard(s string) (scratchcard, error) {
	var c scratchcard
	_, numbers, ok := strings.Cut(s, ":")
	if !ok {
		return c, fmt.Errorf("missing colon in card %q", s)
	}
	winning, have, ok := strings.Cut(numbers, "|")
	if !ok {
		return c, fmt.Errorf("missing | in card %q", s)
	}
	var err error
	if c.winning, err = parseInts(winning); err != nil {
		return c, fmt.Errorf("bad winning numbers in card %q: %w", s, err)
	}
	if c.have, err = parseInts(have); err != nil {
		return c, fmt.Errorf("bad numbers in card %q: %w", s, err)
	}
	return c, nil
}

// intersect returns the elements of a that are also in b, in a's order.
func intersect(a, b []int64) []int64 {
	inB := make(map[int64]struct{}, len(b))
	for _, n := range b {
		inB[n] = struct{}{}
	}
	var both []int64
	for _, n := range a {
		if _, ok := inB[n]; ok {
			both = append(both, n)
		}
	}
	return both
}

func (c scratchcard) matches() int {
	return len(intersect(c.winning, c.have))
}

func points(matches int) int64 {
	if matches == 0 {
		return 0
	}
	return 1 << (matches - 1)
}

// cardCopies returns how many copies of each card are held once every win
// has been cashed in. A card with n matches wins one more copy of each of
// the next n cards, for every copy of it held.
func cardCopies(cards []scratchcard) []int64 {
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}
