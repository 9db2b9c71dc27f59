package main

import (
	"errors"
	"fmt"
	"strings"
)

func init() {
	register("5a", day5a)
	register("5b", day5b)
}

var (
	errNoSeeds  = errors.New("almanac has no seeds")
	errOddSeeds = errors.New("seed ranges need an even number of values")
)

type mapRange struct {
	dst, src, length int64
}

// An almanacMap translates numbers of one category into another.
type almanacMap struct {
	from, to string
	ranges   []mapRange
}

type almanac struct {
	seeds []int64
	maps  []almanacMap
}

func day5a(input string) (int64, error) {
	a, err := parseAlmanac(input)
	if err != nil {
		return 0, err
	}
	if len(a.seeds) == 0 {
		return 0, errNoSeeds
	}
	lowest := a.location(a.seeds[0])
	for _, seed := range a.seeds[1:] {
		lowest = min(lowest, a.location(seed))
	}
	return lowest, nil
}

func day5b(input string) (int64, error) {
	a, err := parseAlmanac(input)
	if err != nil {
		return 0, err
	}
	ivs, err := seedIntervals(a.seeds)
	if err != nil {
		return 0, err
	}
	if len(ivs) == 0 {
		return 0, errNoSeeds
	}
	return lowestStart(a.locationIntervals(ivs)), nil
}

func parseAlmanac(input string) (almanac, error) {
	var a almanac
	blocks := getBlocks(input)
	if len(blocks) == 0 {
		return a, errors.New("empty almanac")
	}
	seeds, ok := strings.CutPrefix(blocks[0], "seeds:")
	if !ok {
		return a, fmt.Errorf("bad seeds line %q", blocks[0])
	}
	var err error
	if a.seeds, err = parseInts(seeds); err != nil {
		return a, fmt.Errorf("bad seeds: %w", err)
	}
	for _, block := range blocks[1:] {
		m, err := parseAlmanacMap(block)
		if err != nil {
			return a, err
		}
		if n := len(a.maps); n > 0 && a.maps[n-1].to != m.from {
			return a, fmt.Errorf("%s-to-%s map follows %s-to-%s map", m.from, m.to, a.maps[n-1].from, a.maps[n-1].to)
		}
		a.maps = append(a.maps, m)
	}
	return a, nil
}

// parseAlmanacMap parses a block like
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
func parseAlmanacMap(block string) (almanacMap, error) {
	var m almanacMap
	lines := getLines(strings.TrimLeft(block, "\n"))
	if len(lines) == 0 {
		return m, errors.New("empty map block")
	}
	name, ok := strings.CutSuffix(lines[0], " map:")
	if !ok {
		return m, fmt.Errorf("bad map title %q", lines[0])
	}
	m.from, m.to, ok = strings.Cut(name, "-to-")
	if !ok {
		return m, fmt.Errorf("bad map title %q", lines[0])
	}
	for _, line := range lines[1:] {
		ns, err := parseInts(line)
		if err != nil || len(ns) != 3 {
			return m, fmt.Errorf("bad range %q in %s map", line, name)
		}
		m.ranges = append(m.ranges, mapRange{dst: ns[0], src: ns[1], length: ns[2]})
	}
	return m, nil
}

// lookup maps n through the first range whose source contains it. Numbers
// outside every range map to themselves.
func (m almanacMap) lookup(n int64) int64 {
	for _, r := range m.ranges {
		if n >= r.src && n < r.src+r.length {
			return r.dst + (n - r.src)
		}
	}
	return n
}

func (a almanac) location(seed int64) int64 {
	n := seed
	for _, m := range a.maps {
		n = m.lookup(n)
	}
	return n
}

// interval is the half-open range [start, end).
type interval struct {
	start, end int64
}

// seedIntervals reads seeds as (start, length) pairs.
func seedIntervals(seeds []int64) ([]interval, error) {
	if len(seeds)%2 != 0 {
		return nil, errOddSeeds
	}
	var ivs []interval
	for i := 0; i < len(seeds); i += 2 {
		if seeds[i+1] <= 0 {
			continue
		}
		ivs = append(ivs, interval{seeds[i], seeds[i] + seeds[i+1]})
	}
	return ivs, nil
}

// mapIntervals is lookup applied to every number in ivs at once. Intervals
// are split at range boundaries; a piece claimed by a range is shifted and
// takes no further part, so earlier ranges win as in lookup.
func (m almanacMap) mapIntervals(ivs []interval) []interval {
	var mapped []interval
	pending := append([]interval(nil), ivs...)
	for _, r := range m.ranges {
		shift := r.dst - r.src
		var rest []interval
		for _, iv := range pending {
			lo := max(iv.start, r.src)
			hi := min(iv.end, r.src+r.length)
			if lo >= hi {
				rest = append(rest, iv)
				continue
			}
			mapped = append(mapped, interval{lo + shift, hi + shift})
			if iv.start < lo {
				rest = append(rest, interval{iv.start, lo})
			}
			if hi < iv.end {
				rest = append(rest, interval{hi, iv.end})
			}
		}
		pending = rest
	}
	return append(mapped, pending...)
}

func (a almanac) locationIntervals(ivs []interval) []interval {
	for _, m := range a.maps {
		ivs = m.mapIntervals(ivs)
	}
	return ivs
}

func lowestStart(ivs []interval) int64 {
	lowest := ivs[0].start
	for _, iv := range ivs[1:] {
		lowest = min(lowest, iv.start)
	}
	return lowest
}
