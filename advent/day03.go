package main

import (
	"fmt"
	"regexp"
	"strconv"
)

func init() {
	register("3a", day3a)
	register("3b", day3b)
}

func day3a(input string) (int64, error) {
	schematic, err := parseSchematic(input)
	if err != nil {
		return 0, err
	}
	numbers, err := findNumbers(schematic)
	if err != nil {
		return 0, err
	}
	adj := newCoordSet(adjacent(findSymbols(schematic, isSymbol)))
	var total int64
	for _, n := range numbers {
		if isPartNumber(n, adj) {
			total += int64(n.value)
		}
	}
	return total, nil
}

func day3b(input string) (int64, error) {
	schematic, err := parseSchematic(input)
	if err != nil {
		return 0, err
	}
	numbers, err := findNumbers(schematic)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, at := range findSymbols(schematic, isGearSymbol) {
		if ratio, ok := gearNeighbors(at, numbers).ratio(); ok {
			total += ratio
		}
	}
	return total, nil
}

type coord struct {
	row, col int
}

func (c coord) add(c1 coord) coord {
	return coord{c.row + c1.row, c.col + c1.col}
}

// neighborOffsets lists the 8 surrounding cells in row-major order.
var neighborOffsets = []coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type coordSet map[coord]struct{}

func newCoordSet(coords []coord) coordSet {
	s := make(coordSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

func (s coordSet) contains(c coord) bool {
	_, ok := s[c]
	return ok
}

// A partNumber is a run of digits in the schematic along with every cell it
// covers, left to right.
type partNumber struct {
	value  int
	coords []coord
}

func parseSchematic(input string) ([]string, error) {
	lines := getLines(input)
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("schematic row %d has length %d; want %d", i+1, len(line), len(lines[0]))
		}
	}
	return lines, nil
}

var numberRegexp = regexp.MustCompile(`[0-9]+`)

func findNumbers(schematic []string) ([]partNumber, error) {
	var numbers []partNumber
	for row, line := range schematic {
		for _, loc := range numberRegexp.FindAllStringIndex(line, -1) {
			v, err := strconv.Atoi(line[loc[0]:loc[1]])
			if err != nil {
				return nil, err
			}
			n := partNumber{value: v}
			for col := loc[0]; col < loc[1]; col++ {
				n.coords = append(n.coords, coord{row, col})
			}
			numbers = append(numbers, n)
		}
	}
	return numbers, nil
}

func isSymbol(c byte) bool {
	return c != '.' && (c < '0' || c > '9')
}

func isGearSymbol(c byte) bool {
	return c == '*'
}

func findSymbols(schematic []string, symbol func(byte) bool) []coord {
	var coords []coord
	for row, line := range schematic {
		for col := 0; col < len(line); col++ {
			if symbol(line[col]) {
				coords = append(coords, coord{row, col})
			}
		}
	}
	return coords
}

// adjacent returns the 8-neighborhood of every coordinate. The result may
// contain duplicates and cells outside the grid.
func adjacent(coords []coord) []coord {
	adj := make([]coord, 0, len(coords)*len(neighborOffsets))
	for _, c := range coords {
		for _, d := range neighborOffsets {
			adj = append(adj, c.add(d))
		}
	}
	return adj
}

func isPartNumber(n partNumber, symbolAdjacent coordSet) bool {
	for _, c := range n.coords {
		if symbolAdjacent.contains(c) {
			return true
		}
	}
	return false
}

type gear struct {
	at        coord
	neighbors []partNumber
}

func gearNeighbors(at coord, numbers []partNumber) gear {
	g := gear{at: at}
	adj := newCoordSet(adjacent([]coord{at}))
	for _, n := range numbers {
		if isPartNumber(n, adj) {
			g.neighbors = append(g.neighbors, n)
		}
	}
	return g
}

// ratio is the product of the two neighboring numbers. It is only defined
// for a '*' with exactly two neighbors.
func (g gear) ratio() (int64, bool) {
	if len(g.neighbors) != 2 {
		return 0, false
	}
	return int64(g.neighbors[0].value) * int64(g.neighbors[1].value), true
}
