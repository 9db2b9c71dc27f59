package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

func readInput(path string) (string, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}

// getLines splits input into lines, ignoring trailing newlines.
func getLines(input string) []string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// getBlocks splits input into blank-line separated chunks.
func getBlocks(input string) []string {
	input = strings.Trim(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n\n")
}

// parseLines parses each line into a record. Errors carry the 1-based line
// number.
func parseLines[T any](lines []string, parse func(string) (T, error)) ([]T, error) {
	records := make([]T, len(lines))
	for i, line := range lines {
		r, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records[i] = r
	}
	return records, nil
}

// parseInts parses whitespace-separated integers.
func parseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	ns := make([]int64, len(fields))
	for i, field := range fields {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}

func sum[T constraints.Integer](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}
