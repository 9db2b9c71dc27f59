package main

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

func init() {
	register("8a", day8a)
	register("8b", day8b)
}

var errUnreachable = errors.New("target node is unreachable")

type node struct {
	left, right string
}

type network struct {
	instructions string
	nodes        map[string]node
}

func day8a(input string) (int64, error) {
	n, err := parseNetwork(input)
	if err != nil {
		return 0, err
	}
	return n.steps("AAA", func(name string) bool { return name == "ZZZ" })
}

// day8b walks from every node ending in A at once. Each walk settles into a
// cycle that hits its Z node every k steps, so they all meet at lcm(k...).
func day8b(input string) (int64, error) {
	n, err := parseNetwork(input)
	if err != nil {
		return 0, err
	}
	var starts []string
	for name := range n.nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, errors.New("no start nodes ending in A")
	}
	sort.Strings(starts)
	total := int64(1)
	for _, start := range starts {
		k, err := n.steps(start, func(name string) bool { return strings.HasSuffix(name, "Z") })
		if err != nil {
			return 0, err
		}
		total = lcm(total, k)
	}
	return total, nil
}

var nodeRegexp = regexp.MustCompile(`^(\w+) = \((\w+), (\w+)\)$`)

// parseNetwork parses the instruction line, a blank line, and then nodes
// like "AAA = (BBB, CCC)".
func parseNetwork(input string) (network, error) {
	var n network
	blocks := getBlocks(input)
	if len(blocks) != 2 {
		return n, fmt.Errorf("got %d blocks of input; want 2", len(blocks))
	}
	n.instructions = strings.TrimSpace(blocks[0])
	if n.instructions == "" {
		return n, errors.New("no instructions")
	}
	for i := 0; i < len(n.instructions); i++ {
		if c := n.instructions[i]; c != 'L' && c != 'R' {
			return n, fmt.Errorf("bad instruction %q", c)
		}
	}
	n.nodes = make(map[string]node)
	for _, line := range getLines(blocks[1]) {
		m := nodeRegexp.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return n, fmt.Errorf("bad node %q", line)
		}
		if _, ok := n.nodes[m[1]]; ok {
			return n, fmt.Errorf("duplicate node %q", m[1])
		}
		n.nodes[m[1]] = node{left: m[2], right: m[3]}
	}
	return n, nil
}

// steps counts the moves from start to the first node satisfying done,
// repeating the instructions as often as needed.
func (n network) steps(start string, done func(string) bool) (int64, error) {
	type state struct {
		at string
		i  int
	}
	seen := make(map[state]struct{})
	at := start
	var steps int64
	for !done(at) {
		i := int(steps % int64(len(n.instructions)))
		s := state{at, i}
		if _, ok := seen[s]; ok {
			return 0, fmt.Errorf("walking from %s: %w", start, errUnreachable)
		}
		seen[s] = struct{}{}
		nd, ok := n.nodes[at]
		if !ok {
			return 0, fmt.Errorf("undefined node %q", at)
		}
		if n.instructions[i] == 'L' {
			at = nd.left
		} else {
			at = nd.right
		}
		steps++
	}
	return steps, nil
}

func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}
