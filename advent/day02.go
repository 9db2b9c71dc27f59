package main

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
}

// bag holds a count of cubes per color. A round of a game is the same shape.
type bag struct {
	red, green, blue int
}

type game struct {
	id     int
	rounds []bag
}

var elfBag = bag{red: 12, green: 13, blue: 14}

func day2a(input string) (int64, error) {
	games, err := parseLines(getLines(input), parseGame)
	if err != nil {
		return 0, err
	}
	var total int64
gameLoop:
	for _, g := range games {
		for _, round := range g.rounds {
			if !round.possibleWithin(elfBag) {
				continue gameLoop
			}
		}
		total += int64(g.id)
	}
	return total, nil
}

func day2b(input string) (int64, error) {
	games, err := parseLines(getLines(input), parseGame)
	if err != nil {
		return 0, err
	}
	powers := make([]int64, len(games))
	for i, g := range games {
		powers[i] = minimumBag(g.rounds).power()
	}
	return sum(powers), nil
}

// parseGame parses a line like "Game 1: 3 blue, 4 red; 1 red, 2 green".
func parseGame(s string) (game, error) {
	var g game
	head, rounds, ok := strings.Cut(s, ":")
	if !ok {
		return g, fmt.Errorf("missing colon in game %q", s)
	}
	idStr, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return g, fmt.Errorf("bad game header %q", head)
	}
	var err error
	g.id, err = strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return g, fmt.Errorf("bad game id %q", idStr)
	}
	for _, r := range strings.Split(rounds, ";") {
		round, err := parseRound(strings.TrimSpace(r))
		if err != nil {
			return g, err
		}
		g.rounds = append(g.rounds, round)
	}
	return g, nil
}

// parseRound parses a round like "3 blue, 4 red". Missing colors are 0.
func parseRound(s string) (bag, error) {
	var b bag
	if s == "" {
		return b, nil
	}
	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return b, fmt.Errorf("bad cube count %q", part)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return b, fmt.Errorf("bad cube count %q", part)
		}
		switch fields[1] {
		case "red":
			b.red = n
		case "green":
			b.green = n
		case "blue":
			b.blue = n
		default:
			return b, fmt.Errorf("unknown color %q", fields[1])
		}
	}
	return b, nil
}

func (b bag) possibleWithin(capacity bag) bool {
	return b.red <= capacity.red && b.green <= capacity.green && b.blue <= capacity.blue
}

// minimumBag is the smallest bag that makes every round possible.
func minimumBag(rounds []bag) bag {
	var m bag
	for _, r := range rounds {
		m.red = max(m.red, r.red)
		m.green = max(m.green, r.green)
		m.blue = max(m.blue, r.blue)
	}
	return m
}

func (b bag) power() int64 {
	return int64(b.red) * int64(b.green) * int64(b.blue)
}
