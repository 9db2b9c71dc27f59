package main

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func init() {
	register("7a", day7a)
	register("7b", day7b)
}

func day7a(input string) (int64, error) {
	hands, err := parseLines(getLines(input), parseHand)
	if err != nil {
		return 0, err
	}
	return totalWinnings(hands, normalRules), nil
}

func day7b(input string) (int64, error) {
	hands, err := parseLines(getLines(input), parseHand)
	if err != nil {
		return 0, err
	}
	return totalWinnings(hands, jokerRules), nil
}

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

func (t handType) String() string {
	switch t {
	case highCard:
		return "high card"
	case onePair:
		return "one pair"
	case twoPair:
		return "two pair"
	case threeOfAKind:
		return "three of a kind"
	case fullHouse:
		return "full house"
	case fourOfAKind:
		return "four of a kind"
	case fiveOfAKind:
		return "five of a kind"
	}
	return fmt.Sprintf("handType(%d)", int(t))
}

// rules decide how a hand is classified and how cards rank against each
// other when two hands have the same type.
type rules struct {
	order  string // weakest card first
	jokers bool
}

var (
	normalRules = rules{order: "23456789TJQKA"}
	jokerRules  = rules{order: "J23456789TQKA", jokers: true}
)

const handSize = 5

type hand struct {
	cards string
	bid   int64
}

// parseHand parses a line like "32T3K 765".
func parseHand(s string) (hand, error) {
	var h hand
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return h, fmt.Errorf("bad hand %q", s)
	}
	h.cards = fields[0]
	if len(h.cards) != handSize {
		return h, fmt.Errorf("hand %q does not have %d cards", h.cards, handSize)
	}
	for i := 0; i < len(h.cards); i++ {
		if strings.IndexByte(normalRules.order, h.cards[i]) < 0 {
			return h, fmt.Errorf("bad card %q in hand %q", h.cards[i], h.cards)
		}
	}
	var err error
	if h.bid, err = strconv.ParseInt(fields[1], 10, 64); err != nil {
		return h, fmt.Errorf("bad bid %q", fields[1])
	}
	return h, nil
}

func countCards(cards string) map[byte]int {
	counts := make(map[byte]int)
	for i := 0; i < len(cards); i++ {
		counts[cards[i]]++
	}
	return counts
}

// classify determines a hand's type from how many of each card it holds.
func classify(counts map[byte]int) handType {
	var most int
	for _, n := range counts {
		most = max(most, n)
	}
	switch most {
	case 5:
		return fiveOfAKind
	case 4:
		return fourOfAKind
	case 3:
		if len(counts) == 2 {
			return fullHouse
		}
		return threeOfAKind
	case 2:
		if len(counts) == 3 {
			return twoPair
		}
		return onePair
	}
	return highCard
}

// classifyJokers treats every J as a copy of the most common other card.
func classifyJokers(counts map[byte]int) handType {
	jokers := counts['J']
	if jokers > 0 && len(counts) == 1 {
		return fiveOfAKind
	}
	var best byte
	var bestN int
	for card, n := range counts {
		if card == 'J' {
			continue
		}
		// Ties give the same type; break them by card so this is
		// deterministic.
		if n > bestN || (n == bestN && card > best) {
			best, bestN = card, n
		}
	}
	effective := make(map[byte]int, len(counts))
	for card, n := range counts {
		if card != 'J' {
			effective[card] = n
		}
	}
	effective[best] += jokers
	return classify(effective)
}

func (r rules) handType(h hand) handType {
	counts := countCards(h.cards)
	if r.jokers {
		return classifyJokers(counts)
	}
	return classify(counts)
}

// compareHands orders hands by type and then card by card from the left.
// It returns -1 if a is weaker than b, 1 if stronger, and 0 only for the
// same cards.
func compareHands(a, b hand, r rules) int {
	if c := cmp.Compare(r.handType(a), r.handType(b)); c != 0 {
		return c
	}
	for i := 0; i < len(a.cards) && i < len(b.cards); i++ {
		ra := strings.IndexByte(r.order, a.cards[i])
		rb := strings.IndexByte(r.order, b.cards[i])
		if c := cmp.Compare(ra, rb); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.cards), len(b.cards))
}

// totalWinnings ranks hands from weakest (rank 1) and sums rank*bid.
func totalWinnings(hands []hand, r rules) int64 {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b hand) int { return compareHands(a, b, r) })
	var total int64
	for i, h := range sorted {
		total += int64(i+1) * h.bid
	}
	return total
}
