package main

import "testing"

const gamesSample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestParseRound(t *testing.T) {
	for _, tt := range []struct {
		round string
		want  bag
	}{
		{"2 green", bag{green: 2}},
		{"3 blue, 4 red", bag{red: 4, blue: 3}},
		{"1 red, 2 green, 6 blue", bag{red: 1, green: 2, blue: 6}},
	} {
		got, err := parseRound(tt.round)
		if err != nil {
			t.Errorf("parseRound(%q): %v", tt.round, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseRound(%q): got %+v; want %+v", tt.round, got, tt.want)
		}
	}

	for _, bad := range []string{"3 purple", "blue", "x red"} {
		if _, err := parseRound(bad); err == nil {
			t.Errorf("parseRound(%q): got nil error", bad)
		}
	}
}

func TestParseGame(t *testing.T) {
	got, err := parseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	if err != nil {
		t.Fatal(err)
	}
	want := game{
		id: 1,
		rounds: []bag{
			{red: 4, blue: 3},
			{red: 1, green: 2, blue: 6},
			{green: 2},
		},
	}
	checkEqual(t, got, want)

	if _, err := parseGame("Round 1: 3 blue"); err == nil {
		t.Error("got nil error for bad header")
	}
}

func TestPossibleWithin(t *testing.T) {
	capacity := bag{red: 4, green: 4, blue: 4}
	if !(bag{red: 1, green: 2, blue: 3}).possibleWithin(capacity) {
		t.Error("small round should be possible")
	}
	if (bag{red: 12, green: 2, blue: 3}).possibleWithin(capacity) {
		t.Error("round with too many red should be impossible")
	}
	if !capacity.possibleWithin(capacity) {
		t.Error("round equal to the bag should be possible")
	}
}

func TestMinimumBag(t *testing.T) {
	for _, tt := range []struct {
		rounds []bag
		want   bag
	}{
		{nil, bag{}},
		{[]bag{{1, 1, 1}}, bag{1, 1, 1}},
		{[]bag{{1, 1, 2}, {3, 1, 1}}, bag{3, 1, 2}},
	} {
		if got := minimumBag(tt.rounds); got != tt.want {
			t.Errorf("minimumBag(%+v): got %+v; want %+v", tt.rounds, got, tt.want)
		}
	}
}

func TestPower(t *testing.T) {
	if got, want := (bag{red: 2, green: 3, blue: 5}).power(), int64(30); got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestDay2(t *testing.T) {
	if got, want := runSolution(t, day2a, gamesSample), int64(8); got != want {
		t.Errorf("2a: got %d; want %d", got, want)
	}
	if got, want := runSolution(t, day2b, gamesSample), int64(2286); got != want {
		t.Errorf("2b: got %d; want %d", got, want)
	}
}
