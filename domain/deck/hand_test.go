package deck

import (
	"testing"

	"github.com/paulhankin/poker"
)

func TestEval7OrderIndependent(t *testing.T) {
	hand := [7]Card{
		{Ten, Spade}, {Jack, Spade}, {Queen, Spade}, {King, Spade}, {Ace, Spade},
		{Two, Club}, {Three, Diamond},
	}
	reversed := [7]Card{}
	for i, c := range hand {
		reversed[6-i] = c
	}
	a, err := Eval7(hand)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Eval7(reversed)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same cards scored %d and %d", a, b)
	}
}

func TestEval7DistinguishesHands(t *testing.T) {
	royalFlush := [7]Card{
		{Ten, Spade}, {Jack, Spade}, {Queen, Spade}, {King, Spade}, {Ace, Spade},
		{Two, Club}, {Three, Diamond},
	}
	highCard := [7]Card{
		{Two, Spade}, {Four, Heart}, {Six, Club}, {Eight, Diamond}, {Ten, Club},
		{Queen, Heart}, {Three, Spade},
	}
	a, err := Eval7(royalFlush)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Eval7(highCard)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("royal flush and high card both scored %d", a)
	}
}

func TestDescribeRoyalFlush(t *testing.T) {
	hand := [7]Card{
		{Ten, Spade}, {Jack, Spade}, {Queen, Spade}, {King, Spade}, {Ace, Spade},
		{Two, Club}, {Three, Diamond},
	}
	desc, err := Describe(hand)
	if err != nil {
		t.Fatal(err)
	}
	if desc != "A straight flush" {
		t.Fatalf("expected A straight flush, got %q", desc)
	}
}

func TestDescribeTopSeven(t *testing.T) {
	d := New()
	sorted := d.SortedBy(SpadesHigh)
	var top [7]Card
	copy(top[:], sorted[len(sorted)-7:])
	for i, c := range top[3:] {
		if c.Rank != Ace {
			t.Fatalf("at %d: expected an ace, got %s", i+3, c)
		}
	}
	fourAces := [7]Card{
		{Ace, Club}, {Ace, Diamond}, {Ace, Heart}, {Ace, Spade},
		{King, Club}, {Two, Club}, {Three, Diamond},
	}
	a, err := Eval7(top)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Eval7(fourAces)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("four aces with a king kicker scored %d and %d", a, b)
	}
	desc, err := Describe(top)
	if err != nil {
		t.Fatal(err)
	}
	expected, err := Describe(fourAces)
	if err != nil {
		t.Fatal(err)
	}
	if desc != expected {
		t.Fatalf("expected %q, got %q", expected, desc)
	}
	if desc == "A straight flush" {
		t.Fatal("four aces described as a straight flush")
	}
}

func TestToPokerCard(t *testing.T) {
	suits := map[Suit]poker.Suit{
		Club:    poker.Club,
		Diamond: poker.Diamond,
		Heart:   poker.Heart,
		Spade:   poker.Spade,
	}
	for s, ps := range suits {
		for _, r := range Ranks {
			pr := poker.Rank(r)
			if r == Ace {
				pr = 1
			}
			expected, err := poker.MakeCard(ps, pr)
			if err != nil {
				t.Fatal(err)
			}
			got, err := toPokerCard(Card{Rank: r, Suit: s})
			if err != nil {
				t.Fatal(err)
			}
			if got != expected {
				t.Fatalf("%s: expected %s, got %s", Card{Rank: r, Suit: s}, expected.String(), got.String())
			}
		}
	}
}

func TestEval7InvalidCard(t *testing.T) {
	hand := [7]Card{{}, {Two, Club}, {Three, Club}, {Four, Club}, {Five, Club}, {Six, Club}, {Seven, Club}}
	if _, err := Eval7(hand); err == nil {
		t.Fatal("expected error for the zero card")
	}
	if _, err := Describe(hand); err == nil {
		t.Fatal("expected error for the zero card")
	}
}
