package deck

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Eval7 scores the best five-card poker hand found in the seven cards.
// Equal scores mean equally strong hands.
func Eval7(hand [7]Card) (int16, error) {
	h, err := toPokerHand(hand)
	if err != nil {
		return 0, err
	}
	return poker.Eval7(&h), nil
}

// Describe names the best poker hand found in the seven cards.
func Describe(hand [7]Card) (string, error) {
	h, err := toPokerHand(hand)
	if err != nil {
		return "", err
	}
	return poker.Describe(h[:])
}

func toPokerHand(hand [7]Card) ([7]poker.Card, error) {
	var out [7]poker.Card
	for i, c := range hand {
		pc, err := toPokerCard(c)
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		out[i] = pc
	}
	return out, nil
}

// toPokerCard maps c onto the evaluator's cards, where the ace has rank 1.
func toPokerCard(c Card) (poker.Card, error) {
	if !c.Rank.Valid() || !c.Suit.Valid() {
		var zero poker.Card
		return zero, fmt.Errorf("invalid card %d, %d", c.Rank, c.Suit)
	}
	r := poker.Rank(c.Rank)
	if c.Rank == Ace {
		r = 1
	}
	return poker.MakeCard(poker.Suit(c.Suit), r)
}
