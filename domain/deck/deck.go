package deck

import (
	"cmp"
	"crypto/cipher"
	"fmt"
	"iter"
	"slices"
	"sync"

	"go.dedis.ch/kyber/v4/suites"
)

// Sequence is a sized, indexable container that can be walked in both directions.
type Sequence interface {
	Len() int

	At(i int) (Card, error)

	Slice(expr SliceExpr) ([]Card, error)

	All() iter.Seq2[int, Card]

	Backward() iter.Seq2[int, Card]
}

var _ Sequence = (*FrenchDeck)(nil)

// FrenchDeck is a read-only sequence of the 52 cards of a french-suited deck.
// Cards are laid out suit-major, rank-minor: every rank of spades first,
// then diamonds, clubs and hearts.
type FrenchDeck struct {
	cards []Card

	mu   sync.Mutex // guards rand
	rand cipher.Stream
}

var suite suites.Suite = suites.MustFind("Ed25519")

// New builds the deck. Options are applied after the cards are laid out.
func New(opts ...Option) *FrenchDeck {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	d := &FrenchDeck{
		cards: cards,
		rand:  suite.RandomStream(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Len returns the number of cards, always len(Ranks) * len(Suits).
func (d *FrenchDeck) Len() int {
	return len(d.cards)
}

// At returns the card at position i. Negative positions count from the end,
// so At(-1) is the last card. Positions outside [-Len, Len) return an
// error wrapping ErrIndexOutOfRange.
func (d *FrenchDeck) At(i int) (Card, error) {
	pos := i
	if pos < 0 {
		pos += len(d.cards)
	}
	if pos < 0 || pos >= len(d.cards) {
		return Card{}, fmt.Errorf("%w: %d not in [%d, %d)", ErrIndexOutOfRange, i, -len(d.cards), len(d.cards))
	}
	return d.cards[pos], nil
}

// MustAt is like At but panics when i is out of range.
func (d *FrenchDeck) MustAt(i int) Card {
	c, err := d.At(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Slice returns a fresh copy of the cards selected by expr.
func (d *FrenchDeck) Slice(expr SliceExpr) ([]Card, error) {
	positions, err := expr.Positions(len(d.cards))
	if err != nil {
		return nil, err
	}
	out := make([]Card, 0, len(positions))
	for _, p := range positions {
		out = append(out, d.cards[p])
	}
	return out, nil
}

// All yields position and card in construction order.
func (d *FrenchDeck) All() iter.Seq2[int, Card] {
	return func(yield func(int, Card) bool) {
		for i, c := range d.cards {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Cards yields the cards in construction order.
func (d *FrenchDeck) Cards() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for _, c := range d.cards {
			if !yield(c) {
				return
			}
		}
	}
}

// Backward yields the cards from the last to the first. The position is
// the forward one, so Backward starts at Len()-1.
func (d *FrenchDeck) Backward() iter.Seq2[int, Card] {
	return func(yield func(int, Card) bool) {
		for i := len(d.cards) - 1; i >= 0; i-- {
			if !yield(i, d.cards[i]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the cards that the caller is free to modify.
func (d *FrenchDeck) Snapshot() []Card {
	return slices.Clone(d.cards)
}

// Index returns the position of the first card equal to c.
func (d *FrenchDeck) Index(c Card) (int, bool) {
	i := slices.Index(d.cards, c)
	return i, i >= 0
}

// Contains reports whether c is one of the cards of the deck.
func (d *FrenchDeck) Contains(c Card) bool {
	return slices.Contains(d.cards, c)
}

// SortedBy returns a copy of the cards in ascending order of key.
// Cards with equal keys keep their construction order.
func (d *FrenchDeck) SortedBy(key func(Card) int) []Card {
	out := d.Snapshot()
	slices.SortStableFunc(out, func(a, b Card) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}
