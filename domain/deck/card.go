package deck

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
)

// Suit constants share the numbering used by the hand evaluator
// (clubs lowest, spades highest).
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Rank constants use the face value, with the ace above the king.
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
	Ace   Rank = 14 // A
)

// Suit is one of the four card suits.
type Suit uint8

// Rank is the face value of a card, from Two to Ace.
type Rank uint8

// Ranks lists every rank from the lowest to the highest.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Suits lists the suits in the order the deck is built.
var Suits = [...]Suit{Spade, Diamond, Club, Heart}

// SuitValues is the tie-break priority of each suit: spades > hearts > diamonds > clubs.
var SuitValues = map[Suit]int{
	Spade:   3,
	Heart:   2,
	Diamond: 1,
	Club:    0,
}

// RankIndex returns the position of r in Ranks, or -1 if r is not a valid rank.
func RankIndex(r Rank) int {
	if r < Two || r > Ace {
		return -1
	}
	return int(r - Two)
}

// Valid reports whether r is one of Ranks.
func (r Rank) Valid() bool {
	return RankIndex(r) >= 0
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if !r.Valid() {
		return "?"
	}
	return strconv.Itoa(int(r))
}

// Valid reports whether s is one of Suits.
func (s Suit) Valid() bool {
	return s <= Spade
}

// String returns the lowercase plural name of the suit, e.g. "spades".
func (s Suit) String() string {
	switch s {
	case Club:
		return "clubs"
	case Diamond:
		return "diamonds"
	case Heart:
		return "hearts"
	case Spade:
		return "spades"
	default:
		return "?"
	}
}

// Symbol returns the unicode glyph of the suit.
func (s Suit) Symbol() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// Card is an immutable playing card. Two cards are equal when both rank
// and suit are equal, so Card can be compared with == and used as a map key.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new Card with validation.
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("invalid card %d, %d", rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// String returns the rank followed by the suit symbol, e.g. "10♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Name returns the long form of the card, e.g. "Q of spades".
func (c Card) Name() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Colored renders the card like String, with red suits highlighted for the terminal.
func (c Card) Colored() string {
	var suit string
	switch c.Suit {
	case Diamond, Heart:
		suit = pterm.LightRed(c.Suit.Symbol())
	default:
		suit = pterm.Gray(c.Suit.Symbol())
	}
	return c.Rank.String() + suit
}
