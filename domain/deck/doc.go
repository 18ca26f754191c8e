// Package deck implements a read-only french-suited deck of 52 playing cards
// that behaves like a standard sequence.
//
// # Core Types
//
// Card: An immutable (rank, suit) pair, comparable with ==.
//
// FrenchDeck: The 52 cards laid out suit-major, rank-minor. It supports
// length, indexed access with negative positions, slicing with
// start/stop/step, forward and backward iteration, membership checks and
// random selection.
//
// # Ordering
//
// SpadesHigh is a sort key that orders cards by rank, aces highest, and
// breaks ties with spades > hearts > diamonds > clubs.
//
// # Hand Evaluation
//
// Eval7 and Describe score seven cards as a poker hand.
package deck
