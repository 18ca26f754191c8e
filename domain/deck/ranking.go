package deck

// SpadesHigh is a sort key ranking cards by rank, aces highest, then by
// suit in the order spades, hearts, diamonds, clubs. Over a full deck it is
// injective and lies in [0, 51].
func SpadesHigh(c Card) int {
	return RankIndex(c.Rank)*len(SuitValues) + SuitValues[c.Suit]
}
