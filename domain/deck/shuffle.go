package deck

import (
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Choice returns a card picked uniformly at random.
func (d *FrenchDeck) Choice() Card {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cards[d.intn(len(d.cards))]
}

// Shuffled returns a random permutation of the cards. The deck itself is
// left in construction order.
func (d *FrenchDeck) Shuffled() []Card {
	d.mu.Lock()
	perm := d.permutation(len(d.cards))
	d.mu.Unlock()

	out := make([]Card, len(d.cards))
	for i, p := range perm {
		out[i] = d.cards[p]
	}
	return out
}

// Helper function to generate a random permutation of size permSize.
// Caller must hold d.mu.
func (d *FrenchDeck) permutation(permSize int) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := d.intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// intn returns a uniform integer in [0, n). Caller must hold d.mu.
func (d *FrenchDeck) intn(n int) int {
	return int(random.Int(big.NewInt(int64(n)), d.rand).Int64())
}
