package deck

import (
	"crypto/cipher"

	"go.dedis.ch/kyber/v4/xof/blake2xb"
)

// Option configures a FrenchDeck built by New.
type Option func(*FrenchDeck)

// WithRandomStream replaces the suite random stream used by Choice and Shuffled.
// A nil stream is ignored and the suite stream is kept.
func WithRandomStream(stream cipher.Stream) Option {
	return func(d *FrenchDeck) {
		if stream == nil {
			return
		}
		d.rand = stream
	}
}

// SeededStream returns a deterministic stream: the same seed always
// produces the same picks and permutations.
func SeededStream(seed []byte) cipher.Stream {
	return blake2xb.New(seed)
}
