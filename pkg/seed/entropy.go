package seed

import (
	"math"

	"cardseed/pkg/cards"
)

// EntropyBits returns the Shannon entropy, in bits, carried by d's draw
// order under a uniformly random shuffle: log2 P(52,k) for a k-card deck.
// A full deck carries log2(52!) ≈ 225.58 bits; the empty deck carries 0.
func EntropyBits(d cards.Deck) float64 {
	bits := 0.0
	for i := range d {
		bits += math.Log2(float64(cards.DeckSize - i))
	}
	return bits
}
