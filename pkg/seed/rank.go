// Package seed turns an ordered deck of distinct playing cards into a
// fixed-length secret. The deck's draw order is ranked among all ordered
// draws of the same length from a 52-card pool, and the rank's canonical
// bytes feed a passphrase-keyed key derivation.
package seed

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/exp/slices"

	"cardseed/pkg/cards"
)

var (
	// ErrDuplicateCard marks a deck in which some card appears twice. A
	// physical deck cannot be drawn twice, so ranking rejects such decks.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrDerivation marks cost parameters the deriver cannot accept.
	ErrDerivation = errors.New("derivation failed")
)

// Rank computes the position of d among all ordered draws of len(d) distinct
// cards from the 52-card pool, as a non-negative big integer less than
// P(52,len(d)) = 52!/(52-len(d))!. Distinct decks of the same length always
// rank differently, and the empty deck ranks 0.
//
// The rank is a Lehmer code: at each position the card's index within the
// pool of not-yet-drawn cards becomes one digit of a mixed-radix number.
func Rank(d cards.Deck) (*big.Int, error) {
	pool := make([]int, cards.DeckSize)
	for i := range pool {
		pool[i] = i
	}
	rank := new(big.Int)
	digit := new(big.Int)
	for i, c := range d {
		r := slices.Index(pool, c.ID())
		if r < 0 {
			return nil, fmt.Errorf("%w: %s at position %d", ErrDuplicateCard, c, i)
		}
		pool = slices.Delete(pool, r, r+1)
		digit.SetInt64(int64(cards.DeckSize - i))
		rank.Mul(rank, digit)
		rank.Add(rank, digit.SetInt64(int64(r)))
	}
	return rank, nil
}

// permutations returns P(52,k), the number of ordered draws of k distinct
// cards from the full pool.
func permutations(k int) *big.Int {
	p := big.NewInt(1)
	f := new(big.Int)
	for i := 0; i < k; i++ {
		p.Mul(p, f.SetInt64(int64(cards.DeckSize-i)))
	}
	return p
}
