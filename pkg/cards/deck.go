package cards

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/exp/slices"
)

// A Deck is an ordered sequence of cards. Order is significant: it records
// the physical draw order, so equality and the textual form both preserve it.
//
// Parsing accepts any sequence of valid cards, even if some repeat. Use
// HasDuplicates to check, or rely on ranking to reject repeats.
type Deck []Card

// MakeDeck returns the full deck in identifier order, ace of spades through
// king of diamonds.
func MakeDeck() Deck {
	d := make(Deck, 0, DeckSize)
	for _, s := range Suits {
		for _, v := range Values {
			d = append(d, Card{v, s})
		}
	}
	return d
}

// ParseDeck parses a whitespace-delimited sequence of card tokens. The empty
// string parses to the empty deck.
func ParseDeck(text string) (Deck, error) {
	var d Deck
	for i, token := range strings.Fields(text) {
		c, err := ParseCard(token)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		d = append(d, c)
	}
	return d, nil
}

func (d Deck) Strings() []string {
	cardStrings := []string{}
	for _, c := range d {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

// String joins the cards' canonical tokens with single spaces. The empty
// deck formats to the empty string.
func (d Deck) String() string {
	return strings.Join(d.Strings(), " ")
}

// Equal reports whether both decks hold the same cards in the same order.
func (d Deck) Equal(other Deck) bool {
	return slices.Equal(d, other)
}

func (d Deck) Copy() Deck {
	deckCopy := make(Deck, len(d))
	copy(deckCopy, d)
	return deckCopy
}

// HasDuplicates reports whether any card appears more than once.
func (d Deck) HasDuplicates() bool {
	seen := make(map[Card]bool, len(d))
	for _, c := range d {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

// Shuffle returns a new deck holding d's cards in an order drawn uniformly
// from crypto/rand. d is left unchanged.
func (d Deck) Shuffle() (Deck, error) {
	shuffled := d.Copy()
	for i := len(shuffled) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return nil, fmt.Errorf("reading randomness: %w", err)
		}
		j := int(n.Int64())
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled, nil
}
