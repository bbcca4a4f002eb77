package cards

import (
	"errors"
	"fmt"
	"strings"
)

// Parse failures. Wrapped errors carry the offending character or token;
// check with errors.Is.
var (
	ErrInvalidLength    = errors.New("card token must be exactly two characters")
	ErrInvalidFaceValue = errors.New("invalid face value")
	ErrInvalidSuit      = errors.New("invalid suit")
)

// DeckSize is the number of cards in a full deck with no duplicates.
const DeckSize = 52

// SuitSize is the number of cards in a suit.
const SuitSize = DeckSize / 4

// A card's suit.
type Suit int8

const (
	Spades Suit = iota
	Clubs
	Hearts
	Diamonds
)

var Suits = []Suit{
	Spades,
	Clubs,
	Hearts,
	Diamonds,
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Clubs:
		return "C"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	}
	panic("Unknown Suit")
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToUpper(s) {
	case "S":
		return Spades, nil
	case "C":
		return Clubs, nil
	case "H":
		return Hearts, nil
	case "D":
		return Diamonds, nil
	}
	return Spades, fmt.Errorf("%w '%s' at position 1", ErrInvalidSuit, s)
}

// A card's face value: A,2-9,T,J,Q,K.
type Value int8

const (
	Ace Value = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var Values = []Value{
	Ace,
	Two,
	Three,
	Four,
	Five,
	Six,
	Seven,
	Eight,
	Nine,
	Ten,
	Jack,
	Queen,
	King,
}

func (v Value) String() string {
	switch v {
	case Ace:
		return "A"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	panic("Unknown Value")
}

func parseValue(v string) (Value, error) {
	switch strings.ToUpper(v) {
	case "A":
		return Ace, nil
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	}
	return Ace, fmt.Errorf("%w '%s' at position 0", ErrInvalidFaceValue, v)
}

type Card struct {
	Value
	Suit
}

// String returns the canonical uppercase two-character token.
func (c Card) String() string {
	return c.Value.String() + c.Suit.String()
}

// ParseCard parses a two-character card token. Parsing is case-insensitive;
// String always formats the canonical uppercase form.
func ParseCard(c string) (Card, error) {
	if len(c) != 2 {
		return Card{}, fmt.Errorf("%w: got %q", ErrInvalidLength, c)
	}
	v, err := parseValue(c[0:1])
	if err != nil {
		return Card{}, err
	}
	s, err := parseSuit(c[1:2])
	if err != nil {
		return Card{}, err
	}
	return Card{v, s}, nil
}

// ID returns the card's dense identifier in [0,DeckSize).
// Ids run AS=0..KS=12, AC=13..KC=25, AH=26..KH=38, AD=39..KD=51.
func (c Card) ID() int {
	return int(c.Suit)*SuitSize + int(c.Value)
}

// CardFromID is the inverse of ID.
func CardFromID(id int) (Card, error) {
	if id < 0 || id >= DeckSize {
		return Card{}, fmt.Errorf("card id %d out of range [0,%d)", id, DeckSize)
	}
	return Card{Value(id % SuitSize), Suit(id / SuitSize)}, nil
}
