// Prints a full 52-card deck in a random order drawn from the OS RNG.
// Useful as a software stand-in for a physically shuffled deck.
package main

import (
	"fmt"
	"log"

	"cardseed/pkg/cards"
)

func main() {
	deck, err := cards.MakeDeck().Shuffle()
	if err != nil {
		log.Fatalf("Couldn't shuffle deck: %v", err)
	}
	fmt.Println(deck)
}
