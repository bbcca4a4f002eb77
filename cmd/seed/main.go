// Derives the 32-byte secret for a deck of cards given as arguments or on
// stdin, and prints it as hex.
//
//	seed -passphrase=slick JC KH 2D
//	shuffle | seed -entropy
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"cardseed/pkg/cards"
	"cardseed/pkg/seed"
)

var (
	passphrase  = flag.String("passphrase", "", "optional passphrase mixed into the derived secret")
	showEntropy = flag.Bool("entropy", false, "also report the deck's entropy in bits on stderr")
)

func main() {
	flag.Parse()
	text := strings.Join(flag.Args(), " ")
	if text == "" {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Couldn't read stdin: %v", err)
		}
		text = string(in)
	}
	deck, err := cards.ParseDeck(text)
	if err != nil {
		log.Fatalf("Couldn't parse deck: %v", err)
	}
	var p *string
	if *passphrase != "" {
		p = passphrase
	}
	secret, err := seed.Hash(deck, p)
	if err != nil {
		log.Fatalf("Couldn't derive secret: %v", err)
	}
	fmt.Println(hex.EncodeToString(secret[:]))
	if *showEntropy {
		fmt.Fprintf(os.Stderr, "%d cards, %.2f bits of entropy\n", len(deck), seed.EntropyBits(deck))
	}
}
