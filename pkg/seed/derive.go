package seed

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"golang.org/x/crypto/pbkdf2"

	"cardseed/pkg/cards"
)

// SecretSize is the length of a derived secret in bytes.
const SecretSize = 32

// preimagePrefix separates cardseed derivations from any other use of the
// same primitive. Changing it changes every derived secret.
const preimagePrefix = "cardseed/v1\x00"

// Params control the cost of secret derivation.
type Params struct {
	// Iterations is the PBKDF2-HMAC-SHA256 iteration count. Higher is
	// slower to brute-force and slower to derive.
	Iterations int
}

// DefaultParams matches the iteration count of the original published
// implementation.
var DefaultParams = Params{Iterations: 1 << 16}

// Hash derives the 32-byte secret for d, strengthened by the optional
// passphrase. A nil passphrase is equivalent to the empty string; the
// derivation step always runs. Identical (deck, passphrase) pairs always
// yield identical secrets.
func Hash(d cards.Deck, passphrase *string) ([SecretSize]byte, error) {
	return DeriveSecret(d, passphrase, DefaultParams)
}

// DeriveSecret is Hash with caller-chosen cost parameters. It fails with
// ErrDuplicateCard if d repeats a card, and with ErrDerivation if params are
// unusable.
func DeriveSecret(d cards.Deck, passphrase *string, params Params) ([SecretSize]byte, error) {
	var secret [SecretSize]byte
	if params.Iterations < 1 {
		return secret, fmt.Errorf("%w: iterations must be positive, got %d", ErrDerivation, params.Iterations)
	}
	rank, err := Rank(d)
	if err != nil {
		return secret, err
	}
	var salt []byte
	if passphrase != nil {
		salt = []byte(*passphrase)
	}
	key := pbkdf2.Key(encodePreimage(rank, len(d)), salt, params.Iterations, SecretSize, sha256.New)
	copy(secret[:], key)
	return secret, nil
}

// encodePreimage lays out prefix || k || rank. The rank occupies a fixed
// big-endian width sized to the largest rank possible for k cards, so equal
// decks serialize identically regardless of arithmetic representation. The
// k byte keeps decks of different lengths apart even when their rank widths
// coincide.
func encodePreimage(rank *big.Int, k int) []byte {
	maxRank := permutations(k)
	maxRank.Sub(maxRank, big.NewInt(1))
	width := (maxRank.BitLen() + 7) / 8
	preimage := make([]byte, len(preimagePrefix)+1+width)
	copy(preimage, preimagePrefix)
	preimage[len(preimagePrefix)] = byte(k)
	rank.FillBytes(preimage[len(preimagePrefix)+1:])
	return preimage
}
