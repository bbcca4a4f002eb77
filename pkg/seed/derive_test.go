package seed

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"cardseed/pkg/cards"
)

// fastParams keeps tests quick; DefaultParams is exercised once below.
var fastParams = Params{Iterations: 64}

func strPtr(s string) *string { return &s }

func mustParse(t *testing.T, text string) cards.Deck {
	t.Helper()
	d, err := cards.ParseDeck(text)
	if err != nil {
		t.Fatalf("ParseDeck(%q)=error(%s)", text, err)
	}
	return d
}

func TestHashDeterministic(t *testing.T) {
	d := mustParse(t, "JC KH 2D")
	first, err := Hash(d, strPtr("slick"))
	if err != nil {
		t.Fatalf("Hash()=error(%s)", err)
	}
	second, err := Hash(d, strPtr("slick"))
	if err != nil {
		t.Fatalf("Hash()=error(%s)", err)
	}
	if first != second {
		t.Errorf("Hash() gave %x then %x for identical inputs", first, second)
	}
}

func TestPassphraseSensitivity(t *testing.T) {
	d := mustParse(t, "JC KH 2D")
	a, err := DeriveSecret(d, strPtr("first"), fastParams)
	if err != nil {
		t.Fatalf("DeriveSecret()=error(%s)", err)
	}
	b, err := DeriveSecret(d, strPtr("second"), fastParams)
	if err != nil {
		t.Fatalf("DeriveSecret()=error(%s)", err)
	}
	if a == b {
		t.Errorf("DeriveSecret() gave identical secrets for different passphrases")
	}
}

func TestNilPassphraseEqualsEmpty(t *testing.T) {
	d := mustParse(t, "JC KH 2D")
	absent, err := DeriveSecret(d, nil, fastParams)
	if err != nil {
		t.Fatalf("DeriveSecret(nil)=error(%s)", err)
	}
	empty, err := DeriveSecret(d, strPtr(""), fastParams)
	if err != nil {
		t.Fatalf("DeriveSecret(\"\")=error(%s)", err)
	}
	if absent != empty {
		t.Errorf("DeriveSecret(nil)=%x, DeriveSecret(\"\")=%x, want equal", absent, empty)
	}
}

func TestDeckSensitivity(t *testing.T) {
	decks := []cards.Deck{
		{},
		{cards.Cas},
		{cards.C2s},
		mustParse(t, "JC KH 2D"),
		mustParse(t, "2D KH JC"),
	}
	seen := make(map[[SecretSize]byte]cards.Deck)
	for _, d := range decks {
		secret, err := DeriveSecret(d, nil, fastParams)
		if err != nil {
			t.Fatalf("DeriveSecret(%s)=error(%s)", d, err)
		}
		if prev, ok := seen[secret]; ok {
			t.Errorf("DeriveSecret(%s) collides with DeriveSecret(%s)", d, prev)
		}
		seen[secret] = d
	}
}

func TestEmptyDeckDeterministic(t *testing.T) {
	first, err := DeriveSecret(cards.Deck{}, strPtr("slick"), fastParams)
	if err != nil {
		t.Fatalf("DeriveSecret(empty)=error(%s)", err)
	}
	second, err := DeriveSecret(cards.Deck{}, strPtr("slick"), fastParams)
	if err != nil {
		t.Fatalf("DeriveSecret(empty)=error(%s)", err)
	}
	if first != second {
		t.Errorf("DeriveSecret(empty) gave %x then %x", first, second)
	}
}

func TestDeriveSecretBadParams(t *testing.T) {
	d := mustParse(t, "JC KH 2D")
	for _, iterations := range []int{0, -1} {
		_, err := DeriveSecret(d, nil, Params{Iterations: iterations})
		if !errors.Is(err, ErrDerivation) {
			t.Errorf("DeriveSecret(iterations=%d)=error(%v), want ErrDerivation", iterations, err)
		}
	}
}

func TestDeriveSecretDuplicate(t *testing.T) {
	d := mustParse(t, "AS AS")
	_, err := DeriveSecret(d, nil, fastParams)
	if !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("DeriveSecret(%s)=error(%v), want ErrDuplicateCard", d, err)
	}
}

func TestEncodePreimage(t *testing.T) {
	prefix := []byte(preimagePrefix)
	tests := []struct {
		name  string
		rank  *big.Int
		k     int
		width int
	}{
		{"empty deck", big.NewInt(0), 0, 0},
		{"one card", big.NewInt(5), 1, 1},
		{"two cards", big.NewInt(2651), 2, 2},
		{"full deck", big.NewInt(0), 52, 29},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := encodePreimage(tc.rank, tc.k)
			wantLen := len(prefix) + 1 + tc.width
			if len(got) != wantLen {
				t.Fatalf("encodePreimage(%s,%d) has %d bytes, want %d", tc.rank, tc.k, len(got), wantLen)
			}
			if !bytes.HasPrefix(got, prefix) {
				t.Errorf("encodePreimage(%s,%d)=%x, want prefix %x", tc.rank, tc.k, got, prefix)
			}
			if got[len(prefix)] != byte(tc.k) {
				t.Errorf("encodePreimage(%s,%d) k byte=%d, want %d", tc.rank, tc.k, got[len(prefix)], tc.k)
			}
			rankBytes := got[len(prefix)+1:]
			if new(big.Int).SetBytes(rankBytes).Cmp(tc.rank) != 0 {
				t.Errorf("encodePreimage(%s,%d) rank bytes=%x, want %s", tc.rank, tc.k, rankBytes, tc.rank)
			}
		})
	}
}
