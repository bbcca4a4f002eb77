package cards

// Card literals
var (
	Cas = Card{Value: Ace, Suit: Spades}
	C2s = Card{Value: Two, Suit: Spades}
	C3s = Card{Value: Three, Suit: Spades}
	C4s = Card{Value: Four, Suit: Spades}
	C5s = Card{Value: Five, Suit: Spades}
	C6s = Card{Value: Six, Suit: Spades}
	C7s = Card{Value: Seven, Suit: Spades}
	C8s = Card{Value: Eight, Suit: Spades}
	C9s = Card{Value: Nine, Suit: Spades}
	Cts = Card{Value: Ten, Suit: Spades}
	Cjs = Card{Value: Jack, Suit: Spades}
	Cqs = Card{Value: Queen, Suit: Spades}
	Cks = Card{Value: King, Suit: Spades}
	Cac = Card{Value: Ace, Suit: Clubs}
	C2c = Card{Value: Two, Suit: Clubs}
	C3c = Card{Value: Three, Suit: Clubs}
	C4c = Card{Value: Four, Suit: Clubs}
	C5c = Card{Value: Five, Suit: Clubs}
	C6c = Card{Value: Six, Suit: Clubs}
	C7c = Card{Value: Seven, Suit: Clubs}
	C8c = Card{Value: Eight, Suit: Clubs}
	C9c = Card{Value: Nine, Suit: Clubs}
	Ctc = Card{Value: Ten, Suit: Clubs}
	Cjc = Card{Value: Jack, Suit: Clubs}
	Cqc = Card{Value: Queen, Suit: Clubs}
	Ckc = Card{Value: King, Suit: Clubs}
	Cah = Card{Value: Ace, Suit: Hearts}
	C2h = Card{Value: Two, Suit: Hearts}
	C3h = Card{Value: Three, Suit: Hearts}
	C4h = Card{Value: Four, Suit: Hearts}
	C5h = Card{Value: Five, Suit: Hearts}
	C6h = Card{Value: Six, Suit: Hearts}
	C7h = Card{Value: Seven, Suit: Hearts}
	C8h = Card{Value: Eight, Suit: Hearts}
	C9h = Card{Value: Nine, Suit: Hearts}
	Cth = Card{Value: Ten, Suit: Hearts}
	Cjh = Card{Value: Jack, Suit: Hearts}
	Cqh = Card{Value: Queen, Suit: Hearts}
	Ckh = Card{Value: King, Suit: Hearts}
	Cad = Card{Value: Ace, Suit: Diamonds}
	C2d = Card{Value: Two, Suit: Diamonds}
	C3d = Card{Value: Three, Suit: Diamonds}
	C4d = Card{Value: Four, Suit: Diamonds}
	C5d = Card{Value: Five, Suit: Diamonds}
	C6d = Card{Value: Six, Suit: Diamonds}
	C7d = Card{Value: Seven, Suit: Diamonds}
	C8d = Card{Value: Eight, Suit: Diamonds}
	C9d = Card{Value: Nine, Suit: Diamonds}
	Ctd = Card{Value: Ten, Suit: Diamonds}
	Cjd = Card{Value: Jack, Suit: Diamonds}
	Cqd = Card{Value: Queen, Suit: Diamonds}
	Ckd = Card{Value: King, Suit: Diamonds}
)
