package deck

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func multiset(p Pile) map[Card]int {
	m := make(map[Card]int)
	for _, c := range p {
		m[c]++
	}
	return m
}

func TestBuildDeck(t *testing.T) {
	deck := BuildDeck()
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}

	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card found: %s", c)
		}
		seen[c] = true
	}

	for _, want := range []Card{"heartsAce", "spades2", "clubs10", "diamondsKing"} {
		if !seen[want] {
			t.Fatalf("expected card %s missing from fresh deck", want)
		}
	}
}

func TestShufflePreservesMultiset(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42, 1337, 99999} {
		r := rand.New(rand.NewPCG(seed, 0))

		deck := BuildDeck()
		before := multiset(deck)

		deck.Shuffle(r)

		if len(deck) != 52 {
			t.Fatalf("seed %d: shuffle changed deck size to %d", seed, len(deck))
		}
		after := multiset(deck)
		for c, n := range before {
			if after[c] != n {
				t.Fatalf("seed %d: card %s count = %d after shuffle, want %d", seed, c, after[c], n)
			}
		}
	}
}

func TestDealConservation(t *testing.T) {
	tests := []struct {
		name     string
		deckSize int
		dealN    int
		wantHand int
	}{
		{name: "full hand", deckSize: 52, dealN: 6, wantHand: 6},
		{name: "exact remainder", deckSize: 4, dealN: 4, wantHand: 4},
		{name: "partial hand", deckSize: 3, dealN: 6, wantHand: 3},
		{name: "empty deck", deckSize: 0, dealN: 6, wantHand: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := BuildDeck()[:tt.deckSize]
			before := multiset(deck)

			hand := deck.Deal(tt.dealN)

			if len(hand) != tt.wantHand {
				t.Fatalf("Deal(%d) returned %d cards, want %d", tt.dealN, len(hand), tt.wantHand)
			}

			// Mão + resto reconstroem o multiset pré-deal.
			reunited := append(Pile{}, hand...)
			reunited = append(reunited, deck...)
			after := multiset(reunited)
			for c, n := range before {
				if after[c] != n {
					t.Fatalf("card %s count = %d after deal, want %d", c, after[c], n)
				}
			}
			if len(after) != len(before) {
				t.Fatalf("deal created cards: %d distinct, want %d", len(after), len(before))
			}
		})
	}
}

func TestDrawFromDrawPile(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 0))
	draw := Pile{"heartsAce", "spades2"}
	discard := Pile{}

	card, err := Draw(&draw, &discard, r)
	if err != nil {
		t.Fatalf("Draw() error = %v, want nil", err)
	}
	if card != "heartsAce" {
		t.Fatalf("Draw() = %s, want heartsAce (top of pile)", card)
	}
	if draw.Size() != 1 || discard.Size() != 0 {
		t.Fatalf("pile sizes after draw = %d/%d, want 1/0", draw.Size(), discard.Size())
	}
}

func TestDrawReshufflesDiscard(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 0))
	draw := Pile{}
	discard := Pile{"heartsAce", "spades2", "clubs3"}

	card, err := Draw(&draw, &discard, r)
	if err != nil {
		t.Fatalf("Draw() error = %v, want nil", err)
	}

	if discard.Size() != 0 {
		t.Fatalf("discard size = %d after reshuffle, want 0", discard.Size())
	}
	// 3 cartas entraram no reembaralho, 1 foi comprada.
	if draw.Size() != 2 {
		t.Fatalf("draw size = %d after reshuffle+draw, want 2", draw.Size())
	}

	remaining := multiset(append(Pile{card}, draw...))
	for _, c := range []Card{"heartsAce", "spades2", "clubs3"} {
		if remaining[c] != 1 {
			t.Fatalf("card %s count = %d after reshuffle, want 1", c, remaining[c])
		}
	}
}

func TestDrawExhausted(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 0))
	draw := Pile{}
	discard := Pile{}

	if _, err := Draw(&draw, &discard, r); !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("Draw() error = %v, want ErrDeckExhausted", err)
	}
}
