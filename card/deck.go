package card

import "math/rand"

// Deck is a shuffled stock of cards consumed from the front.
type Deck struct {
	cards []Card
}

// NewDeck builds a full 52-card deck shuffled with the supplied RNG.
// The caller owns the RNG and its locking discipline.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, 52)
	for s := Spade; s <= Diamond; s++ {
		for rank := byte(1); rank <= 13; rank++ {
			cards = append(cards, Make(s, rank))
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Draw removes and returns the next n cards. Drawing past the end returns
// whatever remains; a hold'em hand never consumes more than 21 of 52.
func (d *Deck) Draw(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
