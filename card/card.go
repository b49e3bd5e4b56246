package card

import "fmt"

type Suit byte

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

func (s Suit) String() string {
	switch s {
	case Spade:
		return "s"
	case Heart:
		return "h"
	case Club:
		return "c"
	case Diamond:
		return "d"
	}
	return "?"
}

// Card packs a playing card into one byte:
// high nibble is the suit, low nibble is the rank (1:A, 2..9, 10:T, 11:J, 12:Q, 13:K).
type Card byte

const Invalid Card = 0

func Make(s Suit, rank byte) Card {
	return Card(byte(s)<<4 | rank&0x0F)
}

func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

// Rank returns the face value 1-13 (A=1, K=13).
func (c Card) Rank() byte {
	return byte(c & 0x0F)
}

// String renders the card in compact notation, e.g. "As", "Td", "9c".
func (c Card) String() string {
	if c == Invalid {
		return "??"
	}
	rank := c.Rank()
	var rankStr string
	switch rank {
	case 1:
		rankStr = "A"
	case 10:
		rankStr = "T"
	case 11:
		rankStr = "J"
	case 12:
		rankStr = "Q"
	case 13:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", rank)
	}
	return rankStr + c.Suit().String()
}
