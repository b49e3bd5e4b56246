package holdem

import "pokertab/card"

// Player is a seated player. Owned by exactly one Table; every field is
// mutated only by engine functions holding the table mutex.
type Player struct {
	ID   string
	Name string

	chips    int
	position int

	cards  []card.Card
	bet    int
	folded bool

	isDealer     bool
	isSmallBlind bool
	isBigBlind   bool
	isTurn       bool
}

func (p *Player) Chips() int    { return p.chips }
func (p *Player) Position() int { return p.position }
func (p *Player) Folded() bool  { return p.folded }

// clearHandState wipes the per-hand fields. Identity, chips, and position
// persist across hands.
func (p *Player) clearHandState() {
	p.cards = nil
	p.bet = 0
	p.folded = false
	p.isDealer = false
	p.isSmallBlind = false
	p.isBigBlind = false
	p.isTurn = false
}
