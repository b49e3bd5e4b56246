package holdem

import (
	"log"

	"pokertab/card"
)

// startHandLocked deals a new hand: waiting/showdown -> preflop.
// Precondition: at least two seated players.
func (t *Table) startHandLocked() {
	if len(t.players) < 2 {
		return
	}
	t.cancelRestartLocked()

	n := len(t.players)
	t.dealerIndex %= n

	// Heads-up: the dealer posts the small blind and the other seat the big
	// blind. Three or more: blinds sit clockwise after the button.
	var sb, bb int
	if n == 2 {
		sb = t.dealerIndex
		bb = (t.dealerIndex + 1) % n
	} else {
		sb = (t.dealerIndex + 1) % n
		bb = (t.dealerIndex + 2) % n
	}

	t.deck = card.NewDeck(t.rng)
	t.communityCards = nil
	t.pot = 0
	t.currentBet = 0
	t.winner = nil

	for i, p := range t.players {
		p.cards = t.deck.Draw(2)
		p.bet = 0
		p.folded = false
		p.isDealer = i == t.dealerIndex
		p.isSmallBlind = i == sb
		p.isBigBlind = i == bb
		p.isTurn = false
	}

	t.commitLocked(t.players[sb], t.cfg.SmallBlind)
	t.commitLocked(t.players[bb], t.cfg.BigBlind)
	t.currentBet = t.cfg.BigBlind

	t.phase = PhasePreflop

	// Heads-up the dealer/small-blind seat acts first preflop; otherwise the
	// seat after the big blind opens.
	first := sb
	if n > 2 {
		first = (bb + 1) % n
	}
	t.players[first].isTurn = true
	t.currentPlayerIndex = first

	log.Printf("[Table %s] hand started: players=%d dealer=%d pot=%d", t.id, n, t.dealerIndex, t.pot)
}

// advancePhaseLocked moves the hand to the next street. Every street entry
// resets the per-round bets; the river advances into the showdown.
func (t *Table) advancePhaseLocked() {
	for _, p := range t.players {
		p.bet = 0
		p.isTurn = false
	}
	t.currentBet = 0

	switch t.phase {
	case PhasePreflop:
		t.phase = PhaseFlop
		t.communityCards = append(t.communityCards, t.deck.Draw(3)...)
	case PhaseFlop:
		t.phase = PhaseTurn
		t.communityCards = append(t.communityCards, t.deck.Draw(1)...)
	case PhaseTurn:
		t.phase = PhaseRiver
		t.communityCards = append(t.communityCards, t.deck.Draw(1)...)
	case PhaseRiver:
		t.phase = PhaseShowdown
		// Placeholder winner policy: uniform random over the players still
		// in the hand. Real hand evaluation is intentionally not performed.
		active := t.activePlayersLocked()
		if len(active) > 0 {
			t.settleLocked(active[t.rng.Intn(len(active))])
		}
		return
	default:
		return
	}

	// First to act post-flop: the first live seat after the dealer button.
	n := len(t.players)
	for i := 1; i <= n; i++ {
		j := (t.dealerIndex + i) % n
		if !t.players[j].folded {
			t.players[j].isTurn = true
			t.currentPlayerIndex = j
			break
		}
	}
}
