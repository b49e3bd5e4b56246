package holdem

import "pokertab/card"

// PlayerSnapshot is a deep copy of a seated player's state. Hole cards are
// included; redaction per viewer is the transport's concern.
type PlayerSnapshot struct {
	ID       string
	Name     string
	Chips    int
	Position int
	Cards    []card.Card
	Bet      int
	Folded   bool

	IsDealer     bool
	IsSmallBlind bool
	IsBigBlind   bool
	IsTurn       bool
}

// Snapshot is a full copy of the table state, taken under the table mutex
// and safe to hand to other goroutines.
type Snapshot struct {
	TableID string
	Phase   Phase

	Pot        int
	CurrentBet int

	DealerIndex        int
	CurrentPlayerIndex int

	CommunityCards []card.Card
	Players        []PlayerSnapshot
	Winner         *Winner
}

func (t *Table) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Table) snapshotLocked() Snapshot {
	s := Snapshot{
		TableID:            t.id,
		Phase:              t.phase,
		Pot:                t.pot,
		CurrentBet:         t.currentBet,
		DealerIndex:        t.dealerIndex,
		CurrentPlayerIndex: t.currentPlayerIndex,
		CommunityCards:     append([]card.Card{}, t.communityCards...),
	}
	if t.winner != nil {
		w := *t.winner
		s.Winner = &w
	}
	for _, p := range t.players {
		s.Players = append(s.Players, PlayerSnapshot{
			ID:           p.ID,
			Name:         p.Name,
			Chips:        p.chips,
			Position:     p.position,
			Cards:        append([]card.Card{}, p.cards...),
			Bet:          p.bet,
			Folded:       p.folded,
			IsDealer:     p.isDealer,
			IsSmallBlind: p.isSmallBlind,
			IsBigBlind:   p.isBigBlind,
			IsTurn:       p.isTurn,
		})
	}
	return s
}
