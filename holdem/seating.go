package holdem

import (
	"context"
	"log"
)

// Join seats a player, or re-attaches them if already seated (idempotent
// re-join after a reconnect). Seating the second player onto a waiting table
// starts a hand immediately.
func (t *Table) Join(playerID, name string) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.playerIndexLocked(playerID) >= 0 {
		return t.snapshotLocked(), nil
	}
	if len(t.players) >= t.cfg.MaxPlayers {
		return Snapshot{}, ErrTableFull
	}

	p := &Player{
		ID:       playerID,
		Name:     name,
		chips:    t.cfg.BuyIn,
		position: t.lowestFreePositionLocked(),
		isDealer: len(t.players) == 0,
	}
	t.players = append(t.players, p)
	log.Printf("[Table %s] player %s joined at position %d", t.id, playerID, p.position)

	if len(t.players) >= 2 && t.phase == PhaseWaiting {
		t.startHandLocked()
	}
	return t.snapshotLocked(), nil
}

// lowestFreePositionLocked finds the smallest non-negative seat index not
// currently taken, so positions vacated by leavers are reused.
func (t *Table) lowestFreePositionLocked() int {
	taken := make(map[int]bool, len(t.players))
	for _, p := range t.players {
		taken[p.position] = true
	}
	for pos := 0; ; pos++ {
		if !taken[pos] {
			return pos
		}
	}
}

// Leave removes a player, reconciling an in-progress hand first. Safe to
// call twice for the same player; unknown players are a no-op. Covers both
// voluntary leaves and connection loss.
func (t *Table) Leave(playerID string) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.playerIndexLocked(playerID)
	if idx < 0 {
		return t.snapshotLocked()
	}
	p := t.players[idx]

	// If it was this player's turn, force-fold them before removal so turn
	// arithmetic still sees them at a known index.
	if p.isTurn && len(t.players) >= 2 {
		p.folded = true
		p.isTurn = false

		var lastActive *Player
		activeCount := 0
		for _, q := range t.players {
			if q != p && !q.folded {
				activeCount++
				lastActive = q
			}
		}
		if activeCount == 1 {
			t.settleLocked(lastActive)
			t.removePlayerLocked(idx)
			t.reportLedgerDeltaLocked(p)
			return t.snapshotLocked()
		}
		t.advanceTurnLocked()
	}

	t.removePlayerLocked(idx)
	t.reportLedgerDeltaLocked(p)
	return t.snapshotLocked()
}

func (t *Table) removePlayerLocked(idx int) {
	leaving := t.players[idx]
	t.players = append(t.players[:idx], t.players[idx+1:]...)
	log.Printf("[Table %s] player %s left, %d seated", t.id, leaving.ID, len(t.players))

	if t.currentPlayerIndex < 0 || t.currentPlayerIndex >= len(t.players) {
		t.currentPlayerIndex = 0
	}
	if n := len(t.players); n > 0 {
		t.dealerIndex %= n
	} else {
		t.dealerIndex = 0
	}
	if len(t.players) < 2 {
		t.resetToWaitingLocked()
	}
}

// reportLedgerDeltaLocked externalizes the player's net result against the
// starting stake. The only point at which chip state leaves the table.
func (t *Table) reportLedgerDeltaLocked(p *Player) {
	delta := p.chips - t.cfg.BuyIn
	if delta == 0 || t.ledger == nil {
		return
	}
	if err := t.ledger.RecordDelta(context.Background(), p.ID, delta); err != nil {
		log.Printf("[Table %s] ledger write failed for %s (delta=%d): %v", t.id, p.ID, delta, err)
	}
}
