package holdem

// Act applies a betting action for a player. Actions referencing an unseated
// player are ignored (stale or duplicate client events); acting out of turn
// or checking while owing chips is rejected without mutating any state.
func (t *Table) Act(playerID string, action Action) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.playerIndexLocked(playerID)
	if idx < 0 {
		return t.snapshotLocked(), nil
	}
	p := t.players[idx]
	if !p.isTurn {
		return Snapshot{}, ErrNotYourTurn
	}

	switch action.Type {
	case ActionFold:
		p.folded = true
	case ActionCheck:
		if t.currentBet > p.bet {
			return Snapshot{}, ErrIllegalCheck
		}
	case ActionCall:
		t.commitLocked(p, t.currentBet)
	case ActionBet, ActionRaise:
		// Default sizing doubles the current bet. The target is intentionally
		// not validated against the current bet or the player's stack;
		// clients own their own sizing limits.
		target := t.currentBet * 2
		if action.HasAmount {
			target = action.Amount
		}
		t.commitLocked(p, target)
		t.currentBet = target
	default:
		return Snapshot{}, ErrUnknownAction
	}

	p.isTurn = false
	t.advanceTurnLocked()
	return t.snapshotLocked(), nil
}

// advanceTurnLocked hands the turn to the next live seat, or closes the
// betting round when everyone has matched the current bet.
func (t *Table) advanceTurnLocked() {
	active := t.activePlayersLocked()
	if len(active) == 1 {
		t.settleLocked(active[0])
		return
	}
	if len(active) == 0 {
		return
	}

	n := len(t.players)
	next := -1
	for i := 1; i <= n; i++ {
		j := (t.currentPlayerIndex + i) % n
		if !t.players[j].folded {
			next = j
			break
		}
	}
	if next < 0 {
		return
	}

	matched := true
	for _, p := range t.players {
		if p.folded {
			continue
		}
		if p.bet != t.currentBet && p.chips > 0 {
			matched = false
			break
		}
	}

	// The round is complete once all live bets match and the scan has
	// wrapped past the start seat.
	if matched && next <= t.currentPlayerIndex {
		t.advancePhaseLocked()
		return
	}

	t.players[next].isTurn = true
	t.currentPlayerIndex = next
}
