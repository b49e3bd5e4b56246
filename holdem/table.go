package holdem

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"pokertab/card"
)

// LedgerSink durably records a player's chip delta when they leave a table.
// Failures are logged and swallowed: the in-memory table is the source of
// truth during a hand and the ledger is a best-effort external mirror.
type LedgerSink interface {
	RecordDelta(ctx context.Context, playerID string, delta int) error
}

// Table is one seated game with its own state machine. All mutation is
// serialized behind mu; operations on different tables are independent.
// Tables are never destroyed, only reset to the waiting phase.
type Table struct {
	mu  sync.Mutex
	id  string
	cfg Config
	rng *rand.Rand

	players        []*Player
	deck           *card.Deck
	communityCards []card.Card
	pot            int
	currentBet     int
	phase          Phase

	dealerIndex        int
	currentPlayerIndex int

	winner *Winner

	// Post-hand restart is a cancellable scheduled task. restartSeq guards
	// against a stale timer firing after cancellation or reset.
	restartTimer *time.Timer
	restartSeq   uint64

	ledger LedgerSink
	notify func(Snapshot)
}

func newTable(id string, cfg Config, sink LedgerSink, notify func(Snapshot)) *Table {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Table{
		id:     id,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		phase:  PhaseWaiting,
		ledger: sink,
		notify: notify,
	}
}

func (t *Table) ID() string { return t.id }

// playerIndexLocked returns the seat list index for a player id, -1 if absent.
func (t *Table) playerIndexLocked(playerID string) int {
	for i, p := range t.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// activePlayersLocked returns the players still in the hand (not folded).
func (t *Table) activePlayersLocked() []*Player {
	active := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		if !p.folded {
			active = append(active, p)
		}
	}
	return active
}

// commitLocked raises a player's street commitment to target, moving exactly
// the increment between target and their prior bet into the pot. Sufficiency
// of the stack is deliberately not checked here; see Act.
func (t *Table) commitLocked(p *Player, target int) {
	inc := target - p.bet
	p.chips -= inc
	p.bet = target
	t.pot += inc
}

// settleLocked awards the whole pot to the winner, records the transient
// winner entry, and schedules the delayed restart.
func (t *Table) settleLocked(w *Player) {
	w.chips += t.pot
	t.winner = &Winner{PlayerID: w.ID, Amount: t.pot}
	for _, p := range t.players {
		p.isTurn = false
	}
	log.Printf("[Table %s] hand won by %s (+%d)", t.id, w.ID, t.pot)
	t.scheduleRestartLocked()
}

func (t *Table) scheduleRestartLocked() {
	t.cancelRestartLocked()
	t.restartSeq++
	seq := t.restartSeq
	t.restartTimer = time.AfterFunc(t.cfg.RestartDelay, func() {
		t.restartHand(seq)
	})
}

// cancelRestartLocked stops any pending restart. Bumping the sequence also
// neutralizes a timer that already fired but has not taken the lock yet.
func (t *Table) cancelRestartLocked() {
	if t.restartTimer != nil {
		t.restartTimer.Stop()
		t.restartTimer = nil
	}
	t.restartSeq++
}

// restartHand runs from the restart timer: clear the winner record, rotate
// the dealer button, and either deal the next hand or fall back to waiting.
func (t *Table) restartHand(seq uint64) {
	t.mu.Lock()
	if seq != t.restartSeq {
		t.mu.Unlock()
		return
	}
	t.restartTimer = nil
	t.winner = nil
	if len(t.players) >= 2 {
		t.dealerIndex = (t.dealerIndex + 1) % len(t.players)
		t.startHandLocked()
	} else {
		t.resetToWaitingLocked()
	}
	snap := t.snapshotLocked()
	notify := t.notify
	t.mu.Unlock()

	if notify != nil {
		notify(snap)
	}
}

// resetToWaitingLocked clears all per-hand state. Invoked whenever the table
// drops below two players.
func (t *Table) resetToWaitingLocked() {
	t.cancelRestartLocked()
	t.phase = PhaseWaiting
	t.deck = nil
	t.communityCards = nil
	t.pot = 0
	t.currentBet = 0
	t.winner = nil
	t.currentPlayerIndex = 0
	for _, p := range t.players {
		p.clearHandState()
	}
}
