package holdem

import (
	"context"
	"sync"
	"testing"
	"time"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 1
	return cfg
}

// newTestTable seats players directly and deals the first hand, bypassing
// the join auto-start so multi-player hands can be built in one step.
func newTestTable(t *testing.T, cfg Config, ids ...string) *Table {
	t.Helper()
	tbl := newTable("t1", cfg, nil, nil)
	for i, id := range ids {
		tbl.players = append(tbl.players, &Player{
			ID:       id,
			Name:     id,
			chips:    cfg.BuyIn,
			position: i,
			isDealer: i == 0,
		})
	}
	tbl.mu.Lock()
	tbl.startHandLocked()
	tbl.mu.Unlock()
	return tbl
}

func findPlayer(t *testing.T, snap Snapshot, id string) PlayerSnapshot {
	t.Helper()
	for _, p := range snap.Players {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("player %s not in snapshot", id)
	return PlayerSnapshot{}
}

func totalChips(snap Snapshot) int {
	total := snap.Pot
	for _, p := range snap.Players {
		total += p.Chips
	}
	return total
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

// captureSink records ledger deltas for assertions.
type captureSink struct {
	mu     sync.Mutex
	deltas map[string]int
	calls  int
	err    error
}

func newCaptureSink() *captureSink {
	return &captureSink{deltas: make(map[string]int)}
}

func (c *captureSink) RecordDelta(_ context.Context, playerID string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.deltas[playerID] += delta
	return c.err
}

func (c *captureSink) recorded(playerID string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.deltas[playerID]
	return d, ok
}
