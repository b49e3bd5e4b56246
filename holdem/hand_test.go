package holdem

import (
	"testing"
	"time"
)

// Two players joining a waiting table must start a hand automatically with
// blinds posted: dealer/SB bets 5, BB bets 10, pot 15, current bet 10.
func TestJoin_AutoStartHeadsUp(t *testing.T) {
	tbl := newTable("t1", testConfig(), nil, nil)

	if _, err := tbl.Join("a", "Alice"); err != nil {
		t.Fatalf("join a: %v", err)
	}
	snap := tbl.Snapshot()
	if snap.Phase != PhaseWaiting {
		t.Fatalf("expected waiting with one player, got %v", snap.Phase)
	}

	if _, err := tbl.Join("b", "Bob"); err != nil {
		t.Fatalf("join b: %v", err)
	}
	snap = tbl.Snapshot()
	if snap.Phase != PhasePreflop {
		t.Fatalf("expected preflop after second join, got %v", snap.Phase)
	}
	if snap.Pot != 15 {
		t.Fatalf("expected pot 15, got %d", snap.Pot)
	}
	if snap.CurrentBet != 10 {
		t.Fatalf("expected current bet 10, got %d", snap.CurrentBet)
	}

	a := findPlayer(t, snap, "a")
	b := findPlayer(t, snap, "b")
	if !a.IsDealer || !a.IsSmallBlind {
		t.Fatalf("heads-up dealer must post the small blind: %+v", a)
	}
	if !a.IsTurn {
		t.Fatalf("heads-up dealer acts first preflop")
	}
	if a.Bet != 5 || a.Chips != 995 {
		t.Fatalf("small blind commit wrong: bet=%d chips=%d", a.Bet, a.Chips)
	}
	if !b.IsBigBlind || b.Bet != 10 || b.Chips != 990 {
		t.Fatalf("big blind commit wrong: %+v", b)
	}
	if len(a.Cards) != 2 || len(b.Cards) != 2 {
		t.Fatalf("expected 2 hole cards each, got %d/%d", len(a.Cards), len(b.Cards))
	}
}

// With three or more players the blinds sit after the button and the seat
// after the big blind opens the preflop betting.
func TestStartHand_ThreePlayerPositions(t *testing.T) {
	tbl := newTestTable(t, testConfig(), "a", "b", "c")

	snap := tbl.Snapshot()
	if snap.Phase != PhasePreflop {
		t.Fatalf("expected preflop, got %v", snap.Phase)
	}
	a := findPlayer(t, snap, "a")
	b := findPlayer(t, snap, "b")
	c := findPlayer(t, snap, "c")
	if !a.IsDealer {
		t.Fatalf("expected a on the button")
	}
	if !b.IsSmallBlind || b.Bet != 5 {
		t.Fatalf("expected b as small blind with bet 5: %+v", b)
	}
	if !c.IsBigBlind || c.Bet != 10 {
		t.Fatalf("expected c as big blind with bet 10: %+v", c)
	}
	// Seat two past the button (after the big blind) wraps back to the dealer.
	if !a.IsTurn {
		t.Fatalf("expected first action on the seat after the big blind")
	}
}

// Three calls close the preflop round: the flop deals three community cards
// and resets every street bet.
func TestBettingRound_ThreeCallsAdvanceToFlop(t *testing.T) {
	tbl := newTestTable(t, testConfig(), "a", "b", "c")

	for _, id := range []string{"a", "b", "c"} {
		if _, err := tbl.Act(id, Action{Type: ActionCall}); err != nil {
			t.Fatalf("%s call: %v", id, err)
		}
	}

	snap := tbl.Snapshot()
	if snap.Phase != PhaseFlop {
		t.Fatalf("expected flop, got %v", snap.Phase)
	}
	if len(snap.CommunityCards) != 3 {
		t.Fatalf("expected 3 community cards, got %d", len(snap.CommunityCards))
	}
	if snap.Pot != 30 {
		t.Fatalf("expected pot 30 after three calls of 10, got %d", snap.Pot)
	}
	if snap.CurrentBet != 0 {
		t.Fatalf("expected current bet reset, got %d", snap.CurrentBet)
	}
	for _, p := range snap.Players {
		if p.Bet != 0 {
			t.Fatalf("expected bets reset on flop, %s has %d", p.ID, p.Bet)
		}
	}
	// Post-flop action starts at the first live seat after the button.
	if !findPlayer(t, snap, "b").IsTurn {
		t.Fatalf("expected b to open the flop betting")
	}
}

// Checking a hand down to the river must settle via the showdown and
// conserve chips: the winner collects exactly what was committed.
func TestShowdown_MoneyConservation(t *testing.T) {
	tbl := newTestTable(t, testConfig(), "a", "b")

	if _, err := tbl.Act("a", Action{Type: ActionCall}); err != nil {
		t.Fatalf("a call: %v", err)
	}
	if _, err := tbl.Act("b", Action{Type: ActionCheck}); err != nil {
		t.Fatalf("b check: %v", err)
	}

	// Each street opens on the seat after the button; one check per street
	// wraps the scan and closes the round.
	for _, want := range []Phase{PhaseFlop, PhaseTurn, PhaseRiver} {
		snap := tbl.Snapshot()
		if snap.Phase != want {
			t.Fatalf("expected %v, got %v", want, snap.Phase)
		}
		if _, err := tbl.Act("b", Action{Type: ActionCheck}); err != nil {
			t.Fatalf("b check on %v: %v", want, err)
		}
	}

	snap := tbl.Snapshot()
	if snap.Phase != PhaseShowdown {
		t.Fatalf("expected showdown, got %v", snap.Phase)
	}
	if len(snap.CommunityCards) != 5 {
		t.Fatalf("expected full board, got %d cards", len(snap.CommunityCards))
	}
	if snap.Winner == nil {
		t.Fatalf("expected a winner at showdown")
	}
	if snap.Winner.Amount != 20 {
		t.Fatalf("expected winner to take pot of 20, got %d", snap.Winner.Amount)
	}
	w := findPlayer(t, snap, snap.Winner.PlayerID)
	if w.Chips != 1010 {
		t.Fatalf("expected winner stack 1010, got %d", w.Chips)
	}
	if got := totalChips(snap) - snap.Pot; got != 2000 {
		t.Fatalf("chips not conserved: %d", got)
	}
}

// After settlement the table restarts on its own: the winner entry is
// cleared, the button rotates, and a fresh hand is dealt.
func TestRestart_RotatesDealerAndDealsAgain(t *testing.T) {
	cfg := testConfig()
	cfg.RestartDelay = 20 * time.Millisecond
	tbl := newTestTable(t, cfg, "a", "b")

	if _, err := tbl.Act("a", Action{Type: ActionFold}); err != nil {
		t.Fatalf("a fold: %v", err)
	}
	snap := tbl.Snapshot()
	if snap.Winner == nil || snap.Winner.PlayerID != "b" {
		t.Fatalf("expected b to win by fold, got %+v", snap.Winner)
	}

	waitFor(t, time.Second, func() bool {
		s := tbl.Snapshot()
		return s.Winner == nil && s.Phase == PhasePreflop && s.DealerIndex == 1
	})

	snap = tbl.Snapshot()
	if snap.Pot != 15 {
		t.Fatalf("expected fresh blinds in new hand, pot=%d", snap.Pot)
	}
	b := findPlayer(t, snap, "b")
	if !b.IsDealer || !b.IsTurn {
		t.Fatalf("expected button and first action rotated to b: %+v", b)
	}
}

// A pending restart must be cancelled when the table empties out, not fire
// later against reset state.
func TestRestart_CancelledWhenTableDrainsBelowTwo(t *testing.T) {
	cfg := testConfig()
	cfg.RestartDelay = 20 * time.Millisecond
	tbl := newTestTable(t, cfg, "a", "b")

	if _, err := tbl.Act("a", Action{Type: ActionFold}); err != nil {
		t.Fatalf("a fold: %v", err)
	}
	tbl.Leave("b")

	snap := tbl.Snapshot()
	if snap.Phase != PhaseWaiting {
		t.Fatalf("expected waiting after drain, got %v", snap.Phase)
	}

	time.Sleep(100 * time.Millisecond)
	snap = tbl.Snapshot()
	if snap.Phase != PhaseWaiting || snap.Pot != 0 || snap.Winner != nil {
		t.Fatalf("stale restart resurrected the table: %+v", snap)
	}
}

// Joining mid-hand must not restart or disturb the hand in progress; the
// newcomer sits without cards until the next deal.
func TestJoin_MidHandDoesNotRedeal(t *testing.T) {
	tbl := newTable("t1", testConfig(), nil, nil)
	tbl.Join("a", "Alice")
	tbl.Join("b", "Bob")

	before := tbl.Snapshot()
	if _, err := tbl.Join("c", "Cara"); err != nil {
		t.Fatalf("join c: %v", err)
	}
	after := tbl.Snapshot()

	if after.Phase != before.Phase || after.Pot != before.Pot {
		t.Fatalf("mid-hand join disturbed the hand: %v/%d -> %v/%d",
			before.Phase, before.Pot, after.Phase, after.Pot)
	}
	c := findPlayer(t, after, "c")
	if len(c.Cards) != 0 {
		t.Fatalf("newcomer must not hold cards mid-hand")
	}
}
