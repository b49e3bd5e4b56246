// Package codec defines the JSON wire protocol between clients and the
// gateway, and converts engine snapshots into per-viewer payloads.
package codec

import (
	"errors"

	"pokertab/holdem"
)

// Client -> server message types.
const (
	MsgJoinTable    = "join_table"
	MsgLeaveTable   = "leave_table"
	MsgPlayerAction = "player_action"
)

// Server -> client message types.
const (
	MsgTableState = "table_state"
	MsgError      = "error"
)

// ClientEnvelope is a single inbound client message.
type ClientEnvelope struct {
	Type    string `json:"type"`
	TableID string `json:"tableId"`
	Action  string `json:"action,omitempty"`
	Amount  *int   `json:"amount,omitempty"`
}

// ServerEnvelope is a single outbound server message.
type ServerEnvelope struct {
	Type  string      `json:"type"`
	Table *TableState `json:"table,omitempty"`
	Error *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TableState is the broadcast view of a table.
type TableState struct {
	ID             string        `json:"id"`
	Phase          string        `json:"phase"`
	Pot            int           `json:"pot"`
	CurrentBet     int           `json:"currentBet"`
	DealerIndex    int           `json:"dealerIndex"`
	CommunityCards []string      `json:"communityCards"`
	Players        []PlayerState `json:"players"`
	Winner         *WinnerState  `json:"winner,omitempty"`
}

type PlayerState struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Chips        int      `json:"chips"`
	Position     int      `json:"position"`
	Cards        []string `json:"cards,omitempty"`
	HasCards     bool     `json:"hasCards"`
	Bet          int      `json:"bet"`
	Folded       bool     `json:"folded"`
	IsDealer     bool     `json:"isDealer"`
	IsSmallBlind bool     `json:"isSmallBlind"`
	IsBigBlind   bool     `json:"isBigBlind"`
	IsTurn       bool     `json:"isTurn"`
}

type WinnerState struct {
	PlayerID string `json:"playerId"`
	Amount   int    `json:"amount"`
}

// TableStateFor builds the view of a snapshot for one viewer: only the
// viewer's own hole cards are exposed, everyone else's stay hidden.
func TableStateFor(viewerID string, snap holdem.Snapshot) *TableState {
	ts := &TableState{
		ID:             snap.TableID,
		Phase:          snap.Phase.String(),
		Pot:            snap.Pot,
		CurrentBet:     snap.CurrentBet,
		DealerIndex:    snap.DealerIndex,
		CommunityCards: make([]string, 0, len(snap.CommunityCards)),
	}
	for _, c := range snap.CommunityCards {
		ts.CommunityCards = append(ts.CommunityCards, c.String())
	}
	if snap.Winner != nil {
		ts.Winner = &WinnerState{PlayerID: snap.Winner.PlayerID, Amount: snap.Winner.Amount}
	}
	for _, p := range snap.Players {
		ps := PlayerState{
			ID:           p.ID,
			Name:         p.Name,
			Chips:        p.Chips,
			Position:     p.Position,
			HasCards:     len(p.Cards) > 0,
			Bet:          p.Bet,
			Folded:       p.Folded,
			IsDealer:     p.IsDealer,
			IsSmallBlind: p.IsSmallBlind,
			IsBigBlind:   p.IsBigBlind,
			IsTurn:       p.IsTurn,
		}
		if p.ID == viewerID {
			for _, c := range p.Cards {
				ps.Cards = append(ps.Cards, c.String())
			}
		}
		ts.Players = append(ts.Players, ps)
	}
	return ts
}

// ErrorCode maps engine errors onto stable wire codes.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, holdem.ErrTableFull):
		return "table_full"
	case errors.Is(err, holdem.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, holdem.ErrIllegalCheck):
		return "illegal_check"
	case errors.Is(err, holdem.ErrUnknownAction):
		return "unknown_action"
	default:
		return "internal"
	}
}
