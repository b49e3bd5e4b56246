package holdem

import "errors"

var (
	ErrTableFull     = errors.New("table full")
	ErrNotYourTurn   = errors.New("action out of turn")
	ErrIllegalCheck  = errors.New("cannot check: there is a bet to call")
	ErrUnknownAction = errors.New("unknown action")
)
