package holdem

// Phase is the current stage of a hand's betting structure.
type Phase byte

const (
	PhaseWaiting Phase = iota
	PhasePreflop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
)

var phaseNames = map[Phase]string{
	PhaseWaiting:  "waiting",
	PhasePreflop:  "preflop",
	PhaseFlop:     "flop",
	PhaseTurn:     "turn",
	PhaseRiver:    "river",
	PhaseShowdown: "showdown",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// ActionType is the closed set of betting actions. Unknown tags are rejected
// at the boundary before they reach the state machine.
type ActionType byte

const (
	ActionFold ActionType = iota + 1
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
)

var actionNames = map[ActionType]string{
	ActionFold:  "fold",
	ActionCheck: "check",
	ActionCall:  "call",
	ActionBet:   "bet",
	ActionRaise: "raise",
}

func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseActionType maps a wire tag to an ActionType. An unrecognized tag is a
// protocol violation, not a silent no-op.
func ParseActionType(s string) (ActionType, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return 0, ErrUnknownAction
}

// Action is a validated player action. Amount is meaningful only for bet and
// raise; HasAmount distinguishes an explicit amount from the default sizing.
type Action struct {
	Type      ActionType
	Amount    int
	HasAmount bool
}

// Winner is the transient settlement record kept for one broadcast between
// hand end and the next restart.
type Winner struct {
	PlayerID string
	Amount   int
}
