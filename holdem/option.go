package holdem

import "fmt"

// Round identifies a betting round. Dealer actions partition the
// action log into rounds in this fixed order.
type Round int

const (
	Preflop Round = iota
	Flop
	Turn
	River
)

// rounds in dealing order, used wherever per-round tables are built.
var rounds = [...]Round{Preflop, Flop, Turn, River}

// String returns the round name.
func (r Round) String() string {
	return [...]string{"preflop", "flop", "turn", "river"}[r]
}

// dealerKind returns the dealer action kind that opens the round.
func (r Round) dealerKind() ActionKind {
	return [...]ActionKind{ActionPreflop, ActionFlop, ActionTurn, ActionRiver}[r]
}

// roundOf maps a dealer action kind to the round it opens.
func roundOf(k ActionKind) (Round, bool) {
	switch k {
	case ActionPreflop:
		return Preflop, true
	case ActionFlop:
		return Flop, true
	case ActionTurn:
		return Turn, true
	case ActionRiver:
		return River, true
	default:
		return 0, false
	}
}

// Option is one legal choice offered to an actor. It is ephemeral:
// computed by Options, never stored in the log.
//
// For a dealer option, Cards is the number of cards the dealing
// collaborator must supply (3 for the flop, 1 for turn and river).
// A call option carries the exact Amount and its all-in flag; a bet
// option carries the inclusive [Min, Max] range. Fold, check, blind
// and straddle options carry only the seat.
type Option struct {
	Kind    ActionKind
	Seat    int
	Amount  int
	IsAllIn bool
	Min     int
	Max     int
	Cards   int
}

// IsDealer reports whether the option is a dealer transition.
func (o Option) IsDealer() bool { return o.Kind >= ActionPreflop }

// String renders the option for prompts and logs.
func (o Option) String() string {
	switch o.Kind {
	case ActionCall:
		s := fmt.Sprintf("[%d]call %d", o.Seat, o.Amount)
		if o.IsAllIn {
			s += " all-in"
		}
		return s
	case ActionBet:
		return fmt.Sprintf("[%d]bet %d-%d", o.Seat, o.Min, o.Max)
	case ActionFold, ActionCheck, ActionBlind, ActionStraddle:
		return fmt.Sprintf("[%d]%s", o.Seat, o.Kind)
	case ActionFlop, ActionTurn, ActionRiver:
		return fmt.Sprintf("%s (%d cards)", o.Kind, o.Cards)
	default:
		return o.Kind.String()
	}
}

func dealerOption(k ActionKind) Option {
	return Option{Kind: k, Cards: k.dealtCards()}
}
