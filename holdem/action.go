package holdem

import (
	"encoding/json"
	"fmt"
)

// ActionKind discriminates the variants of Action and Option.
type ActionKind int

const (
	// Player actions.
	ActionFold ActionKind = iota
	ActionCheck
	ActionCall
	ActionBet
	ActionBlind
	ActionStraddle

	// Dealer actions.
	ActionPreflop
	ActionFlop
	ActionTurn
	ActionRiver
	ActionShowdown
)

var actionKindNames = [...]string{
	"fold", "check", "call", "bet", "blind", "straddle",
	"preflop", "flop", "turn", "river", "showdown",
}

// String returns the wire name of the kind, e.g. "fold" or "flop".
func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionKindNames) {
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
	return actionKindNames[k]
}

func actionKindFromString(s string) (ActionKind, bool) {
	for i, name := range actionKindNames {
		if name == s {
			return ActionKind(i), true
		}
	}
	return 0, false
}

// Action is one entry in a hand's append-only action log. Kind
// selects the variant: player actions carry Seat (and Amount/IsAllIn
// for wagers), dealer actions carry the dealt Cards.
type Action struct {
	Kind    ActionKind
	Seat    int
	Amount  int
	IsAllIn bool
	Cards   []Card
}

// Player action constructors.

// Fold folds the given seat.
func Fold(seat int) Action { return Action{Kind: ActionFold, Seat: seat} }

// Check checks the given seat.
func Check(seat int) Action { return Action{Kind: ActionCheck, Seat: seat} }

// Call matches the outstanding wager. Amount is the round-cumulative
// total the seat is calling to, not the increment.
func Call(seat, amount int, allIn bool) Action {
	return Action{Kind: ActionCall, Seat: seat, Amount: amount, IsAllIn: allIn}
}

// Bet bets or raises to amount for the round.
func Bet(seat, amount int, allIn bool) Action {
	return Action{Kind: ActionBet, Seat: seat, Amount: amount, IsAllIn: allIn}
}

// Blind posts a forced blind of amount.
func Blind(seat, amount int, allIn bool) Action {
	return Action{Kind: ActionBlind, Seat: seat, Amount: amount, IsAllIn: allIn}
}

// Straddle posts a straddle of amount.
func Straddle(seat, amount int, allIn bool) Action {
	return Action{Kind: ActionStraddle, Seat: seat, Amount: amount, IsAllIn: allIn}
}

// Dealer action constructors.

// DealPreflop marks the start of the hand.
func DealPreflop() Action { return Action{Kind: ActionPreflop} }

// DealFlop records the three flop cards.
func DealFlop(a, b, c Card) Action {
	return Action{Kind: ActionFlop, Cards: []Card{a, b, c}}
}

// DealTurn records the turn card.
func DealTurn(c Card) Action { return Action{Kind: ActionTurn, Cards: []Card{c}} }

// DealRiver records the river card.
func DealRiver(c Card) Action { return Action{Kind: ActionRiver, Cards: []Card{c}} }

// Showdown marks the hand terminal. No action is legal after it.
func Showdown() Action { return Action{Kind: ActionShowdown} }

// IsDealer reports whether the action is a dealer action.
func (a Action) IsDealer() bool { return a.Kind >= ActionPreflop }

// IsPlayer reports whether the action is a player action.
func (a Action) IsPlayer() bool { return !a.IsDealer() }

// IsWager reports whether the action puts chips in the pot beyond
// matching: a bet, blind or straddle. Calls are not wagers.
func (a Action) IsWager() bool {
	return a.Kind == ActionBet || a.Kind == ActionBlind || a.Kind == ActionStraddle
}

// IsForced reports whether the action is a forced preflop post.
func (a Action) IsForced() bool {
	return a.Kind == ActionBlind || a.Kind == ActionStraddle
}

// String renders the action in the compact log form, e.g. "[2]bet 10"
// or "flop AhKd2c".
func (a Action) String() string {
	switch a.Kind {
	case ActionFold, ActionCheck:
		return fmt.Sprintf("[%d]%s", a.Seat, a.Kind)
	case ActionCall, ActionBet, ActionBlind, ActionStraddle:
		s := fmt.Sprintf("[%d]%s %d", a.Seat, a.Kind, a.Amount)
		if a.IsAllIn {
			s += " all-in"
		}
		return s
	case ActionFlop, ActionTurn, ActionRiver:
		s := a.Kind.String() + " "
		for _, c := range a.Cards {
			s += c.String()
		}
		return s
	default:
		return a.Kind.String()
	}
}

// dealtCards returns how many cards each dealer action must carry.
func (k ActionKind) dealtCards() int {
	switch k {
	case ActionFlop:
		return 3
	case ActionTurn, ActionRiver:
		return 1
	default:
		return 0
	}
}

// checkShape validates the variant's field shape independent of any
// game state: the field-level schema check.
func (a Action) checkShape() error {
	switch a.Kind {
	case ActionFold, ActionCheck:
		if a.Amount != 0 || a.IsAllIn || len(a.Cards) != 0 {
			return fmt.Errorf("%s carries no amount or cards", a.Kind)
		}
	case ActionCall, ActionBet, ActionBlind, ActionStraddle:
		if a.Amount <= 0 {
			return fmt.Errorf("%s amount must be positive, got %d", a.Kind, a.Amount)
		}
		if len(a.Cards) != 0 {
			return fmt.Errorf("%s carries no cards", a.Kind)
		}
	case ActionPreflop, ActionShowdown:
		if a.Seat != 0 || a.Amount != 0 || a.IsAllIn || len(a.Cards) != 0 {
			return fmt.Errorf("%s carries no seat, amount or cards", a.Kind)
		}
	case ActionFlop, ActionTurn, ActionRiver:
		if want := a.Kind.dealtCards(); len(a.Cards) != want {
			return fmt.Errorf("%s wants %d cards, got %d", a.Kind, want, len(a.Cards))
		}
		if a.Seat != 0 || a.Amount != 0 || a.IsAllIn {
			return fmt.Errorf("%s carries no seat or amount", a.Kind)
		}
	default:
		return fmt.Errorf("unknown action kind %d", int(a.Kind))
	}
	return nil
}

// actionJSON is the wire shape of an Action, discriminated by the
// "action" field as in the canonical serialized hand form.
type actionJSON struct {
	Action  string `json:"action"`
	Seat    *int   `json:"seat,omitempty"`
	Amount  *int   `json:"amount,omitempty"`
	IsAllIn *bool  `json:"isAllIn,omitempty"`
	Cards   []Card `json:"cards,omitempty"`
}

// MarshalJSON encodes the action with its "action" discriminator.
func (a Action) MarshalJSON() ([]byte, error) {
	out := actionJSON{Action: a.Kind.String()}
	switch a.Kind {
	case ActionFold, ActionCheck:
		out.Seat = &a.Seat
	case ActionCall, ActionBet, ActionBlind, ActionStraddle:
		out.Seat = &a.Seat
		out.Amount = &a.Amount
		out.IsAllIn = &a.IsAllIn
	case ActionFlop, ActionTurn, ActionRiver:
		out.Cards = a.Cards
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes and shape-checks an action.
func (a *Action) UnmarshalJSON(data []byte) error {
	var raw actionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, ok := actionKindFromString(raw.Action)
	if !ok {
		return fmt.Errorf("unknown action %q", raw.Action)
	}

	decoded := Action{Kind: kind, Cards: raw.Cards}
	if kind < ActionPreflop {
		if raw.Seat == nil {
			return fmt.Errorf("%s requires a seat", kind)
		}
		decoded.Seat = *raw.Seat
	}
	if raw.Amount != nil {
		decoded.Amount = *raw.Amount
	}
	if raw.IsAllIn != nil {
		decoded.IsAllIn = *raw.IsAllIn
	}
	if err := decoded.checkShape(); err != nil {
		return err
	}
	*a = decoded
	return nil
}
