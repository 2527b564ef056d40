package holdem

import "fmt"

// ValidateAction checks a proposed action against the option set
// derived from the current log. It returns nil when the action is
// legal, or a typed error saying exactly why it is not. Nothing is
// ever silently corrected.
func (g *GameState) ValidateAction(next Action) error {
	if err := next.checkShape(); err != nil {
		return fmt.Errorf("holdem: %w", err)
	}
	options, err := g.Options()
	if err != nil {
		return err
	}

	if next.IsDealer() {
		if !options[0].IsDealer() || options[0].Kind != next.Kind {
			return &NotOfferedError{Kind: next.Kind}
		}
		return nil
	}

	if options[0].IsDealer() {
		return &NotOfferedError{Kind: next.Kind, Seat: next.Seat}
	}
	if actor := options[0].Seat; next.Seat != actor {
		return &WrongSeatError{Seat: next.Seat, Want: actor}
	}

	for _, o := range options {
		if o.Kind != next.Kind {
			continue
		}
		switch next.Kind {
		case ActionCall:
			if next.Amount != o.Amount {
				return &AmountError{Kind: next.Kind, Amount: next.Amount, Min: o.Amount, Max: o.Amount}
			}
		case ActionBet:
			if next.Amount < o.Min || next.Amount > o.Max {
				return &AmountError{Kind: next.Kind, Amount: next.Amount, Min: o.Min, Max: o.Max}
			}
		case ActionBlind, ActionStraddle:
			// Forced-post sizes are table convention, not engine
			// rules, but no seat can post past its stack.
			if maxBet := g.MaxBet(next.Seat); next.Amount > maxBet {
				return &AmountError{Kind: next.Kind, Amount: next.Amount, Min: 1, Max: maxBet}
			}
		}
		return nil
	}
	return &NotOfferedError{Kind: next.Kind, Seat: next.Seat}
}

// Apply validates the action against the live end of the log,
// normalizes its all-in flag from the actor's bettable stack, and
// returns a new state with the action appended. The input state is
// never modified.
func (g *GameState) Apply(next Action) (*GameState, error) {
	if err := g.ValidateAction(next); err != nil {
		return nil, err
	}

	if next.IsPlayer() && next.Amount > 0 {
		if stack := g.BettableStacks()[next.Seat]; stack.Known() {
			next.IsAllIn = next.Amount >= stack.Amount()
		}
	}

	applied := g.Clone()
	applied.Actions = append(applied.Actions, next)
	return applied, nil
}

// MustApply is Apply for hand-built sequences that are known legal,
// such as tests and fixtures. It panics on an illegal action.
func (g *GameState) MustApply(next Action) *GameState {
	applied, err := g.Apply(next)
	if err != nil {
		panic(err)
	}
	return applied
}

// Verify replays the whole log, validating every action against the
// options at its index. It is the integrity check for hands loaded
// from outside: a nil return means the log is a legal hand history.
func (g *GameState) Verify() error {
	if err := g.Validate(); err != nil {
		return err
	}
	for i, a := range g.Actions {
		if err := g.At(i).ValidateAction(a); err != nil {
			return fmt.Errorf("holdem: action %d (%s): %w", i, a, err)
		}
	}
	return nil
}
