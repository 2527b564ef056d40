package holdem

import (
	"errors"
	"fmt"
)

// ErrHandOver is returned when options or actions are requested after
// the showdown marker has been appended.
var ErrHandOver = errors.New("holdem: hand is over")

// WrongSeatError reports an action submitted by a seat that does not
// have the action.
type WrongSeatError struct {
	Seat int // the seat that submitted the action
	Want int // the seat with the action
}

func (e *WrongSeatError) Error() string {
	return fmt.Sprintf("holdem: seat %d acted out of turn, action is on seat %d", e.Seat, e.Want)
}

// NotOfferedError reports an action kind that is not in the current
// option set.
type NotOfferedError struct {
	Kind ActionKind
	Seat int
}

func (e *NotOfferedError) Error() string {
	return fmt.Sprintf("holdem: %s is not a legal action for seat %d here", e.Kind, e.Seat)
}

// AmountError reports a call or bet amount outside the computed
// bounds. For a call Min and Max are both the exact call amount.
type AmountError struct {
	Kind   ActionKind
	Amount int
	Min    int
	Max    int
}

func (e *AmountError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("holdem: %s amount %d, must be exactly %d", e.Kind, e.Amount, e.Min)
	}
	return fmt.Sprintf("holdem: %s amount %d outside range %d-%d", e.Kind, e.Amount, e.Min, e.Max)
}
