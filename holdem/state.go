package holdem

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Stack is a chip count that may be unknown. Hands captured from
// partial records (live reads, imported histories) can have seats
// whose stack was never observed; the unknown case propagates through
// all arithmetic instead of being coerced to a number.
type Stack struct {
	amount int
	known  bool
}

// StackOf returns a known stack of the given size.
func StackOf(amount int) Stack {
	return Stack{amount: amount, known: true}
}

// UnknownStack returns the unknown-stack sentinel.
func UnknownStack() Stack {
	return Stack{}
}

// Known reports whether the stack size is known.
func (s Stack) Known() bool { return s.known }

// Amount returns the chip count. It panics on an unknown stack;
// callers must branch on Known first.
func (s Stack) Amount() int {
	if !s.known {
		panic("holdem: Amount called on unknown stack")
	}
	return s.amount
}

// Sub returns the stack reduced by n chips. Unknown stays unknown.
func (s Stack) Sub(n int) Stack {
	if !s.known {
		return s
	}
	return StackOf(s.amount - n)
}

// String returns the chip count or "unknown".
func (s Stack) String() string {
	if !s.known {
		return "unknown"
	}
	return fmt.Sprintf("%d", s.amount)
}

// MarshalJSON encodes a known stack as a number and an unknown stack
// as the string "unknown".
func (s Stack) MarshalJSON() ([]byte, error) {
	if !s.known {
		return json.Marshal("unknown")
	}
	return json.Marshal(s.amount)
}

// UnmarshalJSON decodes a number or the string "unknown".
func (s *Stack) UnmarshalJSON(data []byte) error {
	var amount int
	if err := json.Unmarshal(data, &amount); err == nil {
		*s = StackOf(amount)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil || str != "unknown" {
		return fmt.Errorf("stack must be a number or \"unknown\", got %s", string(data))
	}
	*s = UnknownStack()
	return nil
}

// Seat is one position at the table. Seats are created at hand setup
// and never mutated; remaining stacks are always derived from the
// action log, never stored.
type Seat struct {
	StartingStack Stack `json:"startingStack"`
}

// Rules holds table configuration that changes how options are
// computed.
type Rules struct {
	// ReopenPercent scales the increment an all-in must add over the
	// previous raise to count as a full raise and reopen betting.
	// 1.0 is the standard full-raise rule.
	ReopenPercent float64 `json:"reopenPercent"`
}

// DefaultRules returns the standard no-limit rules.
func DefaultRules() Rules {
	return Rules{ReopenPercent: 1.0}
}

// GameState is a complete hand record: seats, the append-only action
// log, and the table rules. The {seats, actionList, options} JSON
// form is the canonical serialized shape for saving and replaying
// hands.
//
// The engine treats states as immutable: queries are pure and Apply
// copies out. The caller owns the value and drives all mutation.
type GameState struct {
	Seats   []Seat   `json:"seats"`
	Actions []Action `json:"actionList"`
	Rules   Rules    `json:"options"`
}

// NewGameState creates a hand for the given starting stacks with
// default rules and an empty action log. It panics with fewer than
// two seats; that is a caller bug, not game state.
func NewGameState(stacks ...Stack) *GameState {
	if len(stacks) < 2 {
		panic("holdem: at least 2 seats required")
	}
	seats := make([]Seat, len(stacks))
	for i, s := range stacks {
		seats[i] = Seat{StartingStack: s}
	}
	return &GameState{Seats: seats, Rules: DefaultRules()}
}

// NewUniformGameState creates a hand of n seats all starting with the
// same stack.
func NewUniformGameState(seats, stack int) *GameState {
	stacks := make([]Stack, seats)
	for i := range stacks {
		stacks[i] = StackOf(stack)
	}
	return NewGameState(stacks...)
}

// Clone returns a deep copy the caller can mutate freely.
func (g *GameState) Clone() *GameState {
	cp := &GameState{
		Seats:   append([]Seat(nil), g.Seats...),
		Actions: make([]Action, len(g.Actions)),
		Rules:   g.Rules,
	}
	for i, a := range g.Actions {
		a.Cards = append([]Card(nil), a.Cards...)
		cp.Actions[i] = a
	}
	return cp
}

// At returns the state truncated to the first index actions: the hand
// as it stood at that point in history. It panics on an out-of-range
// index.
func (g *GameState) At(index int) *GameState {
	if index < 0 || index > len(g.Actions) {
		panic(fmt.Sprintf("holdem: action index %d out of range [0, %d]", index, len(g.Actions)))
	}
	return &GameState{
		Seats:   g.Seats,
		Actions: g.Actions[:index:index],
		Rules:   g.Rules,
	}
}

// Validate checks the structural invariants of the state: at least
// two seats, positive known stacks, seats in range, and dealer
// actions appearing at most once each in the fixed
// preflop/flop/turn/river/showdown order with nothing after showdown.
// It does not check that each action was legal when taken; Verify
// does that.
func (g *GameState) Validate() error {
	if len(g.Seats) < 2 {
		return fmt.Errorf("holdem: at least 2 seats required, got %d", len(g.Seats))
	}
	for i, seat := range g.Seats {
		if seat.StartingStack.Known() && seat.StartingStack.Amount() <= 0 {
			return fmt.Errorf("holdem: seat %d: starting stack must be positive, got %d",
				i, seat.StartingStack.Amount())
		}
	}

	lastDealer := ActionKind(-1)
	for i, a := range g.Actions {
		if err := a.checkShape(); err != nil {
			return fmt.Errorf("holdem: action %d: %w", i, err)
		}
		if i == 0 && a.Kind != ActionPreflop {
			return fmt.Errorf("holdem: action log must begin with preflop, got %s", a.Kind)
		}
		if lastDealer == ActionShowdown {
			return fmt.Errorf("holdem: action %d: %s after showdown", i, a.Kind)
		}
		if a.IsDealer() {
			if a.Kind <= lastDealer {
				return fmt.Errorf("holdem: action %d: %s out of dealer order", i, a.Kind)
			}
			lastDealer = a.Kind
			continue
		}
		if a.Seat < 0 || a.Seat >= len(g.Seats) {
			return fmt.Errorf("holdem: action %d: seat %d out of range", i, a.Seat)
		}
	}
	return nil
}

// String renders the action log on a single line, one segment per
// action.
func (g *GameState) String() string {
	var b strings.Builder
	for i, a := range g.Actions {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(a.String())
	}
	return b.String()
}
