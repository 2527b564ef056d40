package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// preflopWith returns a four-seat 100-stack hand with the given player
// actions appended after the preflop marker.
func preflopWith(actions ...Action) *GameState {
	g := NewUniformGameState(4, 100)
	g.Actions = append([]Action{DealPreflop()}, actions...)
	return g
}

func TestMinBet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state *GameState
		want  int
	}{
		{
			name:  "blinds 1 and 2 open at twice the big blind",
			state: preflopWith(Blind(0, 1, false), Blind(1, 2, false)),
			want:  4,
		},
		{
			name:  "single blind 5",
			state: preflopWith(Blind(0, 5, false)),
			want:  10,
		},
		{
			name: "straddle is a raise over the big blind",
			state: preflopWith(
				Blind(0, 5, false),
				Blind(1, 10, false),
				Straddle(2, 20, false),
			),
			want: 30,
		},
		{
			name: "raise to 10 over 1/2 blinds",
			state: preflopWith(
				Blind(0, 1, false),
				Blind(1, 2, false),
				Bet(2, 10, false),
			),
			want: 18,
		},
		{
			name: "reraise to 30 preserves the 20 increment",
			state: preflopWith(
				Blind(0, 1, false),
				Blind(1, 2, false),
				Bet(2, 10, false),
				Bet(3, 30, false),
			),
			want: 50,
		},
		{
			name: "unopened flop falls back to the big blind",
			state: func() *GameState {
				g := preflopWith(
					Blind(0, 1, false),
					Blind(1, 2, false),
					Call(2, 2, false),
					Fold(3),
					Call(0, 2, false),
					Check(1),
				)
				g.Actions = append(g.Actions, DealFlop(Card{Ace, Hearts}, Card{King, Diamonds}, Card{Two, Clubs}))
				return g
			}(),
			want: 2,
		},
		{
			name: "all-in call for less does not move the minimum",
			state: preflopWith(
				Blind(0, 1, false),
				Blind(1, 2, false),
				Bet(2, 10, false),
				Call(3, 7, true),
			),
			want: 18,
		},
		{
			name: "short all-in bet does not move the minimum",
			state: preflopWith(
				Blind(0, 1, false),
				Blind(1, 2, false),
				Bet(2, 10, false),
				Bet(3, 12, true),
			),
			want: 18,
		},
		{
			name: "consecutive short all-ins never compound",
			state: preflopWith(
				Blind(0, 1, false),
				Blind(1, 2, false),
				Bet(2, 10, false),
				Bet(3, 12, true),
				Bet(0, 14, true),
			),
			want: 18,
		},
		{
			name: "all-in full raise reopens and resizes",
			state: preflopWith(
				Blind(0, 1, false),
				Blind(1, 2, false),
				Bet(2, 10, false),
				Bet(3, 25, true),
			),
			want: 40,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.state.MinBet())
		})
	}
}

func TestMinBetReopenPercent(t *testing.T) {
	t.Parallel()

	g := preflopWith(
		Blind(0, 1, false),
		Blind(1, 2, false),
		Bet(2, 10, false),
		Bet(3, 15, true),
	)

	// Under the full-raise rule a 15 all-in over a raise to 10 is
	// short: the minimum stays at 18.
	assert.Equal(t, 18, g.MinBet())

	// At half a raise it qualifies and sets the new increment.
	g.Rules.ReopenPercent = 0.5
	assert.Equal(t, 20, g.MinBet())
}

func TestMaxBet(t *testing.T) {
	t.Parallel()

	g := simpleSetupHand()

	// Wagers are round-cumulative, so the cap is the stack at the
	// start of the round, not what is left mid-round.
	assert.Equal(t, 70, g.MaxBet(5))
	assert.Equal(t, 100, g.At(5).MaxBet(4))
	assert.Equal(t, 90, g.At(11).MaxBet(4))

	assert.Panics(t, func() { g.MaxBet(6) })
	assert.Panics(t, func() { g.MaxBet(-1) })
}

func TestMaxBetUnknownStack(t *testing.T) {
	t.Parallel()

	g := NewGameState(StackOf(100), UnknownStack(), StackOf(250))
	g.Actions = []Action{DealPreflop(), Blind(0, 1, false), Blind(1, 2, false)}

	assert.Equal(t, 250, g.MaxBet(1))
}

func TestMinMaxBet(t *testing.T) {
	t.Parallel()

	g := preflopWith(
		Blind(0, 1, false),
		Blind(1, 2, false),
		Bet(2, 10, false),
	)

	minBet, maxBet := g.MinMaxBet(3)
	assert.Equal(t, 18, minBet)
	assert.Equal(t, 100, maxBet)

	// A seat too short for the full raise gets a collapsed range at
	// its forced all-in size.
	short := NewGameState(StackOf(100), StackOf(100), StackOf(100), StackOf(12))
	short.Actions = g.Actions
	minBet, maxBet = short.MinMaxBet(3)
	assert.Equal(t, 12, minBet)
	assert.Equal(t, 12, maxBet)
}
