package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/holdem"
)

func fixtureHand() *holdem.GameState {
	g := holdem.NewUniformGameState(3, 100)
	return g.
		MustApply(holdem.DealPreflop()).
		MustApply(holdem.Blind(0, 1, false)).
		MustApply(holdem.Blind(1, 2, false)).
		MustApply(holdem.Fold(2)).
		MustApply(holdem.Call(0, 2, false)).
		MustApply(holdem.Check(1)).
		MustApply(holdem.DealFlop(
			holdem.Card{Rank: holdem.Ace, Suit: holdem.Hearts},
			holdem.Card{Rank: holdem.King, Suit: holdem.Spades},
			holdem.Card{Rank: holdem.Two, Suit: holdem.Clubs},
		))
}

func TestSeats(t *testing.T) {
	t.Parallel()

	out := Seats(fixtureHand())
	assert.Contains(t, out, "seat 0")
	assert.Contains(t, out, "seat 2")
	assert.Contains(t, out, "folded")
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "98")
}

func TestActions(t *testing.T) {
	t.Parallel()

	out := Actions(fixtureHand())
	assert.Contains(t, out, "preflop")
	assert.Contains(t, out, "[0]blind 1")
	assert.Contains(t, out, "[2]fold")
	assert.NotContains(t, out, "turn")
}

func TestBoard(t *testing.T) {
	t.Parallel()

	out := Board(fixtureHand())
	assert.Contains(t, out, "Ah")
	assert.Contains(t, out, "Ks")
	assert.Contains(t, out, "2c")

	assert.Empty(t, Board(holdem.NewUniformGameState(2, 100)))
}

func TestOptions(t *testing.T) {
	t.Parallel()

	options, err := fixtureHand().Options()
	require.NoError(t, err)

	out := Options(options)
	assert.Contains(t, out, "1)")
	assert.Contains(t, out, "[0]fold")
	assert.Contains(t, out, "[0]check")
}
