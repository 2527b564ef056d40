package holdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Parallel()

	s := StackOf(100)
	assert.True(t, s.Known())
	assert.Equal(t, 100, s.Amount())
	assert.Equal(t, 70, s.Sub(30).Amount())
	assert.Equal(t, "100", s.String())

	u := UnknownStack()
	assert.False(t, u.Known())
	assert.False(t, u.Sub(30).Known())
	assert.Equal(t, "unknown", u.String())
	assert.Panics(t, func() { u.Amount() })
}

func TestStackJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal([]Stack{StackOf(50), UnknownStack()})
	require.NoError(t, err)
	assert.Equal(t, `[50,"unknown"]`, string(data))

	var stacks []Stack
	require.NoError(t, json.Unmarshal(data, &stacks))
	assert.Equal(t, []Stack{StackOf(50), UnknownStack()}, stacks)

	var s Stack
	assert.Error(t, json.Unmarshal([]byte(`"oops"`), &s))
}

func TestNewGameState(t *testing.T) {
	t.Parallel()

	g := NewGameState(StackOf(100), UnknownStack(), StackOf(40))
	assert.Len(t, g.Seats, 3)
	assert.Equal(t, DefaultRules(), g.Rules)
	assert.Empty(t, g.Actions)

	assert.Panics(t, func() { NewGameState(StackOf(100)) })
	assert.Panics(t, func() { NewGameState() })
}

func TestAt(t *testing.T) {
	t.Parallel()

	g := simpleSetupHand()

	assert.Empty(t, g.At(0).Actions)
	assert.Len(t, g.At(5).Actions, 5)
	assert.Equal(t, g.Actions, g.At(len(g.Actions)).Actions)

	// Truncation is a view into history, never a mutation of it.
	before := len(g.Actions)
	g.At(3)
	assert.Len(t, g.Actions, before)

	assert.Panics(t, func() { g.At(-1) })
	assert.Panics(t, func() { g.At(len(g.Actions) + 1) })
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	g := simpleSetupHand()
	cp := g.Clone()
	require.Equal(t, g, cp)

	cp.Actions[9].Cards[0] = Card{Three, Spades}
	cp.Seats[0] = Seat{StartingStack: StackOf(1)}
	assert.Equal(t, Card{Ace, Hearts}, g.Actions[9].Cards[0])
	assert.Equal(t, StackOf(100), g.Seats[0].StartingStack)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, simpleSetupHand().Validate())
	require.NoError(t, NewUniformGameState(2, 100).Validate())

	tests := []struct {
		name  string
		state *GameState
	}{
		{
			name:  "one seat",
			state: &GameState{Seats: []Seat{{StartingStack: StackOf(100)}}},
		},
		{
			name: "zero stack",
			state: &GameState{Seats: []Seat{
				{StartingStack: StackOf(0)},
				{StartingStack: StackOf(100)},
			}},
		},
		{
			name: "log does not start with preflop",
			state: func() *GameState {
				g := NewUniformGameState(2, 100)
				g.Actions = []Action{Blind(0, 1, false)}
				return g
			}(),
		},
		{
			name: "dealer actions out of order",
			state: func() *GameState {
				g := NewUniformGameState(2, 100)
				g.Actions = []Action{DealPreflop(), DealTurn(Card{Two, Clubs})}
				g.Actions = append(g.Actions, DealFlop(Card{Ace, Hearts}, Card{King, Hearts}, Card{Queen, Hearts}))
				return g
			}(),
		},
		{
			name: "action after showdown",
			state: func() *GameState {
				g := NewUniformGameState(2, 100)
				g.Actions = []Action{DealPreflop(), Showdown(), Fold(0)}
				return g
			}(),
		},
		{
			name: "seat out of range",
			state: func() *GameState {
				g := NewUniformGameState(2, 100)
				g.Actions = []Action{DealPreflop(), Blind(5, 1, false)}
				return g
			}(),
		},
		{
			name: "negative amount",
			state: func() *GameState {
				g := NewUniformGameState(2, 100)
				g.Actions = []Action{DealPreflop(), Blind(0, -1, false)}
				return g
			}(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, tc.state.Validate())
		})
	}
}

func TestGameStateJSON(t *testing.T) {
	t.Parallel()

	g := simpleSetupHand()
	data, err := json.Marshal(g)
	require.NoError(t, err)

	// Canonical top-level keys.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "seats")
	assert.Contains(t, raw, "actionList")
	assert.Contains(t, raw, "options")

	var decoded GameState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, g, &decoded)
	require.NoError(t, decoded.Verify())
}

func TestActionJSON(t *testing.T) {
	t.Parallel()

	// Seat 0 must survive the round trip despite being the zero value.
	data, err := json.Marshal(Fold(0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"fold","seat":0}`, string(data))

	data, err = json.Marshal(Bet(2, 10, true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"bet","seat":2,"amount":10,"isAllIn":true}`, string(data))

	data, err = json.Marshal(DealFlop(Card{Ace, Hearts}, Card{King, Diamonds}, Card{Two, Clubs}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"flop","cards":["Ah","Kd","2c"]}`, string(data))

	var a Action
	require.NoError(t, json.Unmarshal([]byte(`{"action":"call","seat":1,"amount":10,"isAllIn":false}`), &a))
	assert.Equal(t, Call(1, 10, false), a)

	assert.Error(t, json.Unmarshal([]byte(`{"action":"levitate","seat":1}`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{"action":"fold"}`), &a), "player action without a seat")
	assert.Error(t, json.Unmarshal([]byte(`{"action":"bet","seat":1,"amount":0}`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{"action":"flop","cards":["Ah"]}`), &a))
}

func TestActionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[2]fold", Fold(2).String())
	assert.Equal(t, "[4]bet 10", Bet(4, 10, false).String())
	assert.Equal(t, "[5]call 70 all-in", Call(5, 70, true).String())
	assert.Equal(t, "flop AhKd2c", DealFlop(Card{Ace, Hearts}, Card{King, Diamonds}, Card{Two, Clubs}).String())
	assert.Equal(t, "showdown", Showdown().String())
}
