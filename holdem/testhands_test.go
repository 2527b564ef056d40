package holdem

// Shared fixtures. simpleSetupHand is a full six-handed 1/2 hand that
// reaches showdown: seats 2 and 3 fold preflop to a raise, seat 1
// calls down to the flop, and seat 5 ends up all-in on the river.
//
// index  0        1          2          3      4      5          6
//        preflop  blind(0,1) blind(1,2) fold2  fold3  bet(4,10)  call(5,10)
// index  7        8          9      10      11         12          13
//        fold0    call(1,10) flop   check1  bet(4,20)  call(5,20)  fold1
// index  14     15      16      17     18      19              20
//        turn   check4  check5  river  check4  bet(5,70,all)   fold4

func simpleSetupHand() *GameState {
	g := NewUniformGameState(6, 100)
	g.Actions = []Action{
		DealPreflop(),
		Blind(0, 1, false),
		Blind(1, 2, false),
		Fold(2),
		Fold(3),
		Bet(4, 10, false),
		Call(5, 10, false),
		Fold(0),
		Call(1, 10, false),
		DealFlop(Card{Ace, Hearts}, Card{King, Diamonds}, Card{Two, Clubs}),
		Check(1),
		Bet(4, 20, false),
		Call(5, 20, false),
		Fold(1),
		DealTurn(Card{Seven, Spades}),
		Check(4),
		Check(5),
		DealRiver(Card{Queen, Clubs}),
		Check(4),
		Bet(5, 70, true),
		Fold(4),
	}
	return g
}

// blindsPosted returns a fresh six-handed 1/2 hand with both blinds
// in and seat 2 to act.
func blindsPosted() *GameState {
	g := NewUniformGameState(6, 100)
	g.Actions = []Action{
		DealPreflop(),
		Blind(0, 1, false),
		Blind(1, 2, false),
	}
	return g
}

func optionKinds(options []Option) []ActionKind {
	kinds := make([]ActionKind, len(options))
	for i, o := range options {
		kinds[i] = o.Kind
	}
	return kinds
}

func findOption(options []Option, kind ActionKind) (Option, bool) {
	for _, o := range options {
		if o.Kind == kind {
			return o, true
		}
	}
	return Option{}, false
}
