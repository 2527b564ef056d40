package holdem

// History projections: pure derivations over the action log. Nothing
// here is cached or incrementally maintained. Every function walks the
// log from the start, which keeps each answer trivially consistent
// with the history at the cost of O(n) work on hand-sized logs.

// roundIndexes returns the log index of each round's dealer marker,
// -1 where the round has not been dealt.
func (g *GameState) roundIndexes() [len(rounds)]int {
	idx := [len(rounds)]int{-1, -1, -1, -1}
	for i, a := range g.Actions {
		if r, ok := roundOf(a.Kind); ok {
			idx[r] = i
		}
	}
	return idx
}

// showdownIndex returns the log index of the showdown marker, or -1.
func (g *GameState) showdownIndex() int {
	for i, a := range g.Actions {
		if a.Kind == ActionShowdown {
			return i
		}
	}
	return -1
}

// CurrentRound returns the round the hand is in: the last dealer
// marker seen, or preflop when none has been dealt yet. It returns
// ErrHandOver once showdown is in the log.
func (g *GameState) CurrentRound() (Round, error) {
	if g.showdownIndex() != -1 {
		return 0, ErrHandOver
	}
	current := Preflop
	for _, a := range g.Actions {
		if r, ok := roundOf(a.Kind); ok {
			current = r
		}
	}
	return current, nil
}

// ActionsByRound partitions the player actions into the four rounds
// using the dealer markers as delimiters. Player actions before the
// first marker count as preflop.
func (g *GameState) ActionsByRound() [len(rounds)][]Action {
	var byRound [len(rounds)][]Action
	current := Preflop
	for _, a := range g.Actions {
		if a.Kind == ActionShowdown {
			break
		}
		if r, ok := roundOf(a.Kind); ok {
			current = r
			continue
		}
		byRound[current] = append(byRound[current], a)
	}
	return byRound
}

// FoldedSeats returns the per-seat folded flags. Folding is
// irreversible, so the set grows monotonically along the log.
func (g *GameState) FoldedSeats() []bool {
	folded := make([]bool, len(g.Seats))
	for _, a := range g.Actions {
		if a.Kind == ActionFold {
			folded[a.Seat] = true
		}
	}
	return folded
}

// AllInSeats returns the per-seat all-in flags. Like folding, going
// all-in is irreversible within a hand.
func (g *GameState) AllInSeats() []bool {
	allIn := make([]bool, len(g.Seats))
	for _, a := range g.Actions {
		if a.IsPlayer() && a.IsAllIn {
			allIn[a.Seat] = true
		}
	}
	return allIn
}

// LiveSeats returns, in seat order, the seats still capable of
// voluntary action: neither folded nor all-in.
func (g *GameState) LiveSeats() []int {
	folded := g.FoldedSeats()
	allIn := g.AllInSeats()
	var live []int
	for seat := range g.Seats {
		if !folded[seat] && !allIn[seat] {
			live = append(live, seat)
		}
	}
	return live
}

// currentRoundStart returns the log index of the current round's
// dealer marker, or -1 on an empty log.
func (g *GameState) currentRoundStart() int {
	start := -1
	for i, a := range g.Actions {
		if _, ok := roundOf(a.Kind); ok {
			start = i
		}
	}
	return start
}

// playerActionsThisRound returns the player actions after the current
// round's dealer marker.
func (g *GameState) playerActionsThisRound() []Action {
	start := g.currentRoundStart()
	var actions []Action
	for _, a := range g.Actions[start+1:] {
		if a.IsPlayer() {
			actions = append(actions, a)
		}
	}
	return actions
}

// SeatsAtRoundStart returns, in seat order, the seats that entered
// the current round with action behind: everyone who had not folded
// or gone all-in before the round's dealer marker.
func (g *GameState) SeatsAtRoundStart() []int {
	start := g.currentRoundStart()
	out := make([]bool, len(g.Seats))
	for i := 0; i < start; i++ {
		a := g.Actions[i]
		if a.IsPlayer() && (a.Kind == ActionFold || a.IsAllIn) {
			out[a.Seat] = true
		}
	}
	var seats []int
	for seat, gone := range out {
		if !gone {
			seats = append(seats, seat)
		}
	}
	return seats
}

// cycleSeats moves the head of the rotation to the back. Seats keep
// their identity; only the order changes.
func cycleSeats(seats []int) []int {
	if len(seats) < 2 {
		return seats
	}
	return append(seats[1:len(seats):len(seats)], seats[0])
}

// removeSeat filters a seat out of the rotation.
func removeSeat(seats []int, seat int) []int {
	out := seats[:0:0]
	for _, s := range seats {
		if s != seat {
			out = append(out, s)
		}
	}
	return out
}

// SeatOrder returns the acting rotation after the last action of the
// current round: the head of the slice is the seat due to act next.
// A seat leaves the rotation the moment it folds or goes all-in; any
// other action cycles it to the back.
func (g *GameState) SeatOrder() []int {
	order := g.SeatsAtRoundStart()
	for _, a := range g.playerActionsThisRound() {
		if a.Kind == ActionFold || a.IsAllIn {
			order = removeSeat(order, a.Seat)
			continue
		}
		order = cycleSeats(order)
	}
	return order
}

// wagersThisRound returns the current round's bet/blind/straddle
// actions in order. Calls are excluded: they match a wager without
// increasing it.
func (g *GameState) wagersThisRound() []Action {
	var wagers []Action
	for _, a := range g.playerActionsThisRound() {
		if a.IsWager() {
			wagers = append(wagers, a)
		}
	}
	return wagers
}

// LargestWager returns the largest-amount wager of the current round,
// or nil when no wager has been made yet. Nil is distinct from a zero
// amount: it selects the check branch when building options. Ties
// keep the earliest wager.
func (g *GameState) LargestWager() *Action {
	var largest *Action
	for _, a := range g.wagersThisRound() {
		a := a
		if largest == nil || a.Amount > largest.Amount {
			largest = &a
		}
	}
	return largest
}

// LargestBlind returns the largest blind posted in the hand. It is
// the minimum-open unit for every round.
func (g *GameState) LargestBlind() int {
	largest := 0
	for _, a := range g.Actions {
		if a.Kind == ActionBlind && a.Amount > largest {
			largest = a.Amount
		}
	}
	return largest
}

// wageredByRound returns each seat's committed chips per round: the
// largest amount that seat put in during the round. Wager and call
// amounts are round-cumulative "to" totals, so the largest amount is
// the commitment.
func (g *GameState) wageredByRound() [len(rounds)][]int {
	var wagered [len(rounds)][]int
	for r := range wagered {
		wagered[r] = make([]int, len(g.Seats))
	}
	current := Preflop
	for _, a := range g.Actions {
		if a.Kind == ActionShowdown {
			break
		}
		if r, ok := roundOf(a.Kind); ok {
			current = r
			continue
		}
		if a.Amount > wagered[current][a.Seat] {
			wagered[current][a.Seat] = a.Amount
		}
	}
	return wagered
}

// StacksAtRoundStart returns each seat's remaining stack entering
// each round: the starting stack minus the chips committed in every
// prior round. Unknown stacks stay unknown throughout.
func (g *GameState) StacksAtRoundStart() [len(rounds)][]Stack {
	wagered := g.wageredByRound()
	var stacks [len(rounds)][]Stack
	for _, r := range rounds {
		stacks[r] = make([]Stack, len(g.Seats))
	}
	for seat, s := range g.Seats {
		remaining := s.StartingStack
		for _, r := range rounds {
			stacks[r][seat] = remaining
			remaining = remaining.Sub(wagered[r][seat])
		}
	}
	return stacks
}

// BettableStacks returns each seat's stack at the start of the
// current round: the cap on its total commitment for the round.
func (g *GameState) BettableStacks() []Stack {
	round, err := g.CurrentRound()
	if err != nil {
		round = River
	}
	return g.StacksAtRoundStart()[round]
}

// LargestKnownStack returns the largest known bettable stack at the
// table. It stands in as the bound for seats whose own stack is
// unknown.
func (g *GameState) LargestKnownStack() int {
	largest := 0
	for _, s := range g.BettableStacks() {
		if s.Known() && s.Amount() > largest {
			largest = s.Amount()
		}
	}
	return largest
}
