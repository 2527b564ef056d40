package holdem

// Options derives the legal next moves from the action log. It
// returns either a single dealer option (the hand has not started, or
// the betting round is closed) or the non-empty option set for the
// one seat with the action. Once showdown is in the log it returns
// ErrHandOver.
//
// The result is computed fresh from the full log on every call; there
// is no persisted machine state to fall out of sync.
func (g *GameState) Options() ([]Option, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(g.Actions) == 0 {
		return []Option{dealerOption(ActionPreflop)}, nil
	}
	if g.Actions[len(g.Actions)-1].Kind == ActionShowdown {
		return nil, ErrHandOver
	}
	if g.roundClosed() {
		return []Option{g.nextDealerOption()}, nil
	}
	return g.playerOptions(), nil
}

// nextDealerOption returns the dealer transition for the first round
// not yet dealt, or showdown when the river is already out.
func (g *GameState) nextDealerOption() Option {
	indexes := g.roundIndexes()
	for _, r := range rounds {
		if indexes[r] == -1 {
			return dealerOption(r.dealerKind())
		}
	}
	return dealerOption(ActionShowdown)
}

// roundClosed reports whether the current betting round is complete.
//
// Without a bet the round closes once every seat that can still act
// has acted; preflop the forced posts do not count as acting, which
// is what hands the big blind (or largest straddle) its option. With
// a bet the round closes when the acting rotation comes back around
// to the largest bettor unraised. All-in seats keep their slot in
// that close rotation so a called all-in bet closes its own round.
func (g *GameState) roundClosed() bool {
	if len(g.SeatOrder()) == 0 {
		// Nobody left with action behind: dealer runs the rest out.
		return true
	}

	actions := g.playerActionsThisRound()
	var bets []Action
	for _, a := range actions {
		if a.Kind == ActionBet {
			bets = append(bets, a)
		}
	}

	if len(bets) == 0 {
		return g.allLiveSeatsActed(actions)
	}

	rotation := g.SeatsAtRoundStart()
	var largest *Action
	for i := range actions {
		a := actions[i]
		if a.Kind == ActionFold {
			rotation = removeSeat(rotation, a.Seat)
			continue
		}
		if a.Kind == ActionBet && (largest == nil || a.Amount > largest.Amount) {
			largest = &actions[i]
		}
		rotation = cycleSeats(rotation)
	}
	return len(rotation) > 0 && rotation[0] == largest.Seat
}

// allLiveSeatsActed reports whether every round-start seat that is
// still live has taken a voluntary action this round. Blind and
// straddle posts are not voluntary: their seats retain the right to
// act again.
func (g *GameState) allLiveSeatsActed(actions []Action) bool {
	for _, seat := range g.SeatsAtRoundStart() {
		gone := false
		voluntary := false
		for _, a := range actions {
			if a.Seat != seat {
				continue
			}
			if a.Kind == ActionFold || a.IsAllIn {
				gone = true
				break
			}
			if !a.IsForced() {
				voluntary = true
			}
		}
		if !gone && !voluntary {
			return false
		}
	}
	return true
}

// playerOptions builds the bounded option set for the seat at the
// head of the rotation.
func (g *GameState) playerOptions() []Option {
	actor := g.SeatOrder()[0]
	round, err := g.CurrentRound()
	if err != nil {
		// Options already screened the terminal marker.
		panic("holdem: playerOptions on finished hand")
	}

	actions := g.playerActionsThisRound()
	if round == Preflop && len(actions) == 0 {
		// A hand opens with the small blind; nothing else is legal.
		return []Option{{Kind: ActionBlind, Seat: actor}}
	}

	largest := g.LargestWager()
	maxBet := g.MaxBet(actor)
	// The largest wager is the actor's own uncontested blind or
	// straddle when nobody has raised past it: the actor may close
	// the round by checking rather than calling itself.
	ownPost := largest != nil && largest.Seat == actor && largest.IsForced()

	options := []Option{{Kind: ActionFold, Seat: actor}}

	if largest == nil || (round == Preflop && ownPost) {
		options = append(options, Option{Kind: ActionCheck, Seat: actor})
	}

	if largest != nil && !ownPost {
		amount := largest.Amount
		allIn := false
		if maxBet <= largest.Amount {
			amount = maxBet
			allIn = true
		}
		options = append(options, Option{Kind: ActionCall, Seat: actor, Amount: amount, IsAllIn: allIn})
	}

	if (largest == nil || maxBet > largest.Amount) && g.betReopenedFor(actor) {
		minBet, maxBetRange := g.MinMaxBet(actor)
		options = append(options, Option{Kind: ActionBet, Seat: actor, Min: minBet, Max: maxBetRange})
	}

	if round == Preflop {
		options = append(options, g.forcedBetOptions(actor, actions)...)
	}
	return options
}

// betReopenedFor reports whether the seat may bet or raise: either it
// has not acted voluntarily this round, or a full raise landed after
// its last voluntary action. A short all-in is not a full raise and
// does not restore the right to raise.
func (g *GameState) betReopenedFor(seat int) bool {
	lastVoluntary := -1
	for i, a := range g.playerActionsThisRound() {
		if a.Seat == seat && !a.IsForced() {
			lastVoluntary = i
		}
	}
	if lastVoluntary == -1 {
		return true
	}
	for _, r := range g.raiseLadder() {
		if r.index > lastVoluntary {
			return true
		}
	}
	return false
}

// forcedBetOptions returns the blind/straddle slots still open to the
// actor. Blinds run while the only actions are blinds and fewer than
// two are posted; straddles run while the only actions are forced
// posts.
func (g *GameState) forcedBetOptions(actor int, actions []Action) []Option {
	blinds := 0
	allBlinds := true
	allForced := true
	for _, a := range actions {
		if a.Kind == ActionBlind {
			blinds++
		} else {
			allBlinds = false
		}
		if !a.IsForced() {
			allForced = false
		}
	}

	var options []Option
	if allBlinds && blinds < 2 {
		options = append(options, Option{Kind: ActionBlind, Seat: actor})
	}
	if allForced {
		options = append(options, Option{Kind: ActionStraddle, Seat: actor})
	}
	return options
}
