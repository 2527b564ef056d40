package holdem

import "math"

// Raise sizing works off a ladder of qualifying wagers for the
// current round. Leading blinds collapse into a single opening rung
// valued at the largest blind, so a 1/2 blind pair opens the ladder
// at 2. Straddles and bets append rungs. An all-in appends a rung
// only when it amounts to a full raise under the table's
// ReopenPercent policy; a short all-in never moves the minimum and
// never reopens betting for seats that already acted.

// rung is one qualifying wager on the raise ladder. index is the
// wager's position within the round's player actions, used to decide
// whether a raise landed after a seat's last voluntary action.
type rung struct {
	amount int
	index  int
}

// fullRaiseOver returns the smallest amount that counts as a full
// raise over the ladder so far. With no rungs any wager opens the
// betting; with one rung a full raise doubles it; beyond that the
// last increment is preserved.
func fullRaiseOver(ladder []rung, reopenPercent float64) int {
	switch len(ladder) {
	case 0:
		return 0
	case 1:
		return ladder[0].amount + scaleIncrement(ladder[0].amount, reopenPercent)
	default:
		last := ladder[len(ladder)-1].amount
		prev := ladder[len(ladder)-2].amount
		return last + scaleIncrement(last-prev, reopenPercent)
	}
}

func scaleIncrement(step int, reopenPercent float64) int {
	if reopenPercent <= 0 {
		reopenPercent = 1.0
	}
	return int(math.Ceil(float64(step) * reopenPercent))
}

// raiseLadder builds the qualifying-wager ladder for the current
// round.
func (g *GameState) raiseLadder() []rung {
	var ladder []rung
	blindPhase := true
	for i, a := range g.playerActionsThisRound() {
		if !a.IsWager() {
			continue
		}
		if a.Kind == ActionBlind && blindPhase {
			// Blinds collapse to one rung at the largest blind.
			if len(ladder) == 0 {
				ladder = append(ladder, rung{amount: a.Amount, index: i})
			} else if a.Amount > ladder[0].amount {
				ladder[0] = rung{amount: a.Amount, index: i}
			}
			continue
		}
		blindPhase = false
		if a.IsAllIn && len(ladder) > 0 && a.Amount < fullRaiseOver(ladder, g.Rules.ReopenPercent) {
			continue
		}
		ladder = append(ladder, rung{amount: a.Amount, index: i})
	}
	return ladder
}

// MinBet returns the minimum legal bet (as a round-cumulative "to"
// amount) for the seat with the action, disregarding whether that
// seat can actually cover it.
func (g *GameState) MinBet() int {
	ladder := g.raiseLadder()
	switch len(ladder) {
	case 0:
		// Unopened round: the minimum bet is the big blind.
		return g.LargestBlind()
	case 1:
		return 2 * ladder[0].amount
	default:
		last := ladder[len(ladder)-1].amount
		prev := ladder[len(ladder)-2].amount
		return last + (last - prev)
	}
}

// MaxBet returns the most the seat can wager this round: its stack at
// the round start, since wager amounts are round-cumulative. A seat
// with an unknown stack borrows the largest known stack at the table
// as a usable bound.
func (g *GameState) MaxBet(seat int) int {
	if seat < 0 || seat >= len(g.Seats) {
		panic("holdem: MaxBet seat out of range")
	}
	stack := g.BettableStacks()[seat]
	if !stack.Known() {
		return g.LargestKnownStack()
	}
	return stack.Amount()
}

// MinMaxBet returns the inclusive legal bet range for the seat. When
// the seat cannot cover a full raise the range collapses to the
// forced all-in size.
func (g *GameState) MinMaxBet(seat int) (int, int) {
	minBet := g.MinBet()
	maxBet := g.MaxBet(seat)
	if minBet > maxBet {
		return maxBet, maxBet
	}
	return minBet, maxBet
}
