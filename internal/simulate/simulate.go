// Package simulate drives random legal hands through the rules
// engine. Every step asks the engine for its options, picks one at
// random, and admits it through Apply, so a simulation run doubles as
// a soak test of option totality and hand termination.
package simulate

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/holdem"
	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/randutil"
)

// Driver realizes options into concrete actions for one hand.
type Driver struct {
	SmallBlind int
	BigBlind   int

	// MaxActions aborts a hand that fails to terminate. Any legal
	// no-limit hand is far shorter; hitting the cap is an engine bug.
	MaxActions int
}

// DefaultDriver returns a 1/2 driver.
func DefaultDriver() Driver {
	return Driver{SmallBlind: 1, BigBlind: 2, MaxActions: 500}
}

// PlayHand drives the hand from its current state to showdown, taking
// uniformly random legal actions. The input state is not modified.
func (d Driver) PlayHand(start *holdem.GameState, rng *rand.Rand) (*holdem.GameState, error) {
	g := start
	cards := deck.New(rng)

	for step := 0; ; step++ {
		if step >= d.MaxActions {
			return nil, fmt.Errorf("hand exceeded %d actions without terminating: %s", d.MaxActions, g)
		}

		options, err := g.Options()
		if errors.Is(err, holdem.ErrHandOver) {
			return g, nil
		}
		if err != nil {
			return nil, err
		}
		if len(options) == 0 {
			return nil, fmt.Errorf("empty option set mid-hand: %s", g)
		}

		next := d.realize(g, options[rng.IntN(len(options))], cards, rng)
		g, err = g.Apply(next)
		if err != nil {
			return nil, fmt.Errorf("applying offered option %s: %w", next, err)
		}
	}
}

// realize turns an option into a concrete action, choosing sizes where
// the option leaves them open.
func (d Driver) realize(g *holdem.GameState, o holdem.Option, cards *deck.Deck, rng *rand.Rand) holdem.Action {
	switch o.Kind {
	case holdem.ActionFold:
		return holdem.Fold(o.Seat)
	case holdem.ActionCheck:
		return holdem.Check(o.Seat)
	case holdem.ActionCall:
		return holdem.Call(o.Seat, o.Amount, o.IsAllIn)
	case holdem.ActionBet:
		return holdem.Bet(o.Seat, o.Min+rng.IntN(o.Max-o.Min+1), false)
	case holdem.ActionBlind:
		return holdem.Blind(o.Seat, d.capped(g, o.Seat, d.blindAmount(g)), false)
	case holdem.ActionStraddle:
		return holdem.Straddle(o.Seat, d.capped(g, o.Seat, d.straddleAmount(g)), false)
	default:
		return holdem.Action{Kind: o.Kind, Cards: cards.DealN(o.Cards)}
	}
}

// blindAmount posts the small blind first, the big blind second.
func (d Driver) blindAmount(g *holdem.GameState) int {
	for _, a := range g.ActionsByRound()[holdem.Preflop] {
		if a.Kind == holdem.ActionBlind {
			return d.BigBlind
		}
	}
	return d.SmallBlind
}

// straddleAmount doubles the largest forced post on the table.
func (d Driver) straddleAmount(g *holdem.GameState) int {
	largest := g.LargestWager()
	if largest == nil {
		return 2 * d.BigBlind
	}
	return 2 * largest.Amount
}

// capped bounds a forced post by the seat's stack.
func (d Driver) capped(g *holdem.GameState, seat, amount int) int {
	if maxBet := g.MaxBet(seat); amount > maxBet {
		return maxBet
	}
	return amount
}

// Stats aggregates a simulation run.
type Stats struct {
	Hands   int
	Actions int
	AllIns  int
	Folds   int
}

func (s *Stats) add(g *holdem.GameState) {
	s.Hands++
	s.Actions += len(g.Actions)
	for _, gone := range g.AllInSeats() {
		if gone {
			s.AllIns++
		}
	}
	for _, folded := range g.FoldedSeats() {
		if folded {
			s.Folds++
		}
	}
}

// Config configures a bulk run.
type Config struct {
	Hands   int
	Workers int
	Seed    int64
	Driver  Driver

	// NewHand produces the starting state for each hand.
	NewHand func() *holdem.GameState

	// OnHand, when set, receives every finished hand.
	OnHand func(*holdem.GameState) error
}

// Run plays cfg.Hands random hands across cfg.Workers goroutines.
// Hand i always uses the RNG seeded from cfg.Seed+i, so a run is
// reproducible regardless of worker count.
func Run(ctx context.Context, cfg Config) (Stats, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	var (
		mu    sync.Mutex
		stats Stats
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.Workers)

	for i := 0; i < cfg.Hands; i++ {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rng := randutil.New(cfg.Seed + int64(i))
			final, err := cfg.Driver.PlayHand(cfg.NewHand(), rng)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i, err)
			}
			if cfg.OnHand != nil {
				if err := cfg.OnHand(final); err != nil {
					return err
				}
			}

			mu.Lock()
			stats.add(final)
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
