package simulate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/holdem"
	"github.com/lox/holdem-engine/internal/randutil"
)

func TestPlayHandTerminates(t *testing.T) {
	t.Parallel()

	driver := DefaultDriver()
	for seed := int64(0); seed < 50; seed++ {
		final, err := driver.PlayHand(holdem.NewUniformGameState(6, 100), randutil.New(seed))
		require.NoError(t, err, "seed %d", seed)

		last := final.Actions[len(final.Actions)-1]
		assert.Equal(t, holdem.ActionShowdown, last.Kind, "seed %d", seed)
		require.NoError(t, final.Verify(), "seed %d", seed)
	}
}

func TestPlayHandDeterministic(t *testing.T) {
	t.Parallel()

	driver := DefaultDriver()
	a, err := driver.PlayHand(holdem.NewUniformGameState(4, 100), randutil.New(7))
	require.NoError(t, err)
	b, err := driver.PlayHand(holdem.NewUniformGameState(4, 100), randutil.New(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlayHandHeadsUpShortStacks(t *testing.T) {
	t.Parallel()

	// Tiny stacks force constant all-ins and collapsed bet ranges.
	driver := DefaultDriver()
	for seed := int64(0); seed < 50; seed++ {
		final, err := driver.PlayHand(holdem.NewUniformGameState(2, 5), randutil.New(seed))
		require.NoError(t, err, "seed %d", seed)
		require.NoError(t, final.Verify(), "seed %d", seed)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Hands:   60,
		Workers: 4,
		Seed:    99,
		Driver:  DefaultDriver(),
		NewHand: func() *holdem.GameState { return holdem.NewUniformGameState(6, 100) },
	}

	stats, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 60, stats.Hands)
	assert.Greater(t, stats.Actions, 60)

	// Same seed, different worker count: identical aggregate.
	cfg.Workers = 1
	again, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, stats, again)
}

func TestRunOnHand(t *testing.T) {
	t.Parallel()

	seen := 0
	cfg := Config{
		Hands:  5,
		Seed:   3,
		Driver: DefaultDriver(),
		NewHand: func() *holdem.GameState {
			return holdem.NewUniformGameState(3, 50)
		},
		OnHand: func(g *holdem.GameState) error {
			seen++
			return g.Verify()
		},
	}

	_, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, seen)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{
		Hands:   100,
		Workers: 2,
		Seed:    1,
		Driver:  DefaultDriver(),
		NewHand: func() *holdem.GameState { return holdem.NewUniformGameState(6, 100) },
	}
	_, err := Run(ctx, cfg)
	assert.Error(t, err)
}
