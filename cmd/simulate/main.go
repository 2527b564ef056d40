package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/holdem"
	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/handlog"
	"github.com/lox/holdem-engine/internal/simulate"
)

type CLI struct {
	Config  string `help:"Path to the table HCL config." default:"table.hcl" type:"path"`
	Hands   int    `short:"n" help:"Number of hands to simulate." default:"1000"`
	Workers int    `short:"w" help:"Concurrent workers." default:"4"`
	Seed    int64  `help:"Base RNG seed (0 means time-based)." default:"0"`
	SaveDir string `help:"Directory to save every simulated hand into."`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("simulate"),
		kong.Description("Soak the rules engine with random legal hands."))

	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "path", cli.Config, "error", err)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	driver := simulate.DefaultDriver()
	driver.SmallBlind = cfg.Table.SmallBlind
	driver.BigBlind = cfg.Table.BigBlind

	runCfg := simulate.Config{
		Hands:   cli.Hands,
		Workers: cli.Workers,
		Seed:    seed,
		Driver:  driver,
		NewHand: cfg.NewHand,
	}

	var store *handlog.Store
	if cli.SaveDir != "" {
		if store, err = handlog.NewStore(cli.SaveDir); err != nil {
			log.Fatal("Failed to open hand log dir", "dir", cli.SaveDir, "error", err)
		}
		runCfg.OnHand = func(g *holdem.GameState) error {
			id, err := store.Save(g)
			if err != nil {
				return err
			}
			log.Debug("Saved hand", "id", id)
			return nil
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("Simulating",
		"hands", cli.Hands, "workers", cli.Workers,
		"seats", cfg.Table.Seats, "seed", seed)
	start := time.Now()

	stats, err := simulate.Run(ctx, runCfg)
	if err != nil {
		log.Fatal("Simulation failed", "error", err)
	}

	log.Info("Done",
		"hands", stats.Hands,
		"actions", stats.Actions,
		"all_ins", stats.AllIns,
		"folds", stats.Folds,
		"elapsed", time.Since(start).Round(time.Millisecond))

	kctx.Exit(0)
}
