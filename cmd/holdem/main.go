package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/holdem"
	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/display"
	"github.com/lox/holdem-engine/internal/handlog"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/internal/simulate"
)

type CLI struct {
	Config string `help:"Path to the table HCL config." default:"table.hcl" type:"path"`

	Play   PlayCmd   `cmd:"" help:"Play a hand interactively, one prompt per action."`
	Deal   DealCmd   `cmd:"" help:"Deal a random hand through to showdown."`
	Replay ReplayCmd `cmd:"" help:"Replay a saved hand file and verify every action."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("No-limit hold'em betting rules engine."))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "path", cli.Config, "error", err)
	}

	ctx.FatalIfErrorf(ctx.Run(cfg))
}

type PlayCmd struct {
	Seed    int64  `help:"Deck shuffle seed (0 means random)." default:"0"`
	SaveDir string `help:"Directory to save the finished hand into."`
}

func (c *PlayCmd) Run(cfg *config.Config) error {
	fmt.Println(display.Title(" ♠ ♥ hold'em ♦ ♣ "))
	fmt.Println()

	seed := c.Seed
	if seed == 0 {
		seed = randomSeed()
	}
	log.Debug("Starting hand", "seats", cfg.Table.Seats, "seed", seed)

	g := cfg.NewHand()
	cards := deck.New(randutil.New(seed))
	reader := bufio.NewReader(os.Stdin)

	for {
		options, err := g.Options()
		if errors.Is(err, holdem.ErrHandOver) {
			break
		}
		if err != nil {
			return err
		}

		if options[0].IsDealer() {
			next := holdem.Action{Kind: options[0].Kind, Cards: cards.DealN(options[0].Cards)}
			if g, err = g.Apply(next); err != nil {
				return err
			}
			fmt.Println(display.Title(next.Kind.String()))
			if board := display.Board(g); board != "" {
				fmt.Println("board: " + board)
			}
			continue
		}

		next, quit, err := promptAction(reader, g, options, cfg)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		applied, err := g.Apply(next)
		if err != nil {
			// Sizing errors come back typed and readable; re-prompt.
			fmt.Println(err)
			continue
		}
		g = applied
	}

	fmt.Println()
	fmt.Print(display.Actions(g))
	return saveHand(c.SaveDir, g)
}

// promptAction renders the state and collects one player action.
func promptAction(reader *bufio.Reader, g *holdem.GameState, options []holdem.Option, cfg *config.Config) (holdem.Action, bool, error) {
	fmt.Println()
	fmt.Print(display.Seats(g))
	if board := display.Board(g); board != "" {
		fmt.Println("board: " + board)
	}
	fmt.Print(display.Options(options))
	fmt.Printf("seat %d> ", options[0].Seat)

	line, err := reader.ReadString('\n')
	if err != nil {
		return holdem.Action{}, true, nil
	}
	line = strings.TrimSpace(line)
	if line == "q" || line == "quit" {
		return holdem.Action{}, true, nil
	}

	choice, err := strconv.Atoi(line)
	if err != nil || choice < 1 || choice > len(options) {
		fmt.Println("enter an option number, or q to quit")
		return promptAction(reader, g, options, cfg)
	}
	o := options[choice-1]

	switch o.Kind {
	case holdem.ActionFold:
		return holdem.Fold(o.Seat), false, nil
	case holdem.ActionCheck:
		return holdem.Check(o.Seat), false, nil
	case holdem.ActionCall:
		return holdem.Call(o.Seat, o.Amount, o.IsAllIn), false, nil
	case holdem.ActionBet:
		amount, err := promptAmount(reader, o.Min, o.Max)
		if err != nil {
			return holdem.Action{}, true, nil
		}
		return holdem.Bet(o.Seat, amount, false), false, nil
	case holdem.ActionBlind:
		amount := cfg.Table.SmallBlind
		if g.LargestBlind() > 0 {
			amount = cfg.Table.BigBlind
		}
		return holdem.Blind(o.Seat, amount, false), false, nil
	case holdem.ActionStraddle:
		amount, err := promptAmount(reader, 1, g.MaxBet(o.Seat))
		if err != nil {
			return holdem.Action{}, true, nil
		}
		return holdem.Straddle(o.Seat, amount, false), false, nil
	default:
		return holdem.Action{}, false, fmt.Errorf("unexpected option %s", o)
	}
}

func promptAmount(reader *bufio.Reader, min, max int) (int, error) {
	for {
		fmt.Printf("amount [%d-%d]> ", min, max)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		amount, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && amount >= min && amount <= max {
			return amount, nil
		}
		fmt.Println("enter a number in range")
	}
}

type DealCmd struct {
	Seed    int64  `help:"RNG seed (0 means random)." default:"0"`
	SaveDir string `help:"Directory to save the finished hand into."`
}

func (c *DealCmd) Run(cfg *config.Config) error {
	seed := c.Seed
	if seed == 0 {
		seed = randomSeed()
	}
	log.Info("Dealing random hand", "seats", cfg.Table.Seats, "seed", seed)

	driver := simulate.DefaultDriver()
	driver.SmallBlind = cfg.Table.SmallBlind
	driver.BigBlind = cfg.Table.BigBlind

	final, err := driver.PlayHand(cfg.NewHand(), randutil.New(seed))
	if err != nil {
		return err
	}

	fmt.Print(display.Seats(final))
	fmt.Println("board: " + display.Board(final))
	fmt.Println()
	fmt.Print(display.Actions(final))
	return saveHand(c.SaveDir, final)
}

type ReplayCmd struct {
	File string `arg:"" help:"Hand log file to replay." type:"existingfile"`
}

func (c *ReplayCmd) Run(cfg *config.Config) error {
	g, err := handlog.Read(c.File)
	if err != nil {
		return err
	}

	log.Info("Hand replays cleanly", "file", c.File, "actions", len(g.Actions))
	fmt.Print(display.Seats(g))
	fmt.Println("board: " + display.Board(g))
	fmt.Println()
	fmt.Print(display.Actions(g))
	return nil
}

func saveHand(dir string, g *holdem.GameState) error {
	if dir == "" {
		return nil
	}
	store, err := handlog.NewStore(dir)
	if err != nil {
		return err
	}
	id, err := store.Save(g)
	if err != nil {
		return err
	}
	log.Info("Saved hand", "id", id, "path", store.Path(id))
	return nil
}

func randomSeed() int64 {
	return time.Now().UnixNano()
}
