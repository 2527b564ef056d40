// Package config loads table configuration from HCL.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-engine/holdem"
)

// Config is the root of the HCL file.
type Config struct {
	Table TableConfig `hcl:"table,block"`
}

// TableConfig describes one table: seat count, stacks, blinds and the
// all-in reopen policy.
type TableConfig struct {
	Seats      int `hcl:"seats,optional"`
	Stack      int `hcl:"stack,optional"`
	SmallBlind int `hcl:"small_blind,optional"`
	BigBlind   int `hcl:"big_blind,optional"`

	// Stacks overrides Stack per seat; a zero entry marks the seat's
	// stack as unknown.
	Stacks []int `hcl:"stacks,optional"`

	// ReopenPercent scales the raise increment an all-in must add to
	// reopen betting. 1.0 is the standard full-raise rule.
	ReopenPercent float64 `hcl:"reopen_percent,optional"`
}

// Default returns the standard 6-max 1/2 table with 100 chip stacks.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			Seats:         6,
			Stack:         100,
			SmallBlind:    1,
			BigBlind:      2,
			ReopenPercent: 1.0,
		},
	}
}

// Load reads configuration from an HCL file, applying defaults for
// anything unset. A missing file yields the default configuration.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", filename, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", filename, diags.Error())
	}

	defaults := Default().Table
	if cfg.Table.Seats == 0 {
		cfg.Table.Seats = defaults.Seats
	}
	if cfg.Table.Stack == 0 {
		cfg.Table.Stack = defaults.Stack
	}
	if cfg.Table.SmallBlind == 0 {
		cfg.Table.SmallBlind = defaults.SmallBlind
	}
	if cfg.Table.BigBlind == 0 {
		cfg.Table.BigBlind = defaults.BigBlind
	}
	if cfg.Table.ReopenPercent == 0 {
		cfg.Table.ReopenPercent = defaults.ReopenPercent
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	t := c.Table
	if t.Seats < 2 || t.Seats > 10 {
		return fmt.Errorf("seats must be between 2 and 10, got %d", t.Seats)
	}
	if t.SmallBlind <= 0 {
		return fmt.Errorf("small_blind must be positive, got %d", t.SmallBlind)
	}
	if t.BigBlind < t.SmallBlind {
		return fmt.Errorf("big_blind %d must be at least small_blind %d", t.BigBlind, t.SmallBlind)
	}
	if len(t.Stacks) != 0 && len(t.Stacks) != t.Seats {
		return fmt.Errorf("stacks has %d entries for %d seats", len(t.Stacks), t.Seats)
	}
	for i, s := range t.Stacks {
		if s < 0 {
			return fmt.Errorf("stacks[%d] must be zero (unknown) or positive, got %d", i, s)
		}
	}
	if t.Stack <= 0 {
		return fmt.Errorf("stack must be positive, got %d", t.Stack)
	}
	if t.ReopenPercent <= 0 || t.ReopenPercent > 1 {
		return fmt.Errorf("reopen_percent must be in (0, 1], got %g", t.ReopenPercent)
	}
	return nil
}

// NewHand builds a fresh hand for the configured table.
func (c *Config) NewHand() *holdem.GameState {
	t := c.Table
	stacks := make([]holdem.Stack, t.Seats)
	for i := range stacks {
		switch {
		case i < len(t.Stacks) && t.Stacks[i] == 0:
			stacks[i] = holdem.UnknownStack()
		case i < len(t.Stacks):
			stacks[i] = holdem.StackOf(t.Stacks[i])
		default:
			stacks[i] = holdem.StackOf(t.Stack)
		}
	}
	g := holdem.NewGameState(stacks...)
	g.Rules.ReopenPercent = t.ReopenPercent
	return g
}
