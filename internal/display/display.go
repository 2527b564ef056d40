// Package display renders hand state and option lists for the
// terminal. It is presentation only: it consumes engine projections
// and never mutates or drives the hand.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-engine/holdem"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	roundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	foldedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	allInStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// Title renders the application banner.
func Title(text string) string {
	return headerStyle.Render(text)
}

// Seats renders one line per seat: starting stack, chips behind for
// the current round, and folded/all-in status.
func Seats(g *holdem.GameState) string {
	folded := g.FoldedSeats()
	allIn := g.AllInSeats()
	stacks := g.BettableStacks()

	var b strings.Builder
	for seat, s := range g.Seats {
		line := fmt.Sprintf("seat %d  start %-8s behind %-8s", seat, s.StartingStack, stacks[seat])
		switch {
		case folded[seat]:
			line = foldedStyle.Render(line + " folded")
		case allIn[seat]:
			line = allInStyle.Render(line + " all-in")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Actions renders the action log grouped by round.
func Actions(g *holdem.GameState) string {
	byRound := g.ActionsByRound()

	var b strings.Builder
	for _, round := range []holdem.Round{holdem.Preflop, holdem.Flop, holdem.Turn, holdem.River} {
		actions := byRound[round]
		if len(actions) == 0 && round != holdem.Preflop {
			continue
		}
		b.WriteString(roundStyle.Render(round.String()))
		for _, a := range actions {
			b.WriteString("  " + a.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Board renders the community cards dealt so far, red suits tinted.
func Board(g *holdem.GameState) string {
	var cards []string
	for _, a := range g.Actions {
		if !a.IsDealer() {
			continue
		}
		for _, c := range a.Cards {
			cards = append(cards, renderCard(c))
		}
	}
	if len(cards) == 0 {
		return ""
	}
	return strings.Join(cards, " ")
}

func renderCard(c holdem.Card) string {
	if c.Suit == holdem.Hearts || c.Suit == holdem.Diamonds {
		return redCardStyle.Render(c.String())
	}
	return c.String()
}

// Options renders a numbered option list for a prompt.
func Options(options []holdem.Option) string {
	var b strings.Builder
	for i, o := range options {
		b.WriteString(optionStyle.Render(fmt.Sprintf("%d) %s", i+1, o)))
		b.WriteByte('\n')
	}
	return b.String()
}
