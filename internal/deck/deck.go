// Package deck provides a shuffled 52-card deck for dealing into a
// hand. The rules engine treats card values as opaque; the deck is the
// collaborator that picks them.
package deck

import (
	rand "math/rand/v2"

	"github.com/lox/holdem-engine/holdem"
)

// Deck is a shuffled pile of the 52 standard cards. It is not safe for
// concurrent use.
type Deck struct {
	cards []holdem.Card
}

var ranks = []holdem.Rank{
	holdem.Two, holdem.Three, holdem.Four, holdem.Five, holdem.Six,
	holdem.Seven, holdem.Eight, holdem.Nine, holdem.Ten,
	holdem.Jack, holdem.Queen, holdem.King, holdem.Ace,
}

var suits = []holdem.Suit{
	holdem.Clubs, holdem.Diamonds, holdem.Hearts, holdem.Spades,
}

// New returns a full deck shuffled with the given source. Callers own
// the seeding, which keeps deals reproducible in tests and simulations.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]holdem.Card, 0, 52)}
	for _, suit := range suits {
		for _, rank := range ranks {
			d.cards = append(d.cards, holdem.Card{Rank: rank, Suit: suit})
		}
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Deal removes and returns the top card. It panics on an empty deck: a
// hold'em hand can never exhaust 52 cards, so running out is a bug.
func (d *Deck) Deal() holdem.Card {
	if len(d.cards) == 0 {
		panic("deck: dealt past the end of the deck")
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card
}

// DealN deals n cards from the top.
func (d *Deck) DealN(n int) []holdem.Card {
	cards := make([]holdem.Card, n)
	for i := range cards {
		cards[i] = d.Deal()
	}
	return cards
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
