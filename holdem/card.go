package holdem

import (
	"encoding/json"
	"fmt"
)

// Rank represents a card rank. RankUnknown is the placeholder used
// when a hand is recorded without full card information.
type Rank int

const (
	RankUnknown Rank = iota
	_
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank ("2".."9", "T", "J", "Q",
// "K", "A", or "X" for unknown).
func (r Rank) String() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return string(rune('0' + int(r)))
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "X"
	}
}

// Suit represents a card suit. SuitUnknown is the placeholder suit.
type Suit int

const (
	SuitUnknown Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

// String returns the single-character suit ("c", "d", "h", "s", or
// "x" for unknown).
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "x"
	}
}

// Card is an immutable rank/suit pair. The engine stores cards
// verbatim in dealer actions without interpreting them.
type Card struct {
	Rank Rank
	Suit Suit
}

// UnknownCard returns the fully-unknown placeholder card ("Xx").
func UnknownCard() Card {
	return Card{Rank: RankUnknown, Suit: SuitUnknown}
}

// String returns the compact two-character form, e.g. "Ah" or "Xx".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses the compact two-character form produced by String.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("card %q: want two characters (rank then suit)", s)
	}

	var rank Rank
	switch ch := s[0]; {
	case ch >= '2' && ch <= '9':
		rank = Rank(ch - '0')
	case ch == 'T':
		rank = Ten
	case ch == 'J':
		rank = Jack
	case ch == 'Q':
		rank = Queen
	case ch == 'K':
		rank = King
	case ch == 'A':
		rank = Ace
	case ch == 'X':
		rank = RankUnknown
	default:
		return Card{}, fmt.Errorf("card %q: invalid rank %q", s, string(s[0]))
	}

	var suit Suit
	switch s[1] {
	case 'c':
		suit = Clubs
	case 'd':
		suit = Diamonds
	case 'h':
		suit = Hearts
	case 's':
		suit = Spades
	case 'x':
		suit = SuitUnknown
	default:
		return Card{}, fmt.Errorf("card %q: invalid suit %q", s, string(s[1]))
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MarshalJSON encodes the card as its compact string form.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a card from its compact string form.
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	card, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = card
	return nil
}
