// Package holdem implements the betting rules of No-Limit Texas
// Hold'em as pure functions over an append-only action log.
//
// A hand is a GameState: the seats that started it, the list of
// actions taken so far, and the table rules. The engine never retains
// or mutates a state. Every query derives its answer from the log on
// the spot, and Apply returns a new state with one more action. The
// central entry point is Options, which reports either the single
// dealer transition that continues the hand (deal the flop, turn,
// river, or go to showdown) or the seat that acts next along with the
// exact set of legal actions and their numeric bounds.
//
// Card values are opaque to the engine: it stores whatever the
// dealing collaborator supplies in flop/turn/river actions and never
// interprets rank or suit. Shuffling, hand evaluation, pot settlement
// and presentation all live outside this package.
package holdem
