// Package solver declares the double-dummy solver collaborator
// contract: a synchronous, deterministic component the Sampler
// consults to score legal moves against a fully-assigned candidate
// deal. The core never implements the solver itself — solvercgo binds
// the real native library; this package also carries an in-repo Mock
// usable wherever a real solver binary isn't available.
package solver

import "github.com/ninetrick/bridgeplay/card"

// Solver is one scoped instance bound to a single deal, strain, and
// current leader. Callers must call Release on every exit path.
type Solver interface {
	// Exec replays a space-joined sequence of card strings against the
	// solver's own internal board state.
	Exec(cmd string) error
	// Tricks reports the number of tricks the side to play would take
	// if c were played next, assuming best defense thereafter.
	Tricks(c card.Card) (int, error)
	// Release frees any resources (native handles, processes) held by
	// this instance. Safe to call more than once.
	Release()
}

// Factory constructs scoped Solver instances. hands is a PBN deal string
// (the one deal format this repo produces) with cards played in
// completed tricks omitted; cards of the trick in progress are still
// listed and are replayed through Exec.
type Factory interface {
	New(hands string, strain card.Suit, leader card.Player) (Solver, error)
}
