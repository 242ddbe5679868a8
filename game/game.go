// Package game implements the partial-information bridge play state
// machine: legality, move generation, play application with void
// inference, trick resolution, and undo/redo over immutable snapshots.
package game

import (
	"github.com/rs/zerolog"

	"github.com/ninetrick/bridgeplay/card"
	"github.com/ninetrick/bridgeplay/deal"
	"github.com/ninetrick/bridgeplay/pbn"
	"github.com/ninetrick/bridgeplay/sampler"
)

// Played records one historical play for Game.History.
type Played struct {
	Seat card.Player
	Card card.Card
}

// Game is the mutable play-state machine. It is single-threaded
// cooperative: no internal synchronization guards concurrent mutation —
// one caller at a time.
type Game struct {
	deal.State

	Contract    deal.Contract
	Constraints [4]deal.Constraints

	history []Played

	undo []undoEntry
	redo []undoEntry

	log zerolog.Logger
}

type undoEntry struct {
	state      deal.State
	historyLen int
}

// Option configures a new Game.
type Option func(*Game)

// WithLogger attaches a structured logger. The zero value
// (zerolog.Logger{}) discards output, matching zerolog's nop-logger
// convention, so WithLogger is optional.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithConstraints sets the initial per-seat sampler constraints.
func WithConstraints(c [4]deal.Constraints) Option {
	return func(g *Game) { g.Constraints = c }
}

// NewGame constructs a Game from a (possibly partial) PBN deal string,
// an opening leader, and a contract supplying the trump strain.
func NewGame(pbnDeal string, leader card.Player, contract deal.Contract, opts ...Option) (*Game, error) {
	hands, err := pbn.ParseDeal(pbnDeal)
	if err != nil {
		return nil, err
	}
	var st deal.State
	st.Hands = hands
	var known uint64
	for _, h := range hands {
		known |= h
	}
	st.Hidden = card.AllCardsMask &^ known
	for s := range st.Lefts {
		st.Lefts[s] = 13 - deal.PopCount(hands[s])
	}
	st.Leader = leader
	st.Trick.Leader = leader

	g := &Game{State: st, Contract: contract}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// IsOver reports whether all 13 tricks have been completed.
func (g *Game) IsOver() bool { return g.NSTricks+g.EWTricks == 13 }

// IsLegal reports whether c is a legal play for the current leader.
func (g *Game) IsLegal(c card.Card) bool {
	return g.isLegalFor(g.Leader, c)
}

func (g *Game) isLegalFor(seat card.Player, c card.Card) bool {
	ownershipOK := g.Hands[seat]&c.Bit() != 0 || (g.Hidden&c.Bit() != 0 && g.Lefts[seat] > 0)
	if !ownershipOK {
		return false
	}
	played := g.Plays[0] | g.Plays[1] | g.Plays[2] | g.Plays[3]
	if played&c.Bit() != 0 {
		return false
	}
	if g.Trick.Count > 0 {
		led := g.Trick.LedSuit()
		if g.Hands[seat]&card.SuitMask(led) != 0 && c.Suit() != led {
			return false
		}
	}
	return !g.IsVoid(seat, c.Suit())
}

// GetMoves returns every card that would pass IsLegal for the current
// leader. No ordering is guaranteed.
func (g *Game) GetMoves() []card.Card {
	return g.LegalMovesFor(g.Leader)
}

// LegalMovesFor generalizes GetMoves to an explicit seat, so a caller
// can probe a hypothetical seat without mutating Leader. GetMoves (and
// through it Sampling's bound move list) calls it for the leader.
func (g *Game) LegalMovesFor(seat card.Player) []card.Card {
	hand := g.Hands[seat]
	unplayed := g.Unplayed()
	available := unplayed & hand
	if g.Lefts[seat] > 0 {
		available |= unplayed & g.Hidden
	}
	if g.Trick.Count > 0 {
		led := g.Trick.LedSuit()
		if hand&card.SuitMask(led) != 0 {
			available &= card.SuitMask(led)
		}
	}
	moves := make([]card.Card, 0, deal.PopCount(available))
	for _, c := range deal.Cards(available) {
		if !g.IsVoid(seat, c.Suit()) {
			moves = append(moves, c)
		}
	}
	return moves
}

// History returns the play sequence so far, in order. The returned
// slice is a copy; callers may not mutate Game state through it.
func (g *Game) History() []Played {
	out := make([]Played, len(g.history))
	copy(out, g.history)
	return out
}

// Clone returns an independent Game. Because deal.State is built
// entirely from fixed-size arrays and value types, cloning it is a
// plain struct copy with no aliasing.
func (g *Game) Clone() *Game {
	clone := &Game{
		State:       g.State,
		Contract:    g.Contract,
		Constraints: g.Constraints,
		log:         g.log,
	}
	clone.history = append([]Played(nil), g.history...)
	clone.undo = append([]undoEntry(nil), g.undo...)
	clone.redo = append([]undoEntry(nil), g.redo...)
	return clone
}

// Sampling returns a Sampler bound to the Game's present state. Distinct
// samples may be drawn in parallel by constructing independent Samplers
// from separate workers.
func (g *Game) Sampling() *sampler.Sampler {
	return sampler.New(g.State, g.Contract, g.Constraints, g.GetMoves())
}

// Replay constructs a Game from a starting deal and replays a fixed move
// sequence with check=true, returning the index of the first illegal
// move encountered, or -1 if every move was legal. Useful for loading a
// recorded hand.
func Replay(pbnDeal string, leader card.Player, contract deal.Contract, moves []card.Card, opts ...Option) (*Game, int, error) {
	g, err := NewGame(pbnDeal, leader, contract, opts...)
	if err != nil {
		return nil, -1, err
	}
	for i, m := range moves {
		if !g.Play(m, true) {
			return g, i, nil
		}
	}
	return g, -1, nil
}
