// Package sampler implements the constraint-aware Monte Carlo deal
// sampler: it borrows a snapshot of a Game's state, draws complete
// deals consistent with what is known and void, filters them against
// per-seat shape/HCP constraints, and scores legal moves by consulting
// an external double-dummy solver.
package sampler

import (
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ninetrick/bridgeplay/card"
	"github.com/ninetrick/bridgeplay/deal"
	"github.com/ninetrick/bridgeplay/pbn"
	"github.com/ninetrick/bridgeplay/solver"
)

// Sampler holds an independent snapshot of a Game's deal, taken at the
// moment Game.Sampling() was called. It does not reference the Game
// itself, so distinct samples can be generated in parallel by
// constructing separate Samplers from separate workers.
type Sampler struct {
	contract    deal.Contract
	constraints [4]deal.Constraints
	legalMoves  []card.Card

	// assigned is the known part of each seat's original hand:
	// currently-known cards plus everything that seat has ever played;
	// needed is how many hidden cards Generate adds to reach 13.
	// completedPlays holds only the subset played in tricks completed
	// before this one — subtracted back out in Solve so the solver sees
	// each seat's holding as of the current trick's start.
	assigned       [4]uint64
	completedPlays [4]uint64
	needed         [4]int
	hidden         uint64
	voids          uint16
	trickPlays     []card.Card

	leader card.Player
	strain card.Suit

	log zerolog.Logger
}

// New prepares a Sampler from a Game snapshot: unplay the current trick
// so the solver can replay it itself via its own protocol, then
// precompute each seat's assigned cards, remaining need, and the pool
// of still-hidden cards.
func New(state deal.State, contract deal.Contract, constraints [4]deal.Constraints, legalMoves []card.Card) *Sampler {
	s := &Sampler{
		contract:    contract,
		constraints: constraints,
		legalMoves:  append([]card.Card(nil), legalMoves...),
		voids:       state.Voids,
		leader:      state.Trick.Leader,
		strain:      contract.Strain,
	}

	hands := state.Hands
	plays := state.Plays
	for i := 0; i < state.Trick.Count; i++ {
		c := state.Trick.Cards[i]
		seat := state.Trick.Leader.Advance(i)
		hands[seat] |= c.Bit()
		plays[seat] &^= c.Bit()
		s.trickPlays = append(s.trickPlays, c)
	}

	for seat := 0; seat < 4; seat++ {
		s.assigned[seat] = hands[seat] | plays[seat]
		s.completedPlays[seat] = plays[seat]
		s.needed[seat] = 13 - deal.PopCount(s.assigned[seat])
	}
	s.hidden = state.Hidden

	return s
}

// WithLogger attaches a structured logger to an existing Sampler.
func (s *Sampler) WithLogger(log zerolog.Logger) *Sampler {
	s.log = log
	return s
}

// Deal is one fully-assigned candidate deal: 13 cards per seat.
type Deal struct {
	Hands [4]uint64
}

// Generate draws one candidate deal: a Fisher-Yates shuffle of the
// still-hidden cards used as a FIFO pool, with void-respecting
// requeueing. rng must not be shared across concurrent callers — each
// worker needs its own stream.
//
// ok is false if a full pass of the pool failed to place a card for
// some seat (voids over-constrained the remainder); the returned Deal
// may then be partially filled and must not be treated as complete.
func (s *Sampler) Generate(rng *rand.Rand) (d Deal, ok bool) {
	pool := deal.Cards(s.hidden)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	queue := pool
	for seat := card.Player(0); seat < 4; seat++ {
		d.Hands[seat] = s.assigned[seat]
	}

	for seat := card.Player(0); seat < 4; seat++ {
		need := s.needed[seat]
		if need <= 0 {
			continue
		}
		stuck := 0
		for need > 0 {
			if len(queue) == 0 {
				s.log.Debug().Str("seat", seat.String()).Msg("sampler pool exhausted")
				return d, false
			}
			c := queue[0]
			queue = queue[1:]
			if s.isVoid(seat, c.Suit()) {
				queue = append(queue, c)
				stuck++
				if stuck > len(queue) {
					s.log.Debug().Str("seat", seat.String()).Msg("sampler pool over-constrained by voids")
					return d, false
				}
				continue
			}
			d.Hands[seat] |= c.Bit()
			need--
			stuck = 0
		}
	}
	return d, true
}

func (s *Sampler) isVoid(seat card.Player, u card.Suit) bool {
	return s.voids&(1<<(uint(seat)*4+uint(u))) != 0
}

// Filter reports whether d satisfies every edited per-seat constraint.
// Seats whose Constraints are not Edited always pass.
func (s *Sampler) Filter(d Deal) bool {
	for seat := 0; seat < 4; seat++ {
		c := s.constraints[seat]
		if !c.Edited {
			continue
		}
		hand := d.Hands[seat]
		hcp := 0
		for _, cd := range deal.Cards(hand) {
			hcp += cd.HCP()
		}
		if !c.HCP.Contains(hcp) {
			return false
		}
		if !c.Clubs.Contains(deal.PopCount(hand & suitMask0)) {
			return false
		}
		if !c.Diamonds.Contains(deal.PopCount(hand & suitMask1)) {
			return false
		}
		if !c.Hearts.Contains(deal.PopCount(hand & suitMask2)) {
			return false
		}
		if !c.Spades.Contains(deal.PopCount(hand & suitMask3)) {
			return false
		}
	}
	return true
}

var (
	suitMask0 = card.SuitMask(card.Clubs)
	suitMask1 = card.SuitMask(card.Diamonds)
	suitMask2 = card.SuitMask(card.Hearts)
	suitMask3 = card.SuitMask(card.Spades)
)

// Solve scores d: format it as a PBN string, construct a solver
// instance for (deal, strain, leader), replay the trick in progress if
// any, then query the solver's resulting trick count for every bound
// legal move. The solver instance is released on every exit path.
func (s *Sampler) Solve(d Deal, factory solver.Factory) (map[card.Card]int, error) {
	pbnDeal := formatOmittingPlayed(d, s.completedPlays)
	inst, err := factory.New(pbnDeal, s.strain, s.leader)
	if err != nil {
		return nil, err
	}
	s.log.Trace().Msg("sampler: solver acquired")
	defer func() {
		inst.Release()
		s.log.Trace().Msg("sampler: solver released")
	}()

	if len(s.trickPlays) > 0 {
		cmds := make([]string, len(s.trickPlays))
		for i, c := range s.trickPlays {
			cmds[i] = c.String()
		}
		if err := inst.Exec(strings.Join(cmds, " ")); err != nil {
			return nil, err
		}
	}

	out := make(map[card.Card]int, len(s.legalMoves))
	for _, m := range s.legalMoves {
		tricks, err := inst.Tricks(m)
		if err != nil {
			return nil, err
		}
		out[m] = tricks
	}
	return out, nil
}

// formatOmittingPlayed renders d as a PBN deal string with each seat's
// cards played in completed tricks removed — d itself is the full
// original-hand reconstruction, so the solver-facing holding is d minus
// the completed-tricks plays. Cards from the trick in progress stay in,
// since the solver replays that trick itself via Exec starting from
// each seat's holding at its start.
func formatOmittingPlayed(d Deal, completedPlays [4]uint64) string {
	var remaining [4]uint64
	for seat := 0; seat < 4; seat++ {
		remaining[seat] = d.Hands[seat] &^ completedPlays[seat]
	}
	return pbn.FormatDeal(remaining)
}
