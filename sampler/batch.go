package sampler

import (
	"strings"

	"github.com/ninetrick/bridgeplay/card"
)

// BatchSolver is satisfied by solvercgo.Batcher. Declared here rather
// than imported from solvercgo so that sampler — and everything that
// depends on it, including game — never pulls in a cgo dependency just
// to generate and filter deals; only callers who want batched native
// scoring need to import solvercgo and pass one in.
type BatchSolver interface {
	SolveBatch(batchID int32, deals []string, strain card.Suit, leader card.Player, trickCmd string, moves []string) ([][]int32, error)
}

// BatchSolve scores every deal in deals against the Sampler's bound
// legal moves in one native round trip — the per-deal, per-call Solve
// acquire/release pattern amortized into a single flatbuffers-encoded
// exchange. Returns the same shape as GenerateMany: average tricks per
// move across the batch, plus how many deals were actually scored.
func (s *Sampler) BatchSolve(deals []Deal, bs BatchSolver, batchID int32) (AggregateResult, error) {
	pbnDeals := make([]string, len(deals))
	for i, d := range deals {
		pbnDeals[i] = formatOmittingPlayed(d, s.completedPlays)
	}

	moveStrs := make([]string, len(s.legalMoves))
	for i, m := range s.legalMoves {
		moveStrs[i] = m.String()
	}

	cmds := make([]string, len(s.trickPlays))
	for i, c := range s.trickPlays {
		cmds[i] = c.String()
	}
	trickCmd := strings.Join(cmds, " ")

	rows, err := bs.SolveBatch(batchID, pbnDeals, s.strain, s.leader, trickCmd, moveStrs)
	if err != nil {
		return AggregateResult{}, err
	}

	sum := make(map[card.Card]int, len(s.legalMoves))
	count := make(map[card.Card]int, len(s.legalMoves))
	for _, row := range rows {
		for i, tricks := range row {
			if i >= len(s.legalMoves) {
				break
			}
			m := s.legalMoves[i]
			sum[m] += int(tricks)
			count[m]++
		}
	}

	avg := make(map[card.Card]float64, len(sum))
	for m, total := range sum {
		avg[m] = float64(total) / float64(count[m])
	}
	return AggregateResult{Tricks: avg, Accepted: len(rows), Attempts: len(deals)}, nil
}
