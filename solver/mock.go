package solver

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ninetrick/bridgeplay/card"
	"github.com/ninetrick/bridgeplay/pbn"
)

// Mock is a deterministic stand-in for a native double-dummy solver,
// usable by sampler tests without a real solvercgo binding. It does not
// attempt real double-dummy analysis: Tricks counts the cards of c's suit,
// in the hand that holds c, ranked at or above c (c itself included) and
// not yet removed by Exec — a cheap, fully deterministic proxy good
// enough to exercise the Sampler's plumbing.
type Mock struct {
	hands  [4]uint64
	strain card.Suit
	leader card.Player
	played uint64
}

// MockFactory builds Mocks, satisfying Factory.
type MockFactory struct{}

func (MockFactory) New(hands string, strain card.Suit, leader card.Player) (Solver, error) {
	parsed, err := pbn.ParseDeal(hands)
	if err != nil {
		return nil, errors.Wrap(err, "mock solver: parse deal")
	}
	return &Mock{hands: parsed, strain: strain, leader: leader}, nil
}

// Exec replays a space-joined sequence of card strings, removing them
// from circulation so later Tricks queries account for them.
func (m *Mock) Exec(cmd string) error {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}
	for _, tok := range strings.Fields(cmd) {
		c, ok := card.ParseCard(tok)
		if !ok {
			return errors.Errorf("mock solver: bad card token %q", tok)
		}
		m.played |= c.Bit()
	}
	return nil
}

// Tricks counts cards ranked at or above c (c included) within c's own
// hand and suit, among cards not yet Exec'd away, as a stand-in trick
// estimate.
func (m *Mock) Tricks(c card.Card) (int, error) {
	var hand uint64
	for _, h := range m.hands {
		if h&c.Bit() != 0 {
			hand = h
			break
		}
	}
	mask := (hand &^ m.played) & card.SuitMask(c.Suit())
	count := 0
	for rank := c.Rank(); rank <= 14; rank++ {
		if mask&card.NewCard(c.Suit(), rank).Bit() != 0 {
			count++
		}
	}
	return count, nil
}

// Release is a no-op: Mock holds no external resources.
func (m *Mock) Release() {}
