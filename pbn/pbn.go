// Package pbn parses and formats Portable Bridge Notation deal strings.
// It is a pure syntactic translator: four space-separated hands in seat
// order N,E,S,W, each hand four dot-separated suit runs in S.H.D.C order.
// There is no ecosystem PBN library in the retrieved corpus and the
// grammar is small and fixed, so the parser is hand-written over the
// standard library's strings package; errors are built with
// github.com/pkg/errors.
package pbn

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ninetrick/bridgeplay/card"
)

// pbnSuitOrder is PBN's hand-string suit order, S.H.D.C — distinct from
// card's internal suit-major bit order (C,D,H,S).
var pbnSuitOrder = [4]card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs}

// ParseDeal parses a 4-seat PBN deal string (N E S W order) into a
// per-seat 52-bit mask. A hand written "..." (all four suits empty)
// denotes an unknown hand and yields a mask of zero for that seat.
func ParseDeal(s string) (hands [4]uint64, err error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return hands, errors.Errorf("pbn: expected 4 seats, got %d in %q", len(fields), s)
	}
	for seat, hand := range fields {
		mask, err := parseHand(hand)
		if err != nil {
			return hands, errors.Wrapf(err, "pbn: seat %d", seat)
		}
		hands[seat] = mask
	}
	return hands, nil
}

func parseHand(hand string) (uint64, error) {
	suits := strings.Split(hand, ".")
	if len(suits) != 4 {
		return 0, errors.Errorf("expected 4 suits separated by '.', got %q", hand)
	}
	var mask uint64
	for i, run := range suits {
		suit := pbnSuitOrder[i]
		for _, r := range run {
			rank, ok := rankFromRune(r)
			if !ok {
				return 0, errors.Errorf("invalid rank %q in suit run %q", r, run)
			}
			c := card.NewCard(suit, rank)
			mask |= c.Bit()
		}
	}
	return mask, nil
}

func rankFromRune(r rune) (int, bool) {
	switch r {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return int(r - '0'), true
	case 'T', 't':
		return 10, true
	case 'J', 'j':
		return 11, true
	case 'Q', 'q':
		return 12, true
	case 'K', 'k':
		return 13, true
	case 'A', 'a':
		return 14, true
	}
	return 0, false
}

// FormatDeal formats a per-seat mask array as a PBN deal string, seats
// in N,E,S,W order, ranks within each suit sorted high-to-low.
func FormatDeal(hands [4]uint64) string {
	parts := make([]string, 4)
	for seat, mask := range hands {
		parts[seat] = formatHand(mask)
	}
	return strings.Join(parts, " ")
}

func formatHand(mask uint64) string {
	runs := make([]string, 4)
	for i, suit := range pbnSuitOrder {
		var b strings.Builder
		for rank := 14; rank >= 2; rank-- {
			c := card.NewCard(suit, rank)
			if mask&c.Bit() != 0 {
				b.WriteByte(rankByte(rank))
			}
		}
		runs[i] = b.String()
	}
	return strings.Join(runs, ".")
}

func rankByte(rank int) byte {
	switch rank {
	case 10:
		return 'T'
	case 11:
		return 'J'
	case 12:
		return 'Q'
	case 13:
		return 'K'
	case 14:
		return 'A'
	default:
		return byte('0' + rank)
	}
}
