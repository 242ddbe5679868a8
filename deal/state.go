package deal

import (
	"math/bits"

	"github.com/ninetrick/bridgeplay/card"
	"github.com/ninetrick/bridgeplay/trick"
)

// State is the minimal partial-information deal representation: what is
// known (Hands), what has been played (Plays), what is unknown (Hidden),
// how many hidden cards remain unassigned per seat (Lefts), what has been
// inferred (Voids), plus the trick in progress and who acts next.
//
// All fields are plain value types with no aliasing — Hands, Plays, and
// Lefts are fixed [4]-arrays, Trick holds its cards inline. Cloning a
// State is therefore a plain struct copy, which is what the undo/redo
// stacks and the Sampler's borrowed snapshot both rely on.
type State struct {
	Hands  [4]uint64
	Plays  [4]uint64
	Lefts  [4]int
	Hidden uint64
	// Voids is a 16-bit matrix indexed by seat*4+suit (playing suits
	// only); a set bit means the seat is proved void in that suit.
	Voids  uint16
	Trick  trick.Trick
	Leader card.Player

	NSTricks, EWTricks int
}

func voidIndex(s card.Player, u card.Suit) uint { return uint(s)*4 + uint(u) }

// IsVoid reports whether seat s is proved void in suit u.
func (st State) IsVoid(s card.Player, u card.Suit) bool {
	return st.Voids&(1<<voidIndex(s, u)) != 0
}

// SetVoid marks seat s as proved void in suit u.
func (st *State) SetVoid(s card.Player, u card.Suit) {
	st.Voids |= 1 << voidIndex(s, u)
}

// ClearVoid un-marks seat s as void in suit u. Undo does not need it:
// it restores Voids from its whole-state snapshot.
func (st *State) ClearVoid(s card.Player, u card.Suit) {
	st.Voids &^= 1 << voidIndex(s, u)
}

// Unplayed returns the mask of cards not yet played by anyone.
func (st State) Unplayed() uint64 {
	return card.AllCardsMask &^ (st.Plays[0] | st.Plays[1] | st.Plays[2] | st.Plays[3])
}

// PopCount counts the set bits in mask.
func PopCount(mask uint64) int { return bits.OnesCount64(mask) }

// TrailingZero returns the index of the lowest set bit, or 64 if mask is 0.
func TrailingZero(mask uint64) int { return bits.TrailingZeros64(mask) }

// Cards expands mask into the list of cards it contains, in index order.
func Cards(mask uint64) []card.Card {
	out := make([]card.Card, 0, PopCount(mask))
	for mask != 0 {
		i := TrailingZero(mask)
		out = append(out, card.Card(i))
		mask &^= uint64(1) << uint(i)
	}
	return out
}

// CheckInvariants validates the structural invariants that must hold
// after every public operation. It is not called on the hot path;
// it returns one description per violated invariant.
func (st State) CheckInvariants() []string {
	var problems []string
	for s := card.Player(0); s < 4; s++ {
		total := PopCount(st.Hands[s]) + PopCount(st.Plays[s]) + st.Lefts[s]
		if total != 13 {
			problems = append(problems, "seat "+s.String()+": hands+plays+lefts != 13")
		}
		if st.Hidden&st.Hands[s] != 0 {
			problems = append(problems, "seat "+s.String()+": hidden overlaps hands")
		}
		if st.Hidden&st.Plays[s] != 0 {
			problems = append(problems, "seat "+s.String()+": hidden overlaps plays")
		}
		for o := s + 1; o < 4; o++ {
			if st.Hands[s]&st.Hands[o] != 0 {
				problems = append(problems, "hands overlap between seats")
			}
			if st.Plays[s]&st.Plays[o] != 0 {
				problems = append(problems, "plays overlap between seats")
			}
		}
		for u := card.Clubs; u <= card.Spades; u++ {
			if st.IsVoid(s, u) && st.Hands[s]&card.SuitMask(u) != 0 {
				problems = append(problems, "seat "+s.String()+" void in "+u.String()+" but holds cards of that suit")
			}
		}
	}
	if st.NSTricks+st.EWTricks > 13 {
		problems = append(problems, "ns+ew tricks exceed 13")
	}
	for i := 0; i < st.Trick.Count; i++ {
		c := st.Trick.Cards[i]
		found := false
		for s := card.Player(0); s < 4; s++ {
			if st.Plays[s]&c.Bit() != 0 {
				found = true
				break
			}
		}
		if !found {
			problems = append(problems, "trick card not recorded in any seat's plays")
		}
	}
	return problems
}
