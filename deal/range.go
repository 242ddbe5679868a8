// Package deal holds the partial-information deal representation shared
// by the game state machine and the sampler: per-seat bitmasks, the
// hidden pool, the void matrix, per-seat shape/HCP constraints, and the
// contract sentinel.
package deal

// Range is an inclusive [Min,Max] bound on some integer tally (HCP or a
// suit's card count).
type Range struct {
	Min, Max int
}

// Contains reports whether v falls within the range, inclusive.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Constraints are per-seat shape/HCP bounds used by the sampler's
// Filter. Edited is set whenever any field has been updated; an
// unedited Constraints is skipped entirely during filtering.
type Constraints struct {
	HCP     Range
	Clubs   Range
	Diamonds Range
	Hearts  Range
	Spades  Range
	Edited  bool
}

// Unconstrained is the zero-value-safe "anything goes" constraint; it is
// never Edited, so Filter always accepts it.
var Unconstrained = Constraints{}
