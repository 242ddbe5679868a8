// Package trick holds the in-progress-trick record shared by the game
// state machine and the sampler's snapshot.
package trick

import "github.com/ninetrick/bridgeplay/card"

// Trick is an ordered record of up to 4 cards and the seat that led.
// Value type: cloning a Trick is a plain struct copy, no aliasing.
type Trick struct {
	Leader card.Player
	Cards  [4]card.Card
	Count  int
}

// LedSuit returns the suit of the first card played, or NoTrump if the
// trick is empty.
func (t Trick) LedSuit() card.Suit {
	if t.Count == 0 {
		return card.NoTrump
	}
	return t.Cards[0].Suit()
}

// Full reports whether all 4 seats have played to this trick.
func (t Trick) Full() bool { return t.Count == 4 }

// Add appends c to the trick. Caller is responsible for legality; Add
// does not validate suit-following or ownership.
func (t *Trick) Add(c card.Card) {
	t.Cards[t.Count] = c
	t.Count++
}

// Played reports whether c has already been recorded in this trick.
func (t Trick) Played(c card.Card) bool {
	for i := 0; i < t.Count; i++ {
		if t.Cards[i] == c {
			return true
		}
	}
	return false
}
