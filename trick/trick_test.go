package trick

import (
	"testing"

	"github.com/ninetrick/bridgeplay/card"
)

func TestLedSuitEmpty(t *testing.T) {
	var tr Trick
	if tr.LedSuit() != card.NoTrump {
		t.Errorf("LedSuit() of empty trick = %v, want NoTrump", tr.LedSuit())
	}
}

func TestAddAndLedSuit(t *testing.T) {
	tr := Trick{Leader: card.North}
	tr.Add(card.NewCard(card.Spades, 14))
	if tr.LedSuit() != card.Spades {
		t.Errorf("LedSuit() = %v, want Spades", tr.LedSuit())
	}
	if tr.Count != 1 {
		t.Errorf("Count = %d, want 1", tr.Count)
	}
	tr.Add(card.NewCard(card.Clubs, 2))
	tr.Add(card.NewCard(card.Spades, 2))
	tr.Add(card.NewCard(card.Spades, 3))
	if !tr.Full() {
		t.Error("Full() = false after 4 plays")
	}
}

func TestPlayed(t *testing.T) {
	tr := Trick{Leader: card.North}
	ace := card.NewCard(card.Spades, 14)
	tr.Add(ace)
	if !tr.Played(ace) {
		t.Error("Played(ace) = false, want true")
	}
	if tr.Played(card.NewCard(card.Hearts, 2)) {
		t.Error("Played(2H) = true, want false")
	}
}

func TestValueSemantics(t *testing.T) {
	a := Trick{Leader: card.North}
	a.Add(card.NewCard(card.Spades, 14))
	b := a
	b.Add(card.NewCard(card.Clubs, 2))
	if a.Count != 1 {
		t.Errorf("mutating copy b affected a: a.Count = %d, want 1", a.Count)
	}
}
