package game

import (
	"testing"

	"github.com/ninetrick/bridgeplay/card"
	"github.com/ninetrick/bridgeplay/deal"
)

func mustNewGame(t *testing.T, pbnDeal string, leader card.Player, contract deal.Contract) *Game {
	t.Helper()
	g, err := NewGame(pbnDeal, leader, contract)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// Scenario 1: plain trick win — North's ace of spades wins a NoTrump
// trick against discards from the hidden pool.
func TestScenarioPlainTrickWin(t *testing.T) {
	g := mustNewGame(t, "AKQJ.T987.6543.2 ... ... ...", card.North, deal.Contract{Level: 3, Strain: card.NoTrump})

	ace := card.NewCard(card.Spades, 14)
	if !g.IsLegal(ace) {
		t.Fatal("AS should be legal for North to lead")
	}
	if !g.Play(ace, true) {
		t.Fatal("Play(AS) failed")
	}

	for i := 0; i < 3; i++ {
		moves := g.GetMoves()
		if len(moves) == 0 {
			t.Fatalf("seat %v has no legal moves", g.Leader)
		}
		if !g.Play(moves[0], true) {
			t.Fatalf("Play(%v) for seat %v failed", moves[0], g.Leader)
		}
	}

	if g.NSTricks != 1 || g.EWTricks != 0 {
		t.Errorf("ns=%d ew=%d, want ns=1 ew=0", g.NSTricks, g.EWTricks)
	}
	if g.Leader != card.North {
		t.Errorf("winner leader = %v, want North", g.Leader)
	}
}

// Scenario 2: trump ruff — South, void in spades, ruffs with a heart
// under a hearts contract and wins despite not following the led suit.
func TestScenarioTrumpRuff(t *testing.T) {
	// N: spades only matters for the lead; E follows; S has no spades
	// (forces a ruff); W follows. Deal everything known to keep the
	// scenario deterministic.
	pbnDeal := "A9876.AKQ.AKQ.AK K543.JT9.JT9.QJT .5432.5432.65432 QJT2.876.876.987"
	g := mustNewGame(t, pbnDeal, card.North, deal.Contract{Level: 4, Strain: card.Hearts})

	spadeAce := card.NewCard(card.Spades, 14)
	if !g.Play(spadeAce, true) {
		t.Fatal("North failed to lead AS")
	}
	spadeKing := card.NewCard(card.Spades, 13)
	if !g.Play(spadeKing, true) {
		t.Fatal("East failed to follow with KS")
	}
	heart2 := card.NewCard(card.Hearts, 2)
	if !g.Play(heart2, true) {
		t.Fatal("South failed to ruff with 2H")
	}
	spadeQueen := card.NewCard(card.Spades, 12)
	if !g.Play(spadeQueen, true) {
		t.Fatal("West failed to follow with QS")
	}

	if g.Leader != card.South {
		t.Errorf("winner = %v, want South (trump beats led suit)", g.Leader)
	}
	if g.NSTricks != 1 {
		t.Errorf("ns_tricks = %d, want 1", g.NSTricks)
	}
}

// Scenario 3 & 4: void inference forces assignment, and Undo reverses it.
//
// North is fully known. East and South are unknown (their 26 cards sit
// in the hidden pool). West is fully known with zero spades, so once
// East shows out of spades, South is the only seat left with capacity
// and all 9 remaining hidden spades must be its.
func TestScenarioVoidInferenceAndUndo(t *testing.T) {
	pbnDeal := "AKQJ.T987.6543.2 ... ... .AKQJ65432.AKQJ."
	g, err := NewGame(pbnDeal, card.North, deal.Contract{Level: 3, Strain: card.NoTrump})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	spadesMask := card.SuitMask(card.Spades)
	hiddenSpadesBefore := g.Hidden & spadesMask
	if deal.PopCount(hiddenSpadesBefore) != 9 {
		t.Fatalf("test setup error: expected 9 hidden spades, got %d", deal.PopCount(hiddenSpadesBefore))
	}
	if g.Lefts[card.West] != 0 {
		t.Fatalf("test setup error: West should be fully known (lefts=0), got %d", g.Lefts[card.West])
	}

	ace := card.NewCard(card.Spades, 14)
	if !g.Play(ace, true) {
		t.Fatal("North failed to lead AS")
	}

	// East is fully unknown and has no suit restriction; discard a club
	// drawn from the hidden pool.
	clubAce := card.NewCard(card.Clubs, 14)
	if !g.IsLegal(clubAce) {
		t.Fatal("East should be free to discard a hidden club with no known spades")
	}
	if !g.Play(clubAce, true) {
		t.Fatal("East failed to discard")
	}

	if !g.IsVoid(card.East, card.Spades) {
		t.Fatal("East should be marked void in spades after discarding off-suit")
	}
	if g.Hidden&spadesMask != 0 {
		t.Error("remaining hidden spades should have been force-assigned to South")
	}
	if g.Hands[card.South]&spadesMask != hiddenSpadesBefore {
		t.Error("South should hold all previously-hidden spades after forced assignment")
	}
	if g.Lefts[card.South] != 13-9 {
		t.Errorf("South lefts = %d, want %d", g.Lefts[card.South], 13-9)
	}

	// Scenario 4: Undo must restore the void bit and hidden spades.
	if !g.Undo() {
		t.Fatal("Undo failed")
	}
	if g.IsVoid(card.East, card.Spades) {
		t.Error("Undo should clear the inferred void bit")
	}
	if g.Hidden&spadesMask != hiddenSpadesBefore {
		t.Error("Undo should restore the force-assigned spades to hidden")
	}
	if g.Hands[card.South]&spadesMask != 0 {
		t.Error("Undo should remove the force-assigned spades from South's hand")
	}
	if g.Lefts[card.South] != 13 {
		t.Errorf("Undo should restore South's lefts to 13, got %d", g.Lefts[card.South])
	}
}

// Scenario 5: IsOver becomes true at exactly 13 completed tricks.
func TestScenarioIsOverAtThirteenTricks(t *testing.T) {
	g := mustNewGame(t, "... ... ... ...", card.North, deal.Contract{Level: 3, Strain: card.NoTrump})
	plays := 0
	for !g.IsOver() {
		moves := g.GetMoves()
		if len(moves) == 0 {
			t.Fatalf("no legal moves available with %d plays made and not over", plays)
		}
		// Prefer following the led suit when possible, so this
		// fully-unknown deal doesn't gratuitously invent voids that
		// could strand hidden cards nobody is left able to play.
		choice := moves[0]
		if g.Trick.Count > 0 {
			led := g.Trick.LedSuit()
			for _, m := range moves {
				if m.Suit() == led {
					choice = m
					break
				}
			}
		}
		if !g.Play(choice, true) {
			t.Fatalf("legal move from GetMoves() rejected by Play")
		}
		plays++
		if plays > 52 {
			t.Fatal("exceeded 52 plays without completing the deal")
		}
	}
	if plays != 52 {
		t.Errorf("game completed after %d plays, want 52", plays)
	}
	if g.NSTricks+g.EWTricks != 13 {
		t.Errorf("ns+ew tricks = %d, want 13", g.NSTricks+g.EWTricks)
	}
}

func TestIsLegalMatchesGetMoves(t *testing.T) {
	g := mustNewGame(t, "AKQJ.T987.6543.2 ... ... ...", card.North, deal.Contract{Level: 3, Strain: card.NoTrump})
	moves := map[card.Card]bool{}
	for _, c := range g.GetMoves() {
		moves[c] = true
	}
	for _, c := range card.Deck() {
		if g.IsLegal(c) != moves[c] {
			t.Errorf("IsLegal(%v) = %v, but membership in GetMoves() = %v", c, g.IsLegal(c), moves[c])
		}
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	g := mustNewGame(t, "AKQJ.T987.6543.2 ... ... ...", card.North, deal.Contract{Level: 3, Strain: card.NoTrump})
	initial := g.State

	for i := 0; i < 8; i++ {
		moves := g.GetMoves()
		if len(moves) == 0 {
			break
		}
		g.Play(moves[0], true)
	}
	played := 0
	for g.Undo() {
		played++
	}
	if g.State != initial {
		t.Errorf("state after undoing everything should equal initial state:\ngot  %+v\nwant %+v", g.State, initial)
	}

	for i := 0; i < played; i++ {
		if !g.Redo() {
			t.Fatalf("Redo %d failed", i)
		}
	}
	if len(g.undo) != played {
		t.Errorf("after full redo, undo stack should have %d entries, got %d", played, len(g.undo))
	}
}

func TestUndoEmptyStackFails(t *testing.T) {
	g := mustNewGame(t, "... ... ... ...", card.North, deal.Contract{})
	if g.Undo() {
		t.Fatal("Undo on fresh game should return false")
	}
	if g.Redo() {
		t.Fatal("Redo on fresh game should return false")
	}
}

func TestPlayClearsRedoStack(t *testing.T) {
	g := mustNewGame(t, "AKQJ.T987.6543.2 ... ... ...", card.North, deal.Contract{Level: 3, Strain: card.NoTrump})
	moves := g.GetMoves()
	g.Play(moves[0], true)
	g.Undo()
	if len(g.redo) != 1 {
		t.Fatalf("expected 1 redo entry after undo, got %d", len(g.redo))
	}
	moves = g.GetMoves()
	g.Play(moves[0], true)
	if len(g.redo) != 0 {
		t.Error("Play should clear the redo stack")
	}
}

func TestCloneBisimulation(t *testing.T) {
	g := mustNewGame(t, "AKQJ.T987.6543.2 ... ... ...", card.North, deal.Contract{Level: 3, Strain: card.NoTrump})
	moves := g.GetMoves()
	g.Play(moves[0], true)

	clone := g.Clone()

	origMoves := g.GetMoves()
	cloneMoves := clone.GetMoves()
	if len(origMoves) != len(cloneMoves) {
		t.Fatalf("clone has different move count: %d vs %d", len(cloneMoves), len(origMoves))
	}

	cont := g.GetMoves()[0]
	g.Play(cont, true)
	clone.Play(cont, true)

	if g.State != clone.State {
		t.Error("original and clone diverged after applying the same move")
	}
}

func TestIllegalPlayLeavesStateUnchanged(t *testing.T) {
	g := mustNewGame(t, "AKQJ.T987.6543.2 ... ... ...", card.North, deal.Contract{Level: 3, Strain: card.NoTrump})
	ace := card.NewCard(card.Spades, 14)
	g.Play(ace, true)
	before := g.State
	if g.Play(ace, true) {
		t.Fatal("replaying an already-played card should be illegal")
	}
	if g.State != before {
		t.Error("illegal Play must not mutate state")
	}
}

func TestReplayAppliesEveryMove(t *testing.T) {
	pbnDeal := "AKQJ.T987.6543.2 ... ... ..."
	moves := []card.Card{card.NewCard(card.Spades, 14)}
	g, badIdx, err := Replay(pbnDeal, card.North, deal.Contract{Level: 3, Strain: card.NoTrump}, moves)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if badIdx != -1 {
		t.Fatalf("Replay reported illegal move at %d, want none", badIdx)
	}
	if g.Plays[card.North]&card.NewCard(card.Spades, 14).Bit() == 0 {
		t.Error("Replay should have recorded North's spade ace as played")
	}
}

func TestReplayStopsAtFirstIllegalMove(t *testing.T) {
	pbnDeal := "AKQJ.T987.6543.2 ... ... ..."
	ace := card.NewCard(card.Spades, 14)
	moves := []card.Card{ace, ace}
	_, badIdx, err := Replay(pbnDeal, card.North, deal.Contract{Level: 3, Strain: card.NoTrump}, moves)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if badIdx != 1 {
		t.Fatalf("Replay should report the repeated play as illegal at index 1, got %d", badIdx)
	}
}

func TestWithConstraintsAppliesPreset(t *testing.T) {
	var constraints [4]deal.Constraints
	preset, ok := deal.Preset("1nt-opener")
	if !ok {
		t.Fatal("expected 1nt-opener preset to exist")
	}
	constraints[card.East] = preset

	g, err := NewGame("... ... ... ...", card.North, deal.Contract{Level: 1, Strain: card.NoTrump}, WithConstraints(constraints))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if !g.Constraints[card.East].Edited {
		t.Fatal("East's constraints should carry the preset's Edited flag")
	}
	if g.Constraints[card.West].Edited {
		t.Error("West's constraints should be untouched")
	}
}
