package game

import (
	"github.com/ninetrick/bridgeplay/card"
	"github.com/ninetrick/bridgeplay/deal"
	"github.com/ninetrick/bridgeplay/trick"
)

// Play applies c as the current leader's play. If check is true and c is
// illegal per IsLegal, Play returns false and leaves state unchanged.
// With check=false, legality is skipped entirely — the caller guarantees
// it; an invariant-violating card corrupts state silently.
func (g *Game) Play(c card.Card, check bool) bool {
	if check && !g.IsLegal(c) {
		g.log.Debug().Str("card", c.String()).Str("seat", g.Leader.String()).Msg("illegal move rejected")
		return false
	}

	leader := g.Leader
	var led card.Suit
	if g.Trick.Count > 0 {
		led = g.Trick.LedSuit()
	} else {
		led = c.Suit()
	}

	g.pushUndo()
	g.redo = nil

	if c.Suit() != led {
		g.SetVoid(leader, led)
		g.forceAssign(leader, led)
	}

	bit := c.Bit()
	if g.Hands[leader]&bit == 0 {
		g.Hidden &^= bit
		g.Lefts[leader]--
	}
	g.Hands[leader] &^= bit

	g.Trick.Add(c)
	g.Plays[leader] |= bit
	g.history = append(g.history, Played{Seat: leader, Card: c})

	if g.Trick.Full() {
		g.resolveTrick()
	} else {
		g.Leader = leader.Next()
	}

	return true
}

// forceAssign performs the one piece of non-local inference the engine
// does: once a seat is proved void in L, any hidden card of suit L
// cannot belong to that seat. If exactly one other seat still has
// unassigned capacity, the hidden cards of L must be its.
func (g *Game) forceAssign(voidSeat card.Player, led card.Suit) {
	hiddenInSuit := g.Hidden & card.SuitMask(led)
	if hiddenInSuit == 0 {
		return
	}
	var candidate card.Player
	count := 0
	for s := card.Player(0); s < 4; s++ {
		if s == voidSeat {
			continue
		}
		if g.Lefts[s] > 0 {
			count++
			candidate = s
		}
	}
	if count != 1 {
		return
	}
	n := deal.PopCount(hiddenInSuit)
	g.Hands[candidate] |= hiddenInSuit
	g.Lefts[candidate] -= n
	g.Hidden &^= hiddenInSuit
	g.log.Info().
		Str("seat", candidate.String()).
		Str("suit", led.String()).
		Int("cards", n).
		Msg("forced assignment after void inference")
}

// resolveTrick determines the trick winner, scores it to the winning
// side, and starts a new trick led by the winner.
func (g *Game) resolveTrick() {
	trump := g.Contract.Strain
	led := g.Trick.LedSuit()

	winnerIdx := 0
	bestPriority, bestRank := priority(g.Trick.Cards[0], trump, led), g.Trick.Cards[0].Rank()

	for i := 1; i < 4; i++ {
		c := g.Trick.Cards[i]
		p, r := priority(c, trump, led), c.Rank()
		if p > bestPriority || (p == bestPriority && r > bestRank) {
			winnerIdx = i
			bestPriority = p
			bestRank = r
		}
	}

	winner := g.Trick.Leader.Advance(winnerIdx)
	if winner.NS() {
		g.NSTricks++
	} else {
		g.EWTricks++
	}

	g.Trick = trick.Trick{Leader: winner}
	g.Leader = winner
}

// priority ranks a trick card: trump beats led-suit beats everything
// else. Rank ties cannot occur (unique cards); this function only
// orders priority, callers break ties by rank.
func priority(c card.Card, trump, led card.Suit) int {
	if trump != card.NoTrump && c.Suit() == trump {
		return 2
	}
	if c.Suit() == led {
		return 1
	}
	return 0
}
