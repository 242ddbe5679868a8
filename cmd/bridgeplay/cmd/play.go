package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ninetrick/bridgeplay/card"
	"github.com/ninetrick/bridgeplay/deal"
	"github.com/ninetrick/bridgeplay/game"
)

// newPlayCmd replays a fixed move sequence against a starting deal and
// prints the resulting trick counts, exercising game.Replay end to end.
func newPlayCmd(state *rootState) *cobra.Command {
	var dealStr, leaderStr, contractStr, movesStr string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay a move sequence against a starting deal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(leaderStr) != 1 {
				return errors.Errorf("play: invalid leader seat %q", leaderStr)
			}
			leader, ok := card.PlayerFromRune(rune(leaderStr[0]))
			if !ok {
				return errors.Errorf("play: invalid leader seat %q", leaderStr)
			}
			contract, ok := deal.ParseContract(contractStr)
			if !ok {
				return errors.Errorf("play: invalid contract %q", contractStr)
			}

			var moves []card.Card
			for _, tok := range strings.Fields(movesStr) {
				c, ok := card.ParseCard(tok)
				if !ok {
					return errors.Errorf("play: invalid card %q", tok)
				}
				moves = append(moves, c)
			}

			g, badIdx, err := game.Replay(dealStr, leader, contract, moves, game.WithLogger(state.log))
			if err != nil {
				return errors.Wrap(err, "play: replay")
			}
			if badIdx >= 0 {
				cmd.Printf("illegal move at position %d: %v\n", badIdx, moves[badIdx])
				return nil
			}

			cmd.Printf("NS tricks: %d  EW tricks: %d  over: %v\n", g.NSTricks, g.EWTricks, g.IsOver())
			if !g.IsOver() {
				cmd.Printf("next to play: %v  legal moves: %v\n", g.Leader, g.GetMoves())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dealStr, "deal", "... ... ... ...", "PBN deal string, seats N E S W")
	cmd.Flags().StringVar(&leaderStr, "leader", "N", "opening leader seat letter")
	cmd.Flags().StringVar(&contractStr, "contract", "", "contract string, e.g. 3N or 4H")
	cmd.Flags().StringVar(&movesStr, "moves", "", "space-separated card strings to replay in order")
	return cmd
}
