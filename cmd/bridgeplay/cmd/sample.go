package cmd

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ninetrick/bridgeplay/card"
	"github.com/ninetrick/bridgeplay/deal"
	"github.com/ninetrick/bridgeplay/game"
	"github.com/ninetrick/bridgeplay/solver"
)

// newSampleCmd constructs a Game, binds a Sampler to it, and runs
// GenerateMany against the Mock solver — exercising the full
// generate/filter/solve/aggregate loop end to end.
func newSampleCmd(state *rootState) *cobra.Command {
	var dealStr, leaderStr, contractStr, eastPreset string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw constraint-filtered deals and score legal moves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(leaderStr) != 1 {
				return errors.Errorf("sample: invalid leader seat %q", leaderStr)
			}
			leader, ok := card.PlayerFromRune(rune(leaderStr[0]))
			if !ok {
				return errors.Errorf("sample: invalid leader seat %q", leaderStr)
			}
			contract, ok := deal.ParseContract(contractStr)
			if !ok {
				return errors.Errorf("sample: invalid contract %q", contractStr)
			}

			var opts []game.Option
			opts = append(opts, game.WithLogger(state.log))
			if eastPreset != "" {
				preset, ok := deal.Preset(eastPreset)
				if !ok {
					return errors.Errorf("sample: unknown constraint preset %q", eastPreset)
				}
				var constraints [4]deal.Constraints
				constraints[card.East] = preset
				opts = append(opts, game.WithConstraints(constraints))
			}

			g, err := game.NewGame(dealStr, leader, contract, opts...)
			if err != nil {
				return errors.Wrap(err, "sample: new game")
			}

			seed := state.cfg.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			s := g.Sampling()
			result := s.GenerateMany(solver.MockFactory{}, state.cfg.SampleBatchSize, state.cfg.Workers, seed)

			cmd.Printf("accepted %d/%d samples\n", result.Accepted, result.Attempts)
			moves := make([]card.Card, 0, len(result.Tricks))
			for m := range result.Tricks {
				moves = append(moves, m)
			}
			sort.Slice(moves, func(i, j int) bool { return moves[i] < moves[j] })
			for _, m := range moves {
				cmd.Printf("  %v: %.2f avg tricks\n", m, result.Tricks[m])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dealStr, "deal", "... ... ... ...", "PBN deal string, seats N E S W")
	cmd.Flags().StringVar(&leaderStr, "leader", "N", "opening leader seat letter")
	cmd.Flags().StringVar(&contractStr, "contract", "3N", "contract string, e.g. 3N or 4H")
	cmd.Flags().StringVar(&eastPreset, "east-preset", "", "named constraint preset to apply to East, e.g. 1nt-opener")
	return cmd
}
