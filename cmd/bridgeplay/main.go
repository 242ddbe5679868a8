// Command bridgeplay is a thin CLI wrapper over the game and sampler
// packages: "play" replays a move list through game.Replay and "sample"
// runs Sampling's GenerateMany. Undo and Redo are not exposed. It exists
// to exercise the cobra/viper ambient stack, not to add behavior.
package main

import (
	"fmt"
	"os"

	"github.com/ninetrick/bridgeplay/cmd/bridgeplay/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
