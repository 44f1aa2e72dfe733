package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game. Press Enter to drop the first piece.

Controls (defaults, see the keys section of the config):
  Left/Right  - Move
  Up          - Rotate clockwise
  Down        - Soft drop (+1 point per row)
  Enter       - Start
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot
  ?           - Toggle full help
  Q/Ctrl+C    - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	a, err := newApp(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(a.runtimeConfig(), a.gameOptions())

	// Close store before potential exit
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
