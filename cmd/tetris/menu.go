package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long: `Open the main menu. Pick Play to start a game, High Scores to
browse finished games, or Quit. Quitting a game returns to the menu.`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	a, err := newApp(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := menuLoop(a)
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func menuLoop(a *app) error {
	cfg := a.runtimeConfig()
	for {
		result, err := tui.RunMenu(a.store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoicePlay:
			if err := tui.Run(cfg, a.gameOptions()); err != nil {
				return err
			}

		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(a.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			return nil
		}
	}
}
