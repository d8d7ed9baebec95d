package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Title menu with the scoreboard",
	Long: `Start at the title menu.

Use arrow keys or j/k to navigate, Enter to select. Esc in a game returns
to the menu; the high score carries over between games.

Runs are kept in memory for as long as the program runs.

Examples:
  invaders menu
  invaders menu --sound --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := settings.tuning(); err != nil {
		return err
	}

	// One game instance keeps the high score across plays.
	game, err := registry.Create(invaders.GameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	sess, err := settings.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	cfg := settings.runtimeConfig()
	for {
		choice, next, err := tui.RunMenu(cfg, game.State().HighScore)
		if err != nil {
			return err
		}
		cfg = next

		switch choice {
		case tui.MenuPlay:
			back, err := tui.Run(game, cfg, sess.options())
			if err != nil {
				return fmt.Errorf("cannot run game: %w", err)
			}
			if !back {
				return nil
			}

		case tui.MenuScoreboard:
			back, err := tui.RunScoreboard(sess.scores(), game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			sess.logger.Info("session ended", "high_score", game.State().HighScore)
			return nil
		}
	}
}
