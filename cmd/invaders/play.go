package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game right away",
	Long: `Start a game of Space Invaders.

Controls:
  Left/A/H, Right/D/L  - Move
  Space                - Fire
  P                    - Pause
  Enter/R              - New game (after game over)
  Esc, Q/Ctrl+C        - Quit

Difficulty options:
  easy    - Aliens fire half as often
  normal  - Tuning as loaded
  hard    - Aliens fire twice as often and move faster

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml
  INVADERS_SEED=42 invaders play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := settings.tuning(); err != nil {
		return err
	}

	game, err := registry.Create(invaders.GameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	sess, err := settings.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	if _, err := tui.Run(game, settings.runtimeConfig(), sess.options()); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	sess.logger.Info("session ended", "high_score", game.State().HighScore)
	return nil
}
