package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// quietConfig is the default tuning with alien fire disabled.
func quietConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Aliens.FirePercent = 0
	return cfg
}

func newTestSession(cfg config.InvadersConfig, seed int64) *Session {
	return NewSession(cfg, rand.New(rand.NewSource(seed)))
}

func frame(actions ...core.Action) core.InputFrame {
	return core.NewInputFrame(actions...)
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
