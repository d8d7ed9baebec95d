package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", GameID, err)
	}
	if g.Title() != "Space Invaders" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameStepReportsState(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if err := g.ConfigErr(); err != nil {
		t.Fatalf("default config failed to load: %v", err)
	}

	res := g.Step(core.NewInputFrame(core.ActionFire))
	if !res.Has(core.EventShot) {
		t.Error("expected a shot event in the step result")
	}
	if res.State.GameOver || res.State.Level != 1 || res.State.Score != 0 {
		t.Errorf("State = %+v", res.State)
	}
}

func TestResetKeepsHighScore(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Session().highScore = 900

	g.Reset(testRuntime())
	if got := g.State().HighScore; got != 900 {
		t.Errorf("HighScore = %d, expected 900 to survive Reset", got)
	}
}

func TestDifficultyPresetApplied(t *testing.T) {
	rt := testRuntime()
	rt.Difficulty = "hard"

	g := New()
	g.Reset(rt)
	if got := g.Config().Aliens.FirePercent; got != 4 {
		t.Errorf("FirePercent = %d, expected 4 on hard", got)
	}
}

func TestRenderBoard(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "SCORE 000000") || !strings.Contains(row, "WAVE 1") {
		t.Errorf("HUD row = %q", row)
	}

	// 66 wide box centered on 80 columns starts at x=7, below the HUD.
	if screen.Get(7, 1) != '┌' || screen.Get(72, 18) != '┘' {
		t.Errorf("board border missing:\n%s", screen.String())
	}

	// Ship at pixel (224, 448) is cell (28, 14) inside the box.
	if got := screen.GetCell(36, 16); got.Rune != shipGlyph[0] || got.Color != core.ColorBrightGreen {
		t.Errorf("ship cell = %+v", got)
	}

	// First alien at pixel (32, 32) is cell (4, 1) inside the box.
	if got := screen.Get(12, 3); got == ' ' {
		t.Error("first alien not drawn")
	}
}

func TestRenderOverlaysAndSmallScreen(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	loseNow(g.Session())
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	small := core.NewScreen(40, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") || !strings.Contains(small.String(), "Need 66x19") {
		t.Errorf("small screen message missing:\n%s", small.String())
	}
}

func TestEverySkinHasAGlyph(t *testing.T) {
	if len(alienGlyphs) != config.MaxSkins || len(skinColors) != config.MaxSkins {
		t.Errorf("glyphs/colors = %d/%d, expected %d each", len(alienGlyphs), len(skinColors), config.MaxSkins)
	}
	for s := Skin(0); s < Skin(config.MaxSkins); s++ {
		if glyph, _ := alienLook(s); len(glyph) == 0 {
			t.Errorf("skin %v has no glyph", s)
		}
	}
}

func TestRenderUnknownSkinFallsBackToWhite(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	for _, a := range g.Session().field.aliens {
		a.Skin = Skin(config.MaxSkins + 3)
	}
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if got := screen.GetCell(12, 3); got.Rune != alienGlyphs[SkinWhite][0] || got.Color != skinColors[SkinWhite] {
		t.Errorf("first alien cell = %+v, expected white glyph", got)
	}
}
