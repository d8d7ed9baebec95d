package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// cellsPerTile is how many terminal columns one board tile spans.
// A tile is one terminal row tall.
const cellsPerTile = 4

const hudRows = 1

var (
	shipGlyph   = []rune("▁▄█▲▲█▄▁")
	alienGlyphs = map[Skin][]rune{
		SkinWhite:   []rune("▄▀█▀▀█▀▄"),
		SkinCyan:    []rune("╓█▄██▄█╖"),
		SkinMagenta: []rune("▐█▀██▀█▌"),
		SkinYellow:  []rune("▗█▚██▞█▖"),
	}
	skinColors = map[Skin]core.Color{
		SkinWhite:   core.ColorBrightWhite,
		SkinCyan:    core.ColorCyan,
		SkinMagenta: core.ColorMagenta,
		SkinYellow:  core.ColorYellow,
	}
)

const (
	playerBulletRune = '|'
	alienBulletRune  = '!'
)

// alienLook returns the glyph and color of a skin. Unknown skins draw white.
func alienLook(s Skin) ([]rune, core.Color) {
	glyph, ok := alienGlyphs[s]
	if !ok {
		return alienGlyphs[SkinWhite], skinColors[SkinWhite]
	}
	return glyph, skinColors[s]
}

// layout maps board pixels onto screen cells.
type layout struct {
	box          core.Rect // border around the board
	cellW, cellH int       // board pixels per cell
}

func (g *Game) layoutFor(dst *core.Screen) (layout, bool) {
	b := g.cfg.Board
	cellW := max(b.TileSize/cellsPerTile, 1)
	cellH := max(b.TileSize, 1)
	w := b.Width()/cellW + 2
	h := b.Height()/cellH + 2

	l := layout{
		box:   core.NewRect((dst.Width()-w)/2, hudRows, w, h),
		cellW: cellW,
		cellH: cellH,
	}
	return l, dst.Width() >= w && dst.Height() >= h+hudRows
}

// MinScreenSize returns the smallest screen the board fits on.
func (g *Game) MinScreenSize() (int, int) {
	b := g.cfg.Board
	cellW := max(b.TileSize/cellsPerTile, 1)
	return b.Width()/cellW + 2, b.Height()/max(b.TileSize, 1) + 2 + hudRows
}

// cell converts a board position to a screen position inside the box.
func (l layout) cell(x, y int) (int, int) {
	return l.box.X + 1 + x/l.cellW, l.box.Y + 1 + y/l.cellH
}

func (l layout) inside(cx, cy int) bool {
	return cx > l.box.X && cx < l.box.Right()-1 && cy > l.box.Y && cy < l.box.Bottom()-1
}

func (l layout) put(dst *core.Screen, cx, cy int, r rune, c core.Color) {
	if l.inside(cx, cy) {
		dst.SetColored(cx, cy, r, c)
	}
}

// sprite stamps glyph across the cells covered by rect, repeating it if the
// rect is wider than the glyph.
func (l layout) sprite(dst *core.Screen, rect core.Rect, glyph []rune, c core.Color) {
	cx, cy := l.cell(rect.X, rect.Y)
	if len(glyph) == 0 {
		return
	}
	n := max(rect.W/l.cellW, 1)
	for i := 0; i < n; i++ {
		l.put(dst, cx+i, cy, glyph[i%len(glyph)], c)
	}
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	l, ok := g.layoutFor(dst)
	if !ok {
		w, h := g.MinScreenSize()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", w, h), core.ColorDefault)
		return
	}

	snap := g.session.Snapshot()

	g.renderHUD(dst, l, &snap)
	dst.DrawBox(l.box, core.ColorGray)

	for _, a := range snap.Aliens {
		glyph, color := alienLook(a.Skin)
		if a.HP < g.cfg.Aliens.HP {
			color = core.ColorBrightRed
		}
		l.sprite(dst, a.Rect, glyph, color)
	}
	l.sprite(dst, snap.Ship, shipGlyph, core.ColorBrightGreen)

	for _, b := range snap.PlayerBullets {
		cx, cy := l.cell(b.X, b.Y)
		l.put(dst, cx, cy, playerBulletRune, core.ColorBrightYellow)
	}
	for _, b := range snap.AlienBullets {
		cx, cy := l.cell(b.X, b.Y)
		l.put(dst, cx, cy, alienBulletRune, core.ColorRed)
	}

	switch {
	case snap.GameOver:
		drawCenteredBox(dst, l.box, "GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			"Enter or R to play again")
	case snap.Paused:
		drawCenteredBox(dst, l.box, "PAUSED", "P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen, l layout, snap *Snapshot) {
	y := l.box.Y - 1
	left := fmt.Sprintf("SCORE %06d", snap.Score)
	right := fmt.Sprintf("WAVE %d", snap.Wave)
	center := fmt.Sprintf("HI %06d", snap.HighScore)

	dst.DrawTextColored(l.box.X, y, left, core.ColorBrightWhite)
	dst.DrawTextColored((dst.Width()-len(center))/2, y, center, core.ColorYellow)
	dst.DrawTextColored(l.box.Right()-len(right), y, right, core.ColorCyan)
}

// drawCenteredBox draws a framed message in the middle of area.
func drawCenteredBox(dst *core.Screen, area core.Rect, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	boxX := area.X + (area.W-boxW)/2
	boxY := area.Y + (area.H-boxH)/2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightRed
		}
		x := boxX + (boxW-len([]rune(line)))/2
		dst.DrawTextColored(x, boxY+1+i, line, color)
	}
}
