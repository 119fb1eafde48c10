package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/reciclamack/internal/core"
	"github.com/vovakirdan/reciclamack/internal/games/reciclamack"
)

// debugGlyph is the cell size of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

var background = color.RGBA{0x10, 0x14, 0x1c, 0xff}

// Draw renders the world in world pixels; ebiten scales it to the window.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	snap := h.game.Snapshot()
	phase := h.game.Phase()

	if phase == core.PhaseMenu {
		h.drawMenu(screen, snap)
		return
	}

	for _, it := range snap.Items {
		c, ok := colornames.Map[it.Color]
		if !ok {
			c = colornames.White
		}
		vector.DrawFilledRect(screen, float32(it.X), float32(it.Y), float32(it.Size), float32(it.Size), c, false)
	}

	col := snap.Collector
	vector.DrawFilledRect(screen, float32(col.X), float32(col.Y), float32(col.W), float32(col.H), colornames.Limegreen, false)

	if h.game.HitboxVisible() {
		hb := snap.Hitbox
		vector.StrokeRect(screen, float32(hb.X), float32(hb.Y), float32(hb.W), float32(hb.H), 1, colornames.Magenta, false)
	}

	hud := fmt.Sprintf("SCORE %d   LIVES %d   HIGH %d", snap.Score, snap.Lives, snap.HighScore)
	ebitenutil.DebugPrintAt(screen, hud, 8, 6)

	switch phase {
	case core.PhasePaused:
		drawCentered(screen, snap.World, "PAUSED", "P to resume")
	case core.PhaseGameOver:
		title := "GAME OVER"
		if h.game.NewHighScore() {
			title += " - NEW HIGH SCORE!"
		}
		drawCentered(screen, snap.World, title, "ENTER to play again, R for title")
	}
}

func (h *Host) drawMenu(screen *ebiten.Image, snap reciclamack.Snapshot) {
	lines := []string{strings.ToUpper(h.game.Title()), ""}
	for _, t := range reciclamack.ItemTypes() {
		e := t.Effect()
		lines = append(lines, fmt.Sprintf("%-8s score %+d  lives %+d", t.String(), e.Score, e.Lives))
	}
	lines = append(lines, "", fmt.Sprintf("HIGH %d", snap.HighScore), "", "Press ENTER to start")

	y := int(snap.World.H)/3 - len(lines)*debugGlyphH/2
	for _, line := range lines {
		x := (int(snap.World.W) - len(line)*debugGlyphW) / 2
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += debugGlyphH
	}
}

func drawCentered(screen *ebiten.Image, world reciclamack.BoxSnapshot, title, subtitle string) {
	cx, cy := int(world.W)/2, int(world.H)/2
	vector.DrawFilledRect(screen, 0, float32(cy-debugGlyphH*2), float32(world.W), float32(debugGlyphH*4), color.RGBA{0, 0, 0, 0xc0}, false)
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*debugGlyphW/2, cy-debugGlyphH)
	ebitenutil.DebugPrintAt(screen, subtitle, cx-len(subtitle)*debugGlyphW/2, cy+debugGlyphH/2)
}
