package reciclamack

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/reciclamack/internal/core"
)

// Visual characters for rendering
const (
	CollectorChar = '▀'
	HitboxChar    = '·'
	LifeChar      = '♥'
	HUDRuleChar   = '─' // Separates the score line from the play field
)

// hudRows is the number of rows reserved above the play field:
// the score line and a separator.
const hudRows = 2

// viewport maps world pixels to screen cells.
type viewport struct {
	top            int     // first play-field row
	rows, cols     int     // play-field size in cells
	scaleX, scaleY float64 // world pixels per cell
}

func (g *Game) viewport(dst *core.Screen) viewport {
	rows := max(1, dst.Height()-hudRows)
	cols := max(1, dst.Width())
	return viewport{
		top:    hudRows,
		rows:   rows,
		cols:   cols,
		scaleX: g.cfg.World.Width / float64(cols),
		scaleY: g.cfg.World.Height / float64(rows),
	}
}

// cells returns the cell span covered by r; every visible rect gets at least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X / v.scaleX))
	y0 := int(math.Floor(r.Y / v.scaleY))
	x1 := int(math.Ceil(r.Right() / v.scaleX))
	y1 := int(math.Ceil(r.Bottom() / v.scaleY))
	return x0, y0 + v.top, max(1, x1-x0), max(1, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	v := g.viewport(dst)
	g.drawHUD(dst)

	if g.phase == core.PhaseMenu {
		g.drawMenu(dst)
		return
	}

	s := g.session
	for _, it := range s.Items {
		if it.Y+it.Size <= 0 {
			continue // not visible yet
		}
		x, y, w, h := v.cells(it.Bounds())
		y = max(y, v.top)
		dst.FillRect(x, y, w, h, it.Type.Glyph(), it.Type.Color())
	}

	x, y, w, _ := v.cells(s.Collector.Bounds())
	dst.FillRect(x, y, w, 1, CollectorChar, core.ColorGreen)

	if g.showHitbox {
		for _, it := range s.Items {
			g.drawOutline(dst, v, it.Bounds(), core.ColorMagenta)
		}
		g.drawOutline(dst, v, s.Collector.Hitbox(), core.ColorYellow)
	}

	switch g.phase {
	case core.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		title := "GAME OVER"
		if g.newHigh {
			title = "GAME OVER - NEW HIGH SCORE!"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  ENTER play again  |  R title", s.Score))
	}
}

// drawOutline marks the corner cells of a world rectangle.
func (g *Game) drawOutline(dst *core.Screen, v viewport, r core.Rect, c core.Color) {
	x, y, w, h := v.cells(r)
	if y < v.top {
		return
	}
	dst.SetColor(x, y, HitboxChar, c)
	dst.SetColor(x+w-1, y, HitboxChar, c)
	dst.SetColor(x, y+h-1, HitboxChar, c)
	dst.SetColor(x+w-1, y+h-1, HitboxChar, c)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	lives := strings.Repeat(string(LifeChar), max(0, s.Lives))
	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE %d", s.Score), core.ColorWhite)
	dst.DrawTextColor(14, 0, lives, core.ColorRed)

	high := fmt.Sprintf("HIGH %d", s.HighScore)
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(high)-1, 0, high, core.ColorYellow)
	dst.DrawHLine(0, hudRows-1, dst.Width(), HUDRuleChar)
}

func (g *Game) drawMenu(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColor(mid-5, strings.ToUpper(g.title), core.ColorGreen)
	dst.DrawTextCenteredColor(mid-3, "Catch the recyclables, dodge the batteries", core.ColorGray)

	for i, t := range ItemTypes() {
		eff := t.Effect()
		var desc string
		if t.Hazard() {
			desc = fmt.Sprintf("%c %-8s %d life", t.Glyph(), t.String(), eff.Lives)
		} else {
			desc = fmt.Sprintf("%c %-8s +%d", t.Glyph(), t.String(), eff.Score)
		}
		dst.DrawTextCenteredColor(mid-1+i, desc, t.Color())
	}

	dst.DrawTextCentered(mid+4, "Press ENTER to start")
	dst.DrawTextCenteredColor(mid+5, "A/D or arrows move | P pause | H hitboxes", core.ColorGray)
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subLen := utf8.RuneCountInString(subtitle)

	boxW := max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
