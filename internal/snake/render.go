package snake

import (
	"fmt"

	"github.com/avolkov/gridsnake/internal/core"
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.grid.Render(dst, g.offX, g.offY)
	g.renderBody(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Grid Snake — Score: %d  Length: %d  Best: %d",
		g.score, g.body.Len(), g.best)

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBody draws the head and every segment at their grid cells.
func (g *Game) renderBody(dst *core.Screen) {
	for _, seg := range g.body.Segments() {
		sx, sy := g.grid.CellOf(seg.Pos())
		dst.SetCell(g.offX+sx, g.offY+sy, core.Cell{Rune: 'o', Color: core.ColorRed})
	}

	hx, hy := g.grid.CellOf(g.body.Head().Pos())
	dst.SetCell(g.offX+hx, g.offY+hy, core.Cell{Rune: 'O', Color: core.ColorWhite})
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	box := core.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)

	dst.DrawRect(box, core.Cell{Rune: ' ', Color: core.ColorDefault})
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
