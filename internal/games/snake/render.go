package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout constants
const (
	cellWidth = 2 // Terminal columns per board cell, keeps cells roughly square
	hudHeight = 1 // Status line above the board
)

// Visual characters for rendering
const (
	segmentChar = '█'
	foodChar    = '●'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		reqW, reqH := g.RequiredSize()
		g.renderOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()),
			"Window too small",
			fmt.Sprintf("Need %dx%d", reqW, reqH))
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, g.settings.BorderColor)

	g.renderFood(dst, board)
	g.renderSnake(dst, board)

	switch {
	case g.status == StatusWon:
		g.renderOverlay(dst, board, "You Win!", fmt.Sprintf("Length: %d", g.snake.Len()))
	case g.paused:
		g.renderOverlay(dst, board, "Paused", "Press P to continue")
	}
}

// boardRect returns the bordered board area, centered horizontally below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w := g.grid.Width()*cellWidth + 2
	h := g.grid.Height() + 2
	x := max((dst.Width()-w)/2, 0)
	return core.NewRect(x, hudHeight, w, h)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Length: %d  Score: %d  Best: %d  Speed: %d/s",
		g.Title(), g.snake.Len(), g.score, g.best, g.speed)
	dst.DrawText(0, 0, hud)
}

// drawCell fills one board cell.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, c Cell, r rune, color core.Color) {
	sx := board.X + 1 + c.X*cellWidth
	sy := board.Y + 1 + c.Y
	for i := range cellWidth {
		dst.SetColored(sx+i, sy, r, color)
	}
}

// renderSnake draws the snake, head last so it is always visible.
func (g *Game) renderSnake(dst *core.Screen, board core.Rect) {
	body := g.snake.body
	for i := len(body) - 1; i >= 1; i-- {
		g.drawCell(dst, board, body[i], segmentChar, g.settings.SnakeColor)
	}
	g.drawCell(dst, board, body[0], segmentChar, g.settings.HeadColor)
}

// renderFood draws the food, if any is on the board.
func (g *Game) renderFood(dst *core.Screen, board core.Rect) {
	if !g.grid.Contains(g.food) {
		return
	}
	g.drawCell(dst, board, g.food, foodChar, g.settings.FoodColor)
}

// renderOverlay draws a message box centered on area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	boxW := textW + 4
	boxH := 5
	cx, cy := area.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorDefault)
	drawCenteredIn(dst, box, box.Y+1, line1)
	drawCenteredIn(dst, box, box.Y+3, line2)
}

// drawCenteredIn draws text centered horizontally within r.
func drawCenteredIn(dst *core.Screen, r core.Rect, y int, text string) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawText(x, y, text)
}
