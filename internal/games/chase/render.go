package chase

import (
	"fmt"

	"github.com/vovakirdan/tui-chase/internal/core"
)

const (
	cellW     = 2 // screen columns per board cell
	hudHeight = 2
	blinkAt   = 20 // scared ghosts flash during their last ghost ticks
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	st := g.engine.State()
	g.renderHUD(dst, st)

	mapW, mapH := Cols*cellW, Rows
	if dst.Width() < mapW || dst.Height() < mapH+hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", mapW, mapH+hudHeight))
		return
	}
	area := core.NewRect((dst.Width()-mapW)/2, hudHeight, mapW, mapH)

	g.renderBoard(dst, area)
	g.renderGhosts(dst, area)
	g.renderPlayer(dst, area)

	if footerY := area.Bottom(); footerY < dst.Height() {
		dst.DrawTextColored(area.X, footerY, "arrows/wasd move  p pause  q quit", core.ColorGray)
	}

	switch g.engine.Phase() {
	case PhaseTransitioning:
		if st.LevelComplete {
			g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", st.Level), "Next: "+TemplateFor(st.Level+1).Name)
		}
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - Space to restart", st.Score))
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen, st GameState) {
	hud := fmt.Sprintf(" %s | Score: %d  Lives: %d  Level: %d  Maze: %s  Pellets: %d",
		g.Title(), st.Score, st.Lives, st.Level, TemplateFor(st.Level).Name, g.engine.PelletsRemaining())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	board := g.engine.Board()
	for y, row := range board {
		for x, c := range row {
			sx, sy := area.X+x*cellW, area.Y+y
			switch c {
			case CellWall:
				dst.SetColored(sx, sy, '█', core.ColorBlue)
				dst.SetColored(sx+1, sy, '█', core.ColorBlue)
			case CellPellet:
				dst.SetColored(sx, sy, '·', core.ColorWhite)
			case CellPowerPellet:
				dst.SetColored(sx, sy, '●', core.ColorBrightYellow)
			}
		}
	}
}

func (g *Game) renderGhosts(dst *core.Screen, area core.Rect) {
	timer := g.engine.ScaredTimer()
	for _, gh := range g.engine.Ghosts() {
		color := gh.Color
		if gh.Scared {
			color = core.ColorBrightBlue
			if timer < blinkAt && timer%2 == 1 {
				color = core.ColorBrightWhite
			}
		}
		sx, sy := area.X+gh.Position.X*cellW, area.Y+gh.Position.Y
		dst.SetColored(sx, sy, 'M', color)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, area core.Rect) {
	glyph := 'C'
	switch g.engine.PlayerDirection() {
	case Left:
		glyph = 'Ɔ'
	case Up:
		glyph = 'U'
	case Down:
		glyph = 'n'
	}
	p := g.engine.Player()
	dst.SetColored(area.X+p.X*cellW, area.Y+p.Y, glyph, core.ColorBrightYellow)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
