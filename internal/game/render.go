package game

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '●'
	PlayerBeak    = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▀' // Open end of a top pipe
	PipeCapBottom = '▄' // Open end of a bottom pipe
)

// viewport maps board pixels onto screen cells.
type viewport struct {
	boardW, boardH int
	cols, rows     int
}

// toCells converts a board rectangle to the smallest cell rectangle covering it.
func (v viewport) toCells(r core.Rect) core.Rect {
	x0 := floorDiv(r.X*v.cols, v.boardW)
	x1 := ceilDiv(r.Right()*v.cols, v.boardW)
	y0 := floorDiv(r.Y*v.rows, v.boardH)
	y1 := ceilDiv(r.Bottom()*v.rows, v.boardH)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// Render draws a snapshot into dst, scaling the board to the screen size.
func Render(s Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.BoardW <= 0 || s.BoardH <= 0 {
		return
	}

	v := viewport{boardW: s.BoardW, boardH: s.BoardH, cols: dst.Width(), rows: dst.Height()}

	if s.State == StateMenu {
		drawMenu(s, v, dst)
		return
	}

	for _, o := range s.Obstacles {
		drawPipe(dst, v, o)
	}
	drawPlayer(dst, v.toCells(s.Player))
	drawHUD(s, dst)

	switch s.State {
	case StatePaused:
		drawMessage(dst, "PAUSED", core.ColorBrightWhite,
			"[C] Continue    [L] Leave")
	case StateGameOver:
		drawMessage(dst, fmt.Sprintf("Game Over: %d", int(s.Score)), core.ColorBrightRed,
			"Press SPACE to Restart",
			fmt.Sprintf("High Score: %d", int(s.HighScore)),
			"[L] Menu    [Q] Quit")
	}
}

// drawPipe renders one obstacle with a cap on its open end.
func drawPipe(dst *core.Screen, v viewport, o Obstacle) {
	r := v.toCells(o.Rect())
	dst.FillRect(r, PipeChar, core.ColorGreen)

	capRow := r.Bottom() - 1
	capRune := PipeCapTop
	if o.Role == RoleBottom {
		capRow = r.Y
		capRune = PipeCapBottom
	}
	dst.DrawHLine(r.X, capRow, r.W, capRune, core.ColorBrightGreen)
}

// drawPlayer renders the bird with its beak in the top-right cell.
func drawPlayer(dst *core.Screen, r core.Rect) {
	dst.FillRect(r, PlayerChar, core.ColorBrightYellow)
	dst.SetColored(r.Right()-1, r.Y, PlayerBeak, core.ColorOrange)
}

// drawHUD renders the pause hint, the score and the best score on row 0.
func drawHUD(s Snapshot, dst *core.Screen) {
	dst.DrawText(1, 0, "[P] Pause", core.ColorOrange)
	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", int(s.Score)), core.ColorBrightWhite)

	best := fmt.Sprintf("Best %d", int(s.HighScore))
	dst.DrawText(core.Clamp(dst.Width()-len(best)-1, 0, dst.Width()), 0, best, core.ColorGray)
}

// drawMenu renders the title screen.
func drawMenu(s Snapshot, v viewport, dst *core.Screen) {
	h := dst.Height()

	dst.DrawTextCentered(h/5, "F L A P P Y   B I R D", core.ColorBrightWhite)

	// Bird centred on the board, as on the title screen
	bird := s.Player.Translate((s.BoardW-s.Player.W)/2-s.Player.X, (s.BoardH-s.Player.H)/2-s.Player.Y)
	drawPlayer(dst, v.toCells(bird))

	dst.DrawTextCentered(h-h/4, "▶ Play: Enter / Space", core.ColorGreen)
	dst.DrawTextCentered(h-h/4+2, fmt.Sprintf("High Score: %d", int(s.HighScore)), core.ColorGray)
	dst.DrawTextCentered(h-2, "Tab: Scores  |  Q: Quit", core.ColorGray)
}

// drawMessage draws a box in the center of the screen with a title and lines.
func drawMessage(dst *core.Screen, title string, titleColor core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(box.Y+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
