package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// hudHeight is the number of rows above the board: status line and separator.
const hudHeight = 2

// Frame holds everything DrawGame needs for one frame.
type Frame struct {
	Width  int
	Height int
	State  snake.State
	Stats  snake.Stats
	FPS    int
}

// MinScreenSize returns the smallest screen that fits a board of the given
// grid size together with the HUD and the border.
func MinScreenSize(gridW, gridH int) (int, int) {
	return gridW + 2, gridH + 2 + hudHeight
}

// DrawGame renders one frame into dst.
func DrawGame(dst *core.Screen, f Frame) {
	dst.Clear()
	drawHUD(dst, f)

	minW, minH := MinScreenSize(f.Width, f.Height)
	if dst.Width() < minW || dst.Height() < minH {
		drawOverlay(dst, "Terminal too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()))
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	board := area.Centered(minW, f.Height+2)
	dst.DrawBox(board, core.ColorGray)

	ox, oy := board.X+1, board.Y+1
	for _, food := range f.State.Food {
		dst.SetColored(ox+food.Position.X, oy+food.Position.Y, '*', core.ColorBrightRed)
	}
	drawSnake(dst, ox, oy, f.State.Player)

	switch {
	case f.Stats.GameOver:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Press Enter to restart", f.Stats.Score))
	case f.Stats.Paused:
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawHUD draws the status line and the separator under it.
func drawHUD(dst *core.Screen, f Frame) {
	status := "running"
	switch {
	case f.Stats.GameOver:
		status = "game over"
	case f.Stats.Paused:
		status = "paused"
	}
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  FPS: %d  [%s]",
		f.Stats.Score, f.State.Player.Length, f.FPS, status)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// drawSnake draws tail first so the head always ends up on top.
func drawSnake(dst *core.Screen, ox, oy int, s snake.Snake) {
	for _, seg := range s.Segments {
		x, y := ox+seg.Position.X, oy+seg.Position.Y
		switch seg.Role {
		case snake.RoleHead:
			dst.SetColored(x, y, headGlyph(seg.Facing), core.ColorBrightGreen)
		case snake.RoleTail:
			dst.SetColored(x, y, '.', core.ColorGreen)
		default:
			dst.SetColored(x, y, 'o', core.ColorGreen)
		}
	}
}

func headGlyph(d snake.Direction) rune {
	switch d {
	case snake.DirUp:
		return '^'
	case snake.DirRight:
		return '>'
	case snake.DirDown:
		return 'v'
	default:
		return '<'
	}
}

// drawOverlay draws a centered box with two lines of text.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
