package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// testFrame is a 10x6 board with a three segment snake heading right
// and one food item.
func testFrame() Frame {
	return Frame{
		Width:  10,
		Height: 6,
		State: snake.State{
			Player: snake.Snake{
				Length: 3,
				Segments: []snake.Segment{
					{Position: snake.Position{X: 3, Y: 3}, Role: snake.RoleTail, Facing: snake.DirRight},
					{Position: snake.Position{X: 4, Y: 3}, Role: snake.RoleBody, Facing: snake.DirRight},
					{Position: snake.Position{X: 5, Y: 3}, Role: snake.RoleHead, Facing: snake.DirRight},
				},
			},
			Food: []snake.Food{{Position: snake.Position{X: 0, Y: 0}}},
		},
		Stats: snake.Stats{Score: 2},
		FPS:   60,
	}
}

func TestMinScreenSize(t *testing.T) {
	w, h := MinScreenSize(75, 40)
	if w != 77 || h != 44 {
		t.Errorf("MinScreenSize(75, 40) = %dx%d, want 77x44", w, h)
	}
}

func TestDrawGameBoard(t *testing.T) {
	// 20x12 screen: board box is 12x8, centered below the HUD at (4, 3).
	screen := core.NewScreen(20, 12)
	DrawGame(screen, testFrame())

	ox, oy := 5, 4
	tests := []struct {
		name  string
		x, y  int
		want  rune
		color core.Color
	}{
		{"head", ox + 5, oy + 3, '>', core.ColorBrightGreen},
		{"body", ox + 4, oy + 3, 'o', core.ColorGreen},
		{"tail", ox + 3, oy + 3, '.', core.ColorGreen},
		{"food", ox, oy, '*', core.ColorBrightRed},
		{"border corner", ox - 1, oy - 1, '┌', core.ColorGray},
		{"border far corner", ox + 10, oy + 6, '┘', core.ColorGray},
		{"empty cell", ox + 1, oy + 1, ' ', core.ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := screen.GetCell(tt.x, tt.y)
			if cell.Rune != tt.want || cell.Color != tt.color {
				t.Errorf("cell (%d,%d) = %q/%d, want %q/%d",
					tt.x, tt.y, cell.Rune, cell.Color, tt.want, tt.color)
			}
		})
	}
}

func TestDrawGameHUD(t *testing.T) {
	screen := core.NewScreen(60, 12)
	DrawGame(screen, testFrame())

	hud := screen.Row(0)
	for _, want := range []string{"Snake", "Score: 2", "Length: 3", "FPS: 60", "[running]"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if screen.Get(0, 1) != '─' {
		t.Errorf("separator missing, got %q", screen.Get(0, 1))
	}
}

func TestHeadGlyph(t *testing.T) {
	want := map[snake.Direction]rune{
		snake.DirUp:    '^',
		snake.DirRight: '>',
		snake.DirDown:  'v',
		snake.DirLeft:  '<',
	}
	for d, r := range want {
		if got := headGlyph(d); got != r {
			t.Errorf("headGlyph(%s) = %q, want %q", d, got, r)
		}
	}
}

func TestDrawGameOverlays(t *testing.T) {
	tests := []struct {
		name   string
		stats  snake.Stats
		want   string
		status string
	}{
		{"paused", snake.Stats{Paused: true}, "Paused", "[paused]"},
		{"game over", snake.Stats{GameOver: true, Score: 7}, "Game Over", "[game over]"},
		{"game over wins over pause", snake.Stats{GameOver: true, Paused: true}, "Game Over", "[game over]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFrame()
			f.Stats = tt.stats
			screen := core.NewScreen(60, 14)
			DrawGame(screen, f)

			out := screen.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("screen missing overlay %q:\n%s", tt.want, out)
			}
			if !strings.Contains(screen.Row(0), tt.status) {
				t.Errorf("HUD %q missing %q", screen.Row(0), tt.status)
			}
		})
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	f := testFrame()
	f.Width = 30 // wide enough that the notice itself fits on a too-narrow screen
	minW, minH := MinScreenSize(f.Width, f.Height)

	tests := []struct {
		name  string
		w, h  int
		small bool
	}{
		{"exact fit", minW, minH, false},
		{"narrow", minW - 1, minH + 10, true},
		{"short", minW + 30, minH - 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := core.NewScreen(tt.w, tt.h)
			DrawGame(screen, f)
			got := strings.Contains(screen.String(), "too small")
			if got != tt.small {
				t.Errorf("too small notice = %v, want %v:\n%s", got, tt.small, screen.String())
			}
		})
	}
}

func TestRenderScreen(t *testing.T) {
	screen := core.NewScreen(8, 3)
	screen.DrawText(0, 0, "Hi", core.ColorBrightGreen)
	screen.DrawText(2, 0, "there", core.ColorDefault)
	screen.SetColored(0, 2, '*', core.ColorBrightRed)

	out := RenderScreen(screen)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, want 2", got)
	}
	for _, want := range []string{"Hi", "there", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
