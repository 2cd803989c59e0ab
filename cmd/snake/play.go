package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  Enter/R      - New game
  ?            - More keys
  Q/Esc/Ctrl+C - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log ./snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if flagLogPath != "" {
		f, logErr := openLogFile(flagLogPath)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", logErr)
		} else {
			defer f.Close()
			out = f
		}
	}
	logger := newLogger(out, "snake")

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.FrameRate = flagFPS
	rt.Seed = flagSeed

	if err := tui.Run(tui.Options{Game: cfg, Runtime: rt, Logger: logger}); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
