package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-smash/internal/config"
	"github.com/vovakirdan/tui-smash/internal/core"
	"github.com/vovakirdan/tui-smash/internal/games/smash"
	"github.com/vovakirdan/tui-smash/internal/platform/tui"
	"github.com/vovakirdan/tui-smash/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Smash in this terminal",
	Long: `Start a game in the local terminal.

Controls:
  Space      - Hold to charge (terminal key repeat keeps the hold)
  Enter/X    - Swing now
  P/Esc      - Pause
  R          - Restart with a new layout
  Ctrl+S     - Save a text screenshot to ~/.arcade/screenshots
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

Each Space press charges for charge_ticks ticks. Once presses stop the
charge holds still, and the swing comes after hold_release_ticks quiet
ticks (see 'smash config'). Logs go to ~/.arcade/logs/smash.log while
the game owns the terminal.

Difficulty options:
  easy   - Longer armed window, slower walk
  normal - Values from the config file
  hard   - Shorter armed window, faster walk`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := effectiveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'smash config --validate' to check your configuration.")
		os.Exit(1)
	}

	logOut, closeLog := openLogFile()
	defer closeLog()

	logger, err := newLogger(logOut, "smash")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	smash.SetLogger(logger)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create("smash")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, rc, tui.Options{
		ChargeTicks:      cfg.Input.ChargeTicks,
		HoldReleaseTicks: cfg.Input.HoldReleaseTicks,
		Logger:           logger,
	})
	if runErr != nil {
		logger.Error("game exited", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}

// openLogFile opens ~/.arcade/logs/smash.log for appending.
// The terminal belongs to the game while it runs, so logs cannot go to stderr.
// On failure logging is discarded.
func openLogFile() (io.Writer, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard, func() {}
	}

	dir := filepath.Join(home, ".arcade", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return io.Discard, func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "smash.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return io.Discard, func() {}
	}

	closed := false
	return f, func() {
		if !closed {
			closed = true
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}
}
