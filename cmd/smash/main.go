// smash is a terminal arcade game: walk the track, charge a strike and smash
// every target on the two lanes.
//
// Usage:
//
//	smash play               - Play in the local terminal
//	smash serve              - Start SSH server for remote play
//	smash config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom smash.yaml
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-smash/internal/config"
	"github.com/vovakirdan/tui-smash/internal/games/smash"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "smash",
	Short: "Smash - charge a strike and break every target",
	Long: `Smash is a terminal arcade game. The actor walks down a vertical track
and wraps back to the top. Hold Space to stop and charge; release once the
meter passes the mark to smash every target under the strike.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print or validate the effective configuration

Examples:
  smash play
  smash play --difficulty easy
  smash play --config ./my-smash.yaml --seed 42
  smash serve --ssh :2222
  smash config --validate`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom smash.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// parseDifficulty validates --difficulty.
func parseDifficulty() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	preset := config.ParsePreset(flagDifficulty)
	if preset == "" {
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", flagDifficulty)
	}
	return preset, nil
}

// effectiveConfig loads the configuration selected by the global flags and
// applies the difficulty preset. It also points the game at the same file and
// preset so every session sees what was loaded here.
func effectiveConfig() (config.SmashConfig, error) {
	preset, err := parseDifficulty()
	if err != nil {
		return config.SmashConfig{}, err
	}

	cfg, err := config.LoadSmash(flagConfig)
	if err != nil {
		return config.SmashConfig{}, err
	}
	config.ApplySmashPreset(&cfg, preset)

	smash.SetConfigPath(flagConfig)
	smash.SetDifficulty(preset)
	return cfg, nil
}
