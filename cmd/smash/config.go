package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-smash/internal/config"
)

var (
	flagValidate    bool
	flagShowDefault bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration Smash would run with, as YAML.

The file is found in this order:
  --config <path>
  ~/.arcade/configs/smash.yaml
  ./configs/smash.yaml
  built-in default

The --difficulty preset is applied on top. Use --validate to check the
result without starting a game, or --default to print the built-in file
as a starting point for your own.

Examples:
  smash config
  smash config --difficulty hard
  smash config --default > ~/.arcade/configs/smash.yaml
  smash config --config ./my-smash.yaml --validate`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagValidate, "validate", false, "Validate the configuration and exit")
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default configuration")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if err := printConfig(cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printConfig(w io.Writer) error {
	if flagShowDefault {
		_, err := w.Write(config.DefaultSmashYAML())
		return err
	}

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	if flagValidate {
		if err := config.Validate(cfg); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "configuration OK")
		return err
	}

	data, err := config.MarshalSmash(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
