package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/egg-hatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a session would use, after the config file
search and the difficulty preset, as YAML. The output is a valid config file.

Examples:
  egghatch config
  egghatch config --defaults
  egghatch config --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	logger, logCloser, err := newLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
