// Command gridcast runs the weather-to-generation network from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/openfluke/gridcast/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

// newRootCmdFor builds the command tree around a. A logger already set on a
// is kept instead of building one from the config.
func newRootCmdFor(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridcast",
		Short: "Forecast renewable generation from four weather readings",
		Long: `gridcast feeds temperature, humidity, wind speed and solar radiation
through a fixed 4-4-1 network and prints every step of the calculation:

  1. Inputs are normalized
  2. Each hidden neuron sums its weighted inputs, adds a bias, applies sigmoid
  3. The output neuron does the same over the hidden layer

It finishes with a ranking of which reading drove the prediction.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			if a.verbose {
				cfg.Logging.Level = zapcore.DebugLevel.String()
			}
			a.cfg = cfg

			if a.logger != nil {
				return nil
			}
			logger, err := cfg.BuildLogger()
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "gridcast.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newPredictCmd(a),
		newPresetsCmd(a),
		newBlueprintCmd(a),
		newWeightsCmd(a),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
