package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/openfluke/gridcast/nn"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPresetsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the named scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := a.cfg.AllScenarios()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(scenarios)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTEMP °C\tHUMIDITY %\tWIND m/s\tSOLAR W/m²\tEXPECTED")
			for _, s := range scenarios {
				fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%s\n", s.Name,
					s.Reading.Temperature, s.Reading.Humidity, s.Reading.WindSpeed, s.Reading.SolarRadiation,
					s.ExpectedOutcome)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newBlueprintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blueprint",
		Short: "Print the network structure as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			network, modelID, err := a.cfg.Network()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(nn.ExtractBlueprint(network, modelID))
		},
	}
}

func newWeightsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weights [output-file]",
		Short: "Export the active weight table as a JSON bundle",
		Long: `Writes the weight table in use (built-in, or the one named in the config)
as a bundle that --weights and model.weights_path accept. Without a file
argument the bundle goes to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weights, modelID, err := a.cfg.Weights()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := nn.SaveWeights(args[0], modelID, weights); err != nil {
					return err
				}
				a.logger.Info("weights exported", zap.String("file", args[0]), zap.String("model", modelID))
				return nil
			}
			s, err := weights.SaveToString(modelID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}
