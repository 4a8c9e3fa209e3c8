package main

import (
	"fmt"

	"github.com/openfluke/gridcast/internal/report"
	"github.com/openfluke/gridcast/nn"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type predictOptions struct {
	preset     string
	reading    nn.WeatherReading
	format     string
	weights    string
	activation string
	detail     bool
	blueprint  bool
}

func newPredictCmd(a *app) *cobra.Command {
	opts := &predictOptions{}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Run one forward pass and print the trace",
		Long: `Runs one reading through the network. Use --preset for a named scenario,
or give the four readings directly.

Example:
  gridcast predict --preset "Perfect Conditions"
  gridcast predict --temperature 18 --humidity 60 --wind 8 --solar 500 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPredict(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.preset, "preset", "p", "", "Named scenario to run")
	f.Float64Var(&opts.reading.Temperature, "temperature", 0, "Temperature in °C")
	f.Float64Var(&opts.reading.Humidity, "humidity", 0, "Relative humidity in %")
	f.Float64Var(&opts.reading.WindSpeed, "wind", 0, "Wind speed in m/s")
	f.Float64Var(&opts.reading.SolarRadiation, "solar", 0, "Solar radiation in W/m²")
	f.StringVarP(&opts.format, "format", "f", "", "Output format: text or json (overrides config)")
	f.StringVar(&opts.weights, "weights", "", "Weights bundle to load (overrides config)")
	f.StringVar(&opts.activation, "hidden-activation", "", "Hidden layer activation: sigmoid, relu or linear (overrides config)")
	f.BoolVar(&opts.detail, "detail", false, "Show every weighted contribution")
	f.BoolVar(&opts.blueprint, "blueprint", false, "Include the network blueprint in JSON output")
	cmd.MarkFlagsMutuallyExclusive("preset", "temperature")
	cmd.MarkFlagsMutuallyExclusive("preset", "humidity")
	cmd.MarkFlagsMutuallyExclusive("preset", "wind")
	cmd.MarkFlagsMutuallyExclusive("preset", "solar")

	return cmd
}

func (a *app) runPredict(cmd *cobra.Command, opts *predictOptions) error {
	cfg := a.cfg
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.weights != "" {
		cfg.Model.WeightsPath = opts.weights
	}
	if opts.activation != "" {
		cfg.Model.HiddenActivation = opts.activation
	}
	if opts.detail {
		cfg.Output.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	network, modelID, err := cfg.Network()
	if err != nil {
		return err
	}

	reading := opts.reading
	scenario := ""
	if opts.preset != "" {
		p, err := cfg.FindScenario(opts.preset)
		if err != nil {
			return err
		}
		reading = p.Reading
		scenario = p.Name
	}
	if err := nn.Normalize(reading).Validate(); err != nil {
		return fmt.Errorf("invalid reading: %w", err)
	}

	a.logger.Info("running prediction",
		zap.String("model", modelID),
		zap.String("scenario", scenario),
		zap.String("hidden_activation", network.HiddenActivation().String()),
		zap.Float64("temperature", reading.Temperature),
		zap.Float64("humidity", reading.Humidity),
		zap.Float64("wind_speed", reading.WindSpeed),
		zap.Float64("solar_radiation", reading.SolarRadiation),
	)

	pred := network.Predict(reading)
	nn.Replay(pred.Propagation, &nn.LogObserver{Logger: a.logger.Named("trace")})

	a.logger.Info("prediction complete",
		zap.Float64("output", pred.Output()),
		zap.String("top_feature", pred.Importance[0].Feature),
	)

	r := report.New(pred, modelID, scenario)
	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		if opts.blueprint {
			bp := nn.ExtractBlueprint(network, modelID)
			r.Blueprint = &bp
		}
		return report.WriteJSON(out, r)
	}
	_, err = fmt.Fprint(out, report.RenderText(r, cfg.Output.Verbose))
	return err
}
