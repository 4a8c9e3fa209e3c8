// Package config loads the gridcast YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openfluke/gridcast/nn"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all gridcast configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Network weights and activation
	Model ModelConfig `yaml:"model"`

	// Report rendering
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Extra named scenarios, checked before the built-in presets
	Scenarios []nn.Preset `yaml:"scenarios,omitempty"`
}

// ModelConfig selects the weight table and the hidden activation.
type ModelConfig struct {
	ID               string `yaml:"id"`
	WeightsPath      string `yaml:"weights_path"` // empty = built-in table
	HiddenActivation string `yaml:"hidden_activation"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Format  string `yaml:"format"`  // text, json
	Verbose bool   `yaml:"verbose"` // list every contribution in text output
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "gridcast",
		Version: "1.0.0",

		Model: ModelConfig{
			ID:               "weather-4-4-1",
			HiddenActivation: "sigmoid",
		},

		Output: OutputConfig{
			Format: "text",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("GRIDCAST_WEIGHTS"); path != "" {
		c.Model.WeightsPath = path
	}
	if level := os.Getenv("GRIDCAST_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("GRIDCAST_FORMAT"); format != "" {
		c.Output.Format = format
	}
}

// Validate checks enumerated settings. It does not touch the weights file.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	if _, err := nn.ParseActivation(c.Model.HiddenActivation); err != nil {
		return fmt.Errorf("model.hidden_activation: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	for i, s := range c.Scenarios {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("scenarios[%d]: name is required", i)
		}
	}
	return nil
}

// BuildLogger creates the zap logger described by the logging section.
func (c *Config) BuildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	if c.Logging.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Weights returns the configured weight table: the built-in one unless a
// weights file is set.
func (c *Config) Weights() (nn.WeightTable, string, error) {
	if c.Model.WeightsPath == "" {
		return nn.DefaultWeights(), c.Model.ID, nil
	}
	bundle, err := nn.LoadWeights(c.Model.WeightsPath)
	if err != nil {
		return nn.WeightTable{}, "", fmt.Errorf("failed to load weights from %s: %w", c.Model.WeightsPath, err)
	}
	id := bundle.ID
	if id == "" {
		id = c.Model.ID
	}
	return bundle.Weights, id, nil
}

// Network builds the configured network.
func (c *Config) Network() (*nn.Network, string, error) {
	weights, id, err := c.Weights()
	if err != nil {
		return nil, "", err
	}
	activation, err := nn.ParseActivation(c.Model.HiddenActivation)
	if err != nil {
		return nil, "", err
	}
	network, err := nn.NewNetwork(weights)
	if err != nil {
		return nil, "", err
	}
	return network.WithHiddenActivation(activation), id, nil
}

// FindScenario looks a name up in the configured scenarios, then in the
// built-in presets.
func (c *Config) FindScenario(name string) (nn.Preset, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range c.Scenarios {
		if strings.EqualFold(s.Name, trimmed) {
			return s, nil
		}
	}
	if p, ok := nn.FindPreset(trimmed); ok {
		return p, nil
	}
	return nn.Preset{}, fmt.Errorf("%w: %q", nn.ErrUnknownPreset, name)
}

// AllScenarios lists the configured scenarios followed by the built-in presets.
func (c *Config) AllScenarios() []nn.Preset {
	out := make([]nn.Preset, 0, len(c.Scenarios)+5)
	out = append(out, c.Scenarios...)
	return append(out, nn.Presets()...)
}
