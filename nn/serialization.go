package nn

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Bundle identifiers written by SaveWeights
const (
	WeightBundleType    = "gridcast-weights"
	WeightBundleVersion = 1
)

// ErrBundleFormat marks a weights file with the wrong type or version
var ErrBundleFormat = errors.New("unsupported weight bundle")

// WeightBundle is the on-disk form of a weight table
type WeightBundle struct {
	Type    string      `json:"type"`
	Version int         `json:"version"`
	ID      string      `json:"id"`
	Weights WeightTable `json:"weights"`
}

// SaveToString serializes the table as an indented JSON bundle
func (w WeightTable) SaveToString(id string) (string, error) {
	if err := w.Validate(); err != nil {
		return "", fmt.Errorf("refusing to save: %w", err)
	}
	bundle := WeightBundle{
		Type:    WeightBundleType,
		Version: WeightBundleVersion,
		ID:      id,
		Weights: w,
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal weights: %w", err)
	}
	return string(data), nil
}

// SaveWeights writes the table to a JSON file
func SaveWeights(filename, id string, w WeightTable) error {
	data, err := w.SaveToString(id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// LoadWeightsFromString parses and validates a JSON bundle
func LoadWeightsFromString(jsonString string) (WeightBundle, error) {
	var bundle WeightBundle
	if err := json.Unmarshal([]byte(jsonString), &bundle); err != nil {
		return WeightBundle{}, fmt.Errorf("failed to unmarshal weights: %w", err)
	}
	if bundle.Type != WeightBundleType {
		return WeightBundle{}, fmt.Errorf("%w: type %q, expected %q", ErrBundleFormat, bundle.Type, WeightBundleType)
	}
	if bundle.Version != WeightBundleVersion {
		return WeightBundle{}, fmt.Errorf("%w: version %d, expected %d", ErrBundleFormat, bundle.Version, WeightBundleVersion)
	}
	if err := bundle.Weights.Validate(); err != nil {
		return WeightBundle{}, fmt.Errorf("weights %q: %w", bundle.ID, err)
	}
	return bundle, nil
}

// LoadWeights reads a JSON bundle from disk
func LoadWeights(filename string) (WeightBundle, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return WeightBundle{}, fmt.Errorf("failed to read file: %w", err)
	}
	return LoadWeightsFromString(string(data))
}
