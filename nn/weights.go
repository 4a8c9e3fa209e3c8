package nn

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrWeightShape marks a weight table whose dimensions are not 4x4 / 4 / 4.
	ErrWeightShape = errors.New("weight table shape mismatch")
	// ErrWeightValue marks a weight table holding NaN or Inf.
	ErrWeightValue = errors.New("weight table holds a non-finite value")
)

// WeightTable holds every constant of the network.
// InputToHidden is indexed [input][hidden].
type WeightTable struct {
	InputToHidden  [][]float64 `json:"input_to_hidden"`
	HiddenToOutput []float64   `json:"hidden_to_output"`
	HiddenBias     []float64   `json:"hidden_bias"`
	OutputBias     float64     `json:"output_bias"`
}

// DefaultWeights returns the built-in weight table
func DefaultWeights() WeightTable {
	return WeightTable{
		InputToHidden: [][]float64{
			{0.8, -0.5, 0.3, 0.7},
			{0.4, 0.9, -0.3, 0.2},
			{-0.6, 0.7, 0.5, -0.8},
			{0.2, -0.4, 0.8, 0.6},
		},
		HiddenToOutput: []float64{0.7, -0.3, 0.4, 0.9},
		HiddenBias:     []float64{0.1, -0.2, 0.3, -0.1},
		OutputBias:     0.2,
	}
}

// Validate checks the table dimensions and values. It never reshapes.
func (w WeightTable) Validate() error {
	if len(w.InputToHidden) != InputSize {
		return fmt.Errorf("%w: input_to_hidden has %d rows, expected %d", ErrWeightShape, len(w.InputToHidden), InputSize)
	}
	for i, row := range w.InputToHidden {
		if len(row) != HiddenSize {
			return fmt.Errorf("%w: input_to_hidden row %d has %d columns, expected %d", ErrWeightShape, i, len(row), HiddenSize)
		}
	}
	if len(w.HiddenToOutput) != HiddenSize {
		return fmt.Errorf("%w: hidden_to_output has %d entries, expected %d", ErrWeightShape, len(w.HiddenToOutput), HiddenSize)
	}
	if len(w.HiddenBias) != HiddenSize {
		return fmt.Errorf("%w: hidden_bias has %d entries, expected %d", ErrWeightShape, len(w.HiddenBias), HiddenSize)
	}

	for i, row := range w.InputToHidden {
		for j, v := range row {
			if !isFinite(v) {
				return fmt.Errorf("%w: input_to_hidden[%d][%d] = %v", ErrWeightValue, i, j, v)
			}
		}
	}
	for j := 0; j < HiddenSize; j++ {
		if !isFinite(w.HiddenToOutput[j]) {
			return fmt.Errorf("%w: hidden_to_output[%d] = %v", ErrWeightValue, j, w.HiddenToOutput[j])
		}
		if !isFinite(w.HiddenBias[j]) {
			return fmt.Errorf("%w: hidden_bias[%d] = %v", ErrWeightValue, j, w.HiddenBias[j])
		}
	}
	if !isFinite(w.OutputBias) {
		return fmt.Errorf("%w: output_bias = %v", ErrWeightValue, w.OutputBias)
	}
	return nil
}

// Clone returns a deep copy so the caller's slices can't alias the network's.
func (w WeightTable) Clone() WeightTable {
	out := WeightTable{
		InputToHidden:  make([][]float64, len(w.InputToHidden)),
		HiddenToOutput: append([]float64(nil), w.HiddenToOutput...),
		HiddenBias:     append([]float64(nil), w.HiddenBias...),
		OutputBias:     w.OutputBias,
	}
	for i, row := range w.InputToHidden {
		out.InputToHidden[i] = append([]float64(nil), row...)
	}
	return out
}

// ParameterCount is the number of scalar constants in a valid table
func (w WeightTable) ParameterCount() int {
	return InputSize*HiddenSize + HiddenSize + HiddenSize*OutputSize + OutputSize
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
