package nn

import (
	"math"
	"sort"
)

// Attribute validates the table and the inputs, then ranks the input features.
func Attribute(inputs Features, weights WeightTable) ([]FeatureImportance, error) {
	if err := inputs.Validate(); err != nil {
		return nil, err
	}
	network, err := NewNetwork(weights)
	if err != nil {
		return nil, err
	}
	return network.Attribute(inputs), nil
}

// Attribute scores each input feature by the absolute size of its paths
// through the hidden layer: sum_j |x_i * W[i][j] * V[j]|.
// The sigmoid slope is ignored, so this is a first-order proxy rather than a
// gradient. Scores are scaled so the strongest feature reads 100; when every
// total is zero all scores stay zero. The result is sorted by importance,
// descending, with ties kept in feature order.
// Inputs are assumed finite (see Features.Validate); a NaN input makes the
// maximum undefined and every score reads 0.
func (n *Network) Attribute(inputs Features) []FeatureImportance {
	totals := make([]float64, InputSize)
	for i := 0; i < InputSize; i++ {
		total := 0.0
		for j := 0; j < HiddenSize; j++ {
			total += math.Abs(inputs[i] * n.weights.InputToHidden[i][j] * n.weights.HiddenToOutput[j])
		}
		totals[i] = total
	}

	maxTotal := Max(totals)

	ranking := make([]FeatureImportance, InputSize)
	for i := 0; i < InputSize; i++ {
		importance := 0.0
		if maxTotal > 0 {
			importance = totals[i] / maxTotal * 100
		}
		ranking[i] = FeatureImportance{
			Feature:      FeatureNames[i],
			Index:        i,
			Importance:   importance,
			Contribution: inputs[i] * totals[i],
		}
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Importance > ranking[b].Importance
	})
	return ranking
}
