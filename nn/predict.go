package nn

// Prediction bundles everything one reading produces: the normalized
// inputs, the forward trace and the feature ranking.
type Prediction struct {
	Reading     WeatherReading      `json:"reading"`
	Inputs      Features            `json:"inputs"`
	Propagation *Propagation        `json:"propagation"`
	Importance  []FeatureImportance `json:"importance"`
}

// Output is the final prediction in (0,1)
func (p Prediction) Output() float64 {
	if p.Propagation == nil {
		return 0
	}
	return p.Propagation.Output
}

// Predict normalizes the reading, runs the forward pass and ranks the features.
func (n *Network) Predict(reading WeatherReading) Prediction {
	inputs := Normalize(reading)
	return Prediction{
		Reading:     reading,
		Inputs:      inputs,
		Propagation: n.Forward(inputs),
		Importance:  n.Attribute(inputs),
	}
}

// Predict is the one-shot form of Network.Predict. Readings that normalize
// to NaN or Inf are rejected with ErrInputValue.
func Predict(reading WeatherReading, weights WeightTable) (Prediction, error) {
	if err := Normalize(reading).Validate(); err != nil {
		return Prediction{}, err
	}
	network, err := NewNetwork(weights)
	if err != nil {
		return Prediction{}, err
	}
	return network.Predict(reading), nil
}
