package nn

// ModelTelemetry represents the network's structure
type ModelTelemetry struct {
	ID          string           `json:"id"`
	TotalLayers int              `json:"total_layers"`
	TotalParams int              `json:"total_parameters"`
	Neurons     int              `json:"neurons"`
	Connections int              `json:"connections"`
	Layers      []LayerTelemetry `json:"layers"`
}

// LayerTelemetry contains metadata about one weighted layer
type LayerTelemetry struct {
	Type        string `json:"type"`
	Activation  string `json:"activation"`
	Parameters  int    `json:"parameters"`
	InputShape  []int  `json:"input_shape"`
	OutputShape []int  `json:"output_shape"`
}

// ExtractBlueprint describes the network's layers and parameter counts.
func ExtractBlueprint(n *Network, modelID string) ModelTelemetry {
	layers := []LayerTelemetry{
		{
			Type:        "dense",
			Activation:  n.hidden.String(),
			Parameters:  InputSize*HiddenSize + HiddenSize,
			InputShape:  []int{InputSize},
			OutputShape: []int{HiddenSize},
		},
		{
			Type:        "dense",
			Activation:  ActivationSigmoid.String(),
			Parameters:  HiddenSize*OutputSize + OutputSize,
			InputShape:  []int{HiddenSize},
			OutputShape: []int{OutputSize},
		},
	}

	total := 0
	for _, l := range layers {
		total += l.Parameters
	}

	return ModelTelemetry{
		ID:          modelID,
		TotalLayers: len(layers),
		TotalParams: total,
		Neurons:     InputSize + HiddenSize + OutputSize,
		Connections: len(n.connections),
		Layers:      layers,
	}
}
