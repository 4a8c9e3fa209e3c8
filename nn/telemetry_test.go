package nn

import "testing"

func TestExtractBlueprint(t *testing.T) {
	network := mustNetwork(t, DefaultWeights())
	bp := ExtractBlueprint(network, "weather")

	if bp.ID != "weather" || bp.TotalLayers != 2 {
		t.Errorf("Unexpected blueprint header %+v", bp)
	}
	if bp.TotalParams != DefaultWeights().ParameterCount() {
		t.Errorf("Expected %d parameters, got %d", DefaultWeights().ParameterCount(), bp.TotalParams)
	}
	if bp.Neurons != 9 || bp.Connections != 20 {
		t.Errorf("Expected 9 neurons and 20 connections, got %d and %d", bp.Neurons, bp.Connections)
	}
	if bp.Layers[0].Parameters != 20 || bp.Layers[1].Parameters != 5 {
		t.Errorf("Unexpected per-layer parameters %+v", bp.Layers)
	}
	if bp.Layers[0].Activation != "sigmoid" || bp.Layers[1].OutputShape[0] != 1 {
		t.Errorf("Unexpected layers %+v", bp.Layers)
	}

	relu := ExtractBlueprint(network.WithHiddenActivation(ActivationReLU), "weather")
	if relu.Layers[0].Activation != "relu" || relu.Layers[1].Activation != "sigmoid" {
		t.Errorf("Unexpected activations %+v", relu.Layers)
	}
}
