// Package nn implements the fixed 4-4-1 feedforward network that turns four
// weather readings into a renewable-generation prediction.
//
// The network is not trained. Its weights are a constant WeightTable that can
// be swapped for another table of the same shape:
//   - Input layer: temperature, humidity, wind speed, solar radiation (normalized)
//   - Hidden layer: 4 neurons, sigmoid by default (ReLU selectable)
//   - Output layer: 1 sigmoid neuron, the prediction in (0,1)
//
// Every forward pass returns a fresh Propagation holding the three ordered
// steps (input, hidden, output), each with per-neuron calculation records, so
// a caller can display the computation one step at a time. Feature attribution
// ranks the inputs by their composed path weight through the hidden layer.
//
// Example usage:
//
//	network, err := nn.NewNetwork(nn.DefaultWeights())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	inputs := nn.Normalize(nn.WeatherReading{Temperature: 25, Humidity: 40, WindSpeed: 15, SolarRadiation: 1000})
//	result := network.Forward(inputs)
//	ranking := network.Attribute(inputs)
//
//	// Show the trace step by step
//	nn.Replay(result, &nn.ConsoleObserver{Out: os.Stdout})
package nn
