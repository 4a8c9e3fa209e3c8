package nn

// InputID returns the id of input neuron i
func InputID(i int) NeuronID { return NeuronID{Layer: LayerInput, Index: i} }

// HiddenID returns the id of hidden neuron j
func HiddenID(j int) NeuronID { return NeuronID{Layer: LayerHidden, Index: j} }

// OutputID is the id of the single output neuron
var OutputID = NeuronID{Layer: LayerOutput, Index: 0}

// ConnectionID returns the id of the edge from -> to
func ConnectionID(from, to NeuronID) string {
	return from.String() + "->" + to.String()
}

// newNeurons creates a fresh, inactive neuron set in layer order
func newNeurons() []Neuron {
	neurons := make([]Neuron, 0, InputSize+HiddenSize+OutputSize)
	for i := 0; i < InputSize; i++ {
		neurons = append(neurons, Neuron{ID: InputID(i)})
	}
	for j := 0; j < HiddenSize; j++ {
		neurons = append(neurons, Neuron{ID: HiddenID(j)})
	}
	neurons = append(neurons, Neuron{ID: OutputID})
	return neurons
}

// BuildConnections lists every edge of the 4-4-1 topology with its weight.
// Input->hidden edges come first, ordered by input then hidden index,
// followed by the hidden->output edges.
func BuildConnections(w WeightTable) ([]Connection, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return buildConnections(w), nil
}

func buildConnections(w WeightTable) []Connection {
	connections := make([]Connection, 0, InputSize*HiddenSize+HiddenSize*OutputSize)
	for i := 0; i < InputSize; i++ {
		for j := 0; j < HiddenSize; j++ {
			from, to := InputID(i), HiddenID(j)
			connections = append(connections, Connection{
				ID:     ConnectionID(from, to),
				From:   from,
				To:     to,
				Weight: w.InputToHidden[i][j],
			})
		}
	}
	for j := 0; j < HiddenSize; j++ {
		from := HiddenID(j)
		connections = append(connections, Connection{
			ID:     ConnectionID(from, OutputID),
			From:   from,
			To:     OutputID,
			Weight: w.HiddenToOutput[j],
		})
	}
	return connections
}
