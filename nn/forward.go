package nn

import (
	"fmt"
)

const (
	inputStepDescription  = "Input values are set and normalized"
	hiddenStepDescription = "Hidden layer neurons calculate weighted sums and apply activation function"
	outputStepDescription = "Output neuron calculates final prediction"
)

// Network is an immutable 4-4-1 network bound to one weight table.
// Every call returns fresh results; nothing is mutated between runs.
type Network struct {
	weights     WeightTable
	hidden      ActivationType
	connections []Connection // built once per table, copied per run
}

// NewNetwork validates the table and binds a private copy of it.
// The hidden layer uses sigmoid; see WithHiddenActivation.
func NewNetwork(weights WeightTable) (*Network, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weight table: %w", err)
	}
	w := weights.Clone()
	return &Network{
		weights:     w,
		hidden:      ActivationSigmoid,
		connections: buildConnections(w),
	}, nil
}

// WithHiddenActivation returns a copy of the network whose hidden layer uses
// the given activation. The output neuron is always sigmoid. Values outside
// the declared ActivationType constants fall back to sigmoid.
func (n *Network) WithHiddenActivation(activation ActivationType) *Network {
	if !activation.valid() {
		activation = ActivationSigmoid
	}
	cp := *n
	cp.hidden = activation
	return &cp
}

// Weights returns a copy of the bound weight table
func (n *Network) Weights() WeightTable {
	return n.weights.Clone()
}

// HiddenActivation reports the hidden layer's activation
func (n *Network) HiddenActivation() ActivationType {
	return n.hidden
}

// Propagate validates the table and the inputs, then runs one forward pass
// with a sigmoid hidden layer.
func Propagate(inputs Features, weights WeightTable) (*Propagation, error) {
	if err := inputs.Validate(); err != nil {
		return nil, err
	}
	network, err := NewNetwork(weights)
	if err != nil {
		return nil, err
	}
	return network.Forward(inputs), nil
}

// Forward runs the input, hidden and output stages in that order and
// records one PropagationStep per stage.
func (n *Network) Forward(inputs Features) *Propagation {
	neurons := newNeurons()
	connections := make([]Connection, len(n.connections))
	copy(connections, n.connections)

	result := &Propagation{
		Inputs:      inputs,
		Steps:       make([]PropagationStep, 0, 3),
		Neurons:     neurons,
		Connections: connections,
	}

	// Step 1: inputs
	inputIDs := make([]NeuronID, InputSize)
	for i := 0; i < InputSize; i++ {
		neurons[i].Value = inputs[i]
		neurons[i].Activated = true
		inputIDs[i] = neurons[i].ID
	}
	result.Steps = append(result.Steps, PropagationStep{
		Index:             1,
		Description:       inputStepDescription,
		ActiveNeurons:     inputIDs,
		ActiveConnections: []string{},
		Calculations:      []CalculationRecord{},
	})

	// Step 2: hidden layer, recorded in neuron index order
	hiddenIDs := make([]NeuronID, HiddenSize)
	hiddenValues := make([]float64, HiddenSize)
	hiddenRecords := make([]CalculationRecord, HiddenSize)
	hiddenConns := make([]string, 0, InputSize*HiddenSize)
	for j := 0; j < HiddenSize; j++ {
		column := make([]float64, InputSize)
		for i := 0; i < InputSize; i++ {
			column[i] = n.weights.InputToHidden[i][j]
		}
		rec := denseNeuron(HiddenID(j), inputIDs, inputs[:], column, n.weights.HiddenBias[j], n.hidden)

		neuron := &neurons[InputSize+j]
		setComputed(neuron, rec)

		hiddenIDs[j] = neuron.ID
		hiddenValues[j] = rec.Output
		hiddenRecords[j] = rec
		for i := 0; i < InputSize; i++ {
			hiddenConns = append(hiddenConns, ConnectionID(InputID(i), neuron.ID))
		}
	}
	// connections are ordered input-major, so the first block is input->hidden
	for k := 0; k < InputSize*HiddenSize; k++ {
		connections[k].Activated = true
	}
	result.Steps = append(result.Steps, PropagationStep{
		Index:             2,
		Description:       hiddenStepDescription,
		ActiveNeurons:     hiddenIDs,
		ActiveConnections: hiddenConns,
		Calculations:      hiddenRecords,
	})

	// Step 3: output neuron
	outRec := denseNeuron(OutputID, hiddenIDs, hiddenValues, n.weights.HiddenToOutput, n.weights.OutputBias, ActivationSigmoid)
	setComputed(&neurons[InputSize+HiddenSize], outRec)

	outputConns := make([]string, HiddenSize)
	for j := 0; j < HiddenSize; j++ {
		outputConns[j] = ConnectionID(HiddenID(j), OutputID)
		connections[InputSize*HiddenSize+j].Activated = true
	}
	result.Steps = append(result.Steps, PropagationStep{
		Index:             3,
		Description:       outputStepDescription,
		ActiveNeurons:     []NeuronID{OutputID},
		ActiveConnections: outputConns,
		Calculations:      []CalculationRecord{outRec},
	})

	result.Output = outRec.Output
	return result
}

// denseNeuron computes one neuron: sum(values[i] * weights[i]) + bias, then activation.
// The sum is accumulated in source order so repeated runs are bit-identical.
func denseNeuron(target NeuronID, sources []NeuronID, values, weights []float64, bias float64, activation ActivationType) CalculationRecord {
	contributions := make([]Contribution, len(sources))
	sum := 0.0
	for i := range sources {
		sum += values[i] * weights[i]
		contributions[i] = Contribution{
			From:   sources[i],
			Value:  values[i],
			Weight: weights[i],
		}
	}
	output := activate(sum+bias, activation)

	return CalculationRecord{
		Neuron:      target,
		Inputs:      contributions,
		WeightedSum: sum,
		Bias:        bias,
		Output:      output,
		Formula:     fmt.Sprintf("%s(%.3f + %.3f) = %.3f", activationSymbol(activation), sum, bias, output),
	}
}

func setComputed(neuron *Neuron, rec CalculationRecord) {
	sum, bias := rec.WeightedSum, rec.Bias
	neuron.WeightedSum = &sum
	neuron.Bias = &bias
	neuron.Value = rec.Output
	neuron.Activated = true
}
