package nn

import (
	"fmt"
	"strconv"
	"strings"
)

// ActivationType defines the activation function used in a layer
type ActivationType int

const (
	ActivationSigmoid ActivationType = 0 // 1 / (1 + exp(-v))
	ActivationReLU    ActivationType = 1 // max(0, v)
	ActivationLinear  ActivationType = 2 // v
)

// Topology sizes. The network is always 4-4-1.
const (
	InputSize  = 4
	HiddenSize = 4
	OutputSize = 1
)

// Layer identifies which layer a neuron belongs to
type Layer int

const (
	LayerInput  Layer = 0
	LayerHidden Layer = 1
	LayerOutput Layer = 2
)

func (l Layer) String() string {
	switch l {
	case LayerInput:
		return "input"
	case LayerHidden:
		return "hidden"
	case LayerOutput:
		return "output"
	default:
		return "unknown"
	}
}

func parseLayer(s string) (Layer, error) {
	switch s {
	case "input":
		return LayerInput, nil
	case "hidden":
		return LayerHidden, nil
	case "output":
		return LayerOutput, nil
	default:
		return 0, fmt.Errorf("unknown layer %q", s)
	}
}

// NeuronID is a layer tag plus an index within that layer.
// Its text form is "<layer>-<index>", e.g. "hidden-2".
type NeuronID struct {
	Layer Layer
	Index int
}

func (id NeuronID) String() string {
	return id.Layer.String() + "-" + strconv.Itoa(id.Index)
}

// MarshalText implements encoding.TextMarshaler
func (id NeuronID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *NeuronID) UnmarshalText(text []byte) error {
	layerName, idx, ok := strings.Cut(string(text), "-")
	if !ok {
		return fmt.Errorf("invalid neuron id %q", text)
	}
	layer, err := parseLayer(layerName)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(idx)
	if err != nil {
		return fmt.Errorf("invalid neuron index in %q: %w", text, err)
	}
	id.Layer = layer
	id.Index = n
	return nil
}

// Neuron is the state of one neuron after a forward pass.
// WeightedSum and Bias are nil for input neurons.
type Neuron struct {
	ID          NeuronID `json:"id"`
	Value       float64  `json:"value"`
	WeightedSum *float64 `json:"weighted_sum,omitempty"`
	Bias        *float64 `json:"bias,omitempty"`
	Activated   bool     `json:"activated"`
}

// Connection is a weighted edge between two neurons
type Connection struct {
	ID        string   `json:"id"`
	From      NeuronID `json:"from"`
	To        NeuronID `json:"to"`
	Weight    float64  `json:"weight"`
	Activated bool     `json:"activated"`
}

// Contribution is one (source, value, weight) triple consumed by a neuron
type Contribution struct {
	From   NeuronID `json:"from"`
	Value  float64  `json:"value"`
	Weight float64  `json:"weight"`
}

// CalculationRecord describes how a single neuron got its value.
// WeightedSum excludes the bias; Output = activation(WeightedSum + Bias).
type CalculationRecord struct {
	Neuron      NeuronID       `json:"neuron"`
	Inputs      []Contribution `json:"inputs"`
	WeightedSum float64        `json:"weighted_sum"`
	Bias        float64        `json:"bias"`
	Output      float64        `json:"output"`
	Formula     string         `json:"formula"`
}

// PropagationStep is one layer's worth of computation. Index starts at 1.
type PropagationStep struct {
	Index             int                 `json:"step"`
	Description       string              `json:"description"`
	ActiveNeurons     []NeuronID          `json:"active_neurons"`
	ActiveConnections []string            `json:"active_connections"`
	Calculations      []CalculationRecord `json:"calculations"`
}

// Propagation is the complete, caller-owned result of one forward pass
type Propagation struct {
	Inputs      Features          `json:"inputs"`
	Steps       []PropagationStep `json:"steps"`
	Output      float64           `json:"output"`
	Neurons     []Neuron          `json:"neurons"`
	Connections []Connection      `json:"connections"`
}

// Neuron looks up a neuron of the result by id
func (p *Propagation) Neuron(id NeuronID) (Neuron, bool) {
	for _, n := range p.Neurons {
		if n.ID == id {
			return n, true
		}
	}
	return Neuron{}, false
}

// FeatureImportance is one input feature's share of influence.
// Importance is max-normalized to [0,100]; Contribution is the signed
// input value times the unnormalized total.
type FeatureImportance struct {
	Feature      string  `json:"feature"`
	Index        int     `json:"index"`
	Importance   float64 `json:"importance"`
	Contribution float64 `json:"contribution"`
}
