package nn

import (
	"fmt"
	"math"
)

// Sigmoid is the logistic function 1 / (1 + exp(-x)).
// math.Exp overflows to +Inf for very negative x, which yields 0, and
// underflows to 0 for very positive x, which yields 1.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// ReLU returns max(0, x).
func ReLU(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// activate applies the activation function
func activate(v float64, activation ActivationType) float64 {
	switch activation {
	case ActivationSigmoid:
		return Sigmoid(v)
	case ActivationReLU:
		return ReLU(v)
	default:
		return v
	}
}

// activationSymbol is the prefix used in formula strings
func activationSymbol(activation ActivationType) string {
	switch activation {
	case ActivationSigmoid:
		return "σ"
	case ActivationReLU:
		return "ReLU"
	default:
		return "id"
	}
}

// ParseActivation maps a config name to an ActivationType.
func ParseActivation(s string) (ActivationType, error) {
	switch s {
	case "sigmoid", "":
		return ActivationSigmoid, nil
	case "relu":
		return ActivationReLU, nil
	case "linear":
		return ActivationLinear, nil
	default:
		return ActivationSigmoid, fmt.Errorf("unknown activation %q", s)
	}
}

// valid reports whether a is one of the declared activations
func (a ActivationType) valid() bool {
	return a >= ActivationSigmoid && a <= ActivationLinear
}

func (a ActivationType) String() string {
	switch a {
	case ActivationSigmoid:
		return "sigmoid"
	case ActivationReLU:
		return "relu"
	default:
		return "linear"
	}
}
