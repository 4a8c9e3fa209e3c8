//go:build js && wasm
// +build js,wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/openfluke/gridcast/nn"
)

// network is the table every call runs against; LoadWeights replaces it
var network *nn.Network

// predictWrapper exposes Network.Predict. Arguments: reading JSON, optional hidden activation.
func predictWrapper() js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return jsError("Expected 1 argument: readingJSON")
		}

		var reading nn.WeatherReading
		if err := json.Unmarshal([]byte(args[0].String()), &reading); err != nil {
			return jsError(fmt.Sprintf("Invalid reading JSON: %v", err))
		}
		if err := nn.Normalize(reading).Validate(); err != nil {
			return jsError(err.Error())
		}

		n := network
		if len(args) > 1 && !args[1].IsUndefined() && args[1].String() != "" {
			activation, err := nn.ParseActivation(args[1].String())
			if err != nil {
				return jsError(err.Error())
			}
			n = n.WithHiddenActivation(activation)
		}

		return jsSuccess(map[string]interface{}{
			"prediction": n.Predict(reading),
		})
	})
}

// propagateWrapper runs an already-normalized input vector
func propagateWrapper() js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return jsError("Expected 1 argument: inputsJSON (4 numbers)")
		}

		var inputs []float64
		if err := json.Unmarshal([]byte(args[0].String()), &inputs); err != nil {
			return jsError(fmt.Sprintf("Invalid inputs JSON: %v", err))
		}
		if len(inputs) != nn.InputSize {
			return jsError(fmt.Sprintf("Expected %d inputs, got %d", nn.InputSize, len(inputs)))
		}

		var features nn.Features
		copy(features[:], inputs)
		if err := features.Validate(); err != nil {
			return jsError(err.Error())
		}
		return jsSuccess(map[string]interface{}{
			"propagation": network.Forward(features),
			"importance":  network.Attribute(features),
		})
	})
}

func loadWeightsWrapper() js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return jsError("Expected 1 argument: bundleJSON")
		}

		bundle, err := nn.LoadWeightsFromString(args[0].String())
		if err != nil {
			return jsError(err.Error())
		}
		n, err := nn.NewNetwork(bundle.Weights)
		if err != nil {
			return jsError(err.Error())
		}
		network = n
		return jsSuccess(map[string]interface{}{
			"id":        bundle.ID,
			"blueprint": nn.ExtractBlueprint(network, bundle.ID),
		})
	})
}

func presetsWrapper() js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return jsSuccess(map[string]interface{}{
			"presets": nn.Presets(),
		})
	})
}

func weightsWrapper() js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return jsSuccess(map[string]interface{}{
			"weights": network.Weights(),
		})
	})
}

// Helper functions
func jsSuccess(data map[string]interface{}) js.Value {
	data["success"] = true
	jsonData, err := json.Marshal(data)
	if err != nil {
		return jsError(fmt.Sprintf("Failed to marshal result: %v", err))
	}
	return js.ValueOf(string(jsonData))
}

func jsError(message string) js.Value {
	data := map[string]interface{}{
		"success": false,
		"error":   message,
	}
	jsonData, _ := json.Marshal(data)
	return js.ValueOf(string(jsonData))
}

func main() {
	n, err := nn.NewNetwork(nn.DefaultWeights())
	if err != nil {
		panic(err)
	}
	network = n

	js.Global().Set("GridcastPredict", predictWrapper())
	js.Global().Set("GridcastPropagate", propagateWrapper())
	js.Global().Set("GridcastLoadWeights", loadWeightsWrapper())
	js.Global().Set("GridcastPresets", presetsWrapper())
	js.Global().Set("GridcastWeights", weightsWrapper())

	fmt.Println("gridcast WASM API ready:")
	fmt.Println("  - GridcastPredict(readingJSON, hiddenActivation?)")
	fmt.Println("  - GridcastPropagate(inputsJSON)")
	fmt.Println("  - GridcastLoadWeights(bundleJSON)")
	fmt.Println("  - GridcastPresets()")
	fmt.Println("  - GridcastWeights()")

	// Keep the Go program running
	select {}
}
