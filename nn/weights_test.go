package nn

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultWeightsValid(t *testing.T) {
	w := DefaultWeights()
	if err := w.Validate(); err != nil {
		t.Fatalf("Default weights invalid: %v", err)
	}
	if w.InputToHidden[2][3] != -0.8 || w.HiddenToOutput[3] != 0.9 || w.HiddenBias[1] != -0.2 || w.OutputBias != 0.2 {
		t.Error("Default weights don't match the built-in constants")
	}
	if w.ParameterCount() != 25 {
		t.Errorf("Expected 25 parameters, got %d", w.ParameterCount())
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]struct {
		mutate func(*WeightTable)
		want   error
	}{
		"extra row":       {func(w *WeightTable) { w.InputToHidden = append(w.InputToHidden, []float64{0, 0, 0, 0}) }, ErrWeightShape},
		"long row":        {func(w *WeightTable) { w.InputToHidden[0] = append(w.InputToHidden[0], 1) }, ErrWeightShape},
		"short output":    {func(w *WeightTable) { w.HiddenToOutput = w.HiddenToOutput[:2] }, ErrWeightShape},
		"long bias":       {func(w *WeightTable) { w.HiddenBias = append(w.HiddenBias, 0) }, ErrWeightShape},
		"nan weight":      {func(w *WeightTable) { w.InputToHidden[1][1] = math.NaN() }, ErrWeightValue},
		"inf output":      {func(w *WeightTable) { w.HiddenToOutput[0] = math.Inf(1) }, ErrWeightValue},
		"inf hidden bias": {func(w *WeightTable) { w.HiddenBias[3] = math.Inf(-1) }, ErrWeightValue},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := DefaultWeights()
			tc.mutate(&w)
			if err := w.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	w := DefaultWeights()
	c := w.Clone()
	c.InputToHidden[0][0] = 9
	c.HiddenToOutput[0] = 9
	c.HiddenBias[0] = 9
	if w.InputToHidden[0][0] == 9 || w.HiddenToOutput[0] == 9 || w.HiddenBias[0] == 9 {
		t.Error("Clone shares memory with the original")
	}
}

func TestBuildConnections(t *testing.T) {
	conns, err := BuildConnections(DefaultWeights())
	if err != nil {
		t.Fatal(err)
	}
	if len(conns) != 20 {
		t.Fatalf("Expected 20 connections, got %d", len(conns))
	}
	// input-2 -> hidden-3 is the 12th input->hidden edge
	c := conns[2*HiddenSize+3]
	if c.ID != "input-2->hidden-3" || c.Weight != -0.8 || c.Activated {
		t.Errorf("Unexpected connection %+v", c)
	}
	last := conns[19]
	if last.ID != "hidden-3->output-0" || last.Weight != 0.9 {
		t.Errorf("Unexpected connection %+v", last)
	}

	bad := DefaultWeights()
	bad.HiddenBias = bad.HiddenBias[:1]
	if _, err := BuildConnections(bad); !errors.Is(err, ErrWeightShape) {
		t.Errorf("Expected ErrWeightShape, got %v", err)
	}
}

func TestNeuronIDText(t *testing.T) {
	for _, id := range []NeuronID{InputID(0), HiddenID(3), OutputID} {
		text, _ := id.MarshalText()
		var back NeuronID
		if err := back.UnmarshalText(text); err != nil || back != id {
			t.Errorf("%s: round trip gave %v, %v", id, back, err)
		}
	}
	var id NeuronID
	for _, bad := range []string{"hidden", "bias-1", "output-x"} {
		if err := id.UnmarshalText([]byte(bad)); err == nil {
			t.Errorf("Expected an error for %q", bad)
		}
	}
}
