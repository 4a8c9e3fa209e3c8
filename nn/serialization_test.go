package nn

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestWeightsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	if err := SaveWeights(path, "default", DefaultWeights()); err != nil {
		t.Fatalf("SaveWeights: %v", err)
	}

	bundle, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("LoadWeights: %v", err)
	}
	if bundle.ID != "default" || bundle.Type != WeightBundleType || bundle.Version != WeightBundleVersion {
		t.Errorf("Unexpected bundle header %+v", bundle)
	}

	// the loaded table must drive the network to the same output
	a, _ := Propagate(perfectConditions, DefaultWeights())
	b, err := Propagate(perfectConditions, bundle.Weights)
	if err != nil {
		t.Fatal(err)
	}
	if a.Output != b.Output {
		t.Errorf("Loaded weights give %v, expected %v", b.Output, a.Output)
	}
}

func TestLoadWeightsRejects(t *testing.T) {
	cases := map[string]struct {
		json string
		want error
	}{
		"wrong type": {
			json: `{"type":"model-bundle","version":1,"weights":{}}`,
			want: ErrBundleFormat,
		},
		"wrong version": {
			json: `{"type":"gridcast-weights","version":2,"weights":{}}`,
			want: ErrBundleFormat,
		},
		"short matrix": {
			json: `{"type":"gridcast-weights","version":1,"id":"x","weights":{
				"input_to_hidden":[[1,2,3,4],[1,2,3,4],[1,2,3,4]],
				"hidden_to_output":[1,2,3,4],"hidden_bias":[0,0,0,0],"output_bias":0}}`,
			want: ErrWeightShape,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadWeightsFromString(tc.json); !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := LoadWeightsFromString("{not json"); err == nil {
		t.Error("Expected an error for invalid JSON")
	}
	if _, err := LoadWeights(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestSaveRejectsMalformed(t *testing.T) {
	w := DefaultWeights()
	w.HiddenToOutput = nil
	if _, err := w.SaveToString("bad"); !errors.Is(err, ErrWeightShape) {
		t.Errorf("Expected ErrWeightShape, got %v", err)
	}

	s, err := DefaultWeights().SaveToString("default")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, `"input_to_hidden"`) || !strings.Contains(s, `"output_bias": 0.2`) {
		t.Errorf("Unexpected bundle:\n%s", s)
	}
}
