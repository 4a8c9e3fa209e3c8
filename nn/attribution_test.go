package nn

import (
	"math"
	"testing"
)

func importanceOrder(ranking []FeatureImportance) []int {
	order := make([]int, len(ranking))
	for i, f := range ranking {
		order[i] = f.Index
	}
	return order
}

func equalOrder(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestAttributeGolden checks the Perfect Conditions ranking against hand-computed values
func TestAttributeGolden(t *testing.T) {
	ranking, err := Attribute(perfectConditions, DefaultWeights())
	if err != nil {
		t.Fatalf("Attribute: %v", err)
	}

	want := []FeatureImportance{
		{Feature: "Solar Radiation", Index: 3, Importance: 100, Contribution: 1.12},
		{Feature: "Temperature", Index: 0, Importance: 97.7679, Contribution: 0.82125},
		{Feature: "Wind Speed", Index: 2, Importance: 69.1964, Contribution: 0.3875},
		{Feature: "Humidity", Index: 1, Importance: 30.3571, Contribution: 0.136},
	}
	if len(ranking) != len(want) {
		t.Fatalf("Expected %d features, got %d", len(want), len(ranking))
	}
	for i := range want {
		got := ranking[i]
		if got.Feature != want[i].Feature || got.Index != want[i].Index {
			t.Errorf("Rank %d: expected %s, got %s", i, want[i].Feature, got.Feature)
		}
		if math.Abs(got.Importance-want[i].Importance) > 1e-4 {
			t.Errorf("%s importance: expected %.4f, got %.4f", got.Feature, want[i].Importance, got.Importance)
		}
		if math.Abs(got.Contribution-want[i].Contribution) > 1e-9 {
			t.Errorf("%s contribution: expected %v, got %v", got.Feature, want[i].Contribution, got.Contribution)
		}
	}
	if ranking[0].Importance != 100 {
		t.Errorf("Top feature should read exactly 100, got %v", ranking[0].Importance)
	}
}

// TestAttributeRangeAndOrder checks the max is exactly 100 and the list is descending
func TestAttributeRangeAndOrder(t *testing.T) {
	network := mustNetwork(t, DefaultWeights())
	for _, p := range Presets() {
		ranking := network.Attribute(Normalize(p.Reading))

		maxImp := 0.0
		for i, f := range ranking {
			if f.Importance < 0 || f.Importance > 100 {
				t.Errorf("%s: %s importance %v outside [0,100]", p.Name, f.Feature, f.Importance)
			}
			if i > 0 && ranking[i-1].Importance < f.Importance {
				t.Errorf("%s: ranking not descending at %d", p.Name, i)
			}
			if f.Importance > maxImp {
				maxImp = f.Importance
			}
		}
		if maxImp != 100 {
			t.Errorf("%s: max importance is %v, expected exactly 100", p.Name, maxImp)
		}
	}
}

// TestAttributeZeroInputs covers the all-zero degenerate case: no NaN, feature order kept
func TestAttributeZeroInputs(t *testing.T) {
	ranking := mustNetwork(t, DefaultWeights()).Attribute(Features{})
	for i, f := range ranking {
		if math.IsNaN(f.Importance) || f.Importance != 0 {
			t.Errorf("%s importance: expected 0, got %v", f.Feature, f.Importance)
		}
		if f.Index != i || f.Feature != FeatureNames[i] {
			t.Errorf("Rank %d should be %s, got %s", i, FeatureNames[i], f.Feature)
		}
		if f.Contribution != 0 {
			t.Errorf("%s contribution: expected 0, got %v", f.Feature, f.Contribution)
		}
	}
}

// TestAttributeStableTies uses a table where every feature ties
func TestAttributeStableTies(t *testing.T) {
	w := WeightTable{
		InputToHidden: [][]float64{
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
		},
		HiddenToOutput: []float64{1, 1, 1, 1},
		HiddenBias:     []float64{0, 0, 0, 0},
	}
	ranking, err := Attribute(Features{0.5, 0.5, 0.5, 0.5}, w)
	if err != nil {
		t.Fatal(err)
	}
	if got := importanceOrder(ranking); !equalOrder(got, []int{0, 1, 2, 3}) {
		t.Errorf("Ties should keep feature order, got %v", got)
	}
	for _, f := range ranking {
		if f.Importance != 100 {
			t.Errorf("%s importance: expected 100, got %v", f.Feature, f.Importance)
		}
	}

	// partial tie: humidity and solar share the top score
	ranking, _ = Attribute(Features{0.2, 0.9, 0.1, 0.9}, w)
	if got := importanceOrder(ranking); !equalOrder(got, []int{1, 3, 0, 2}) {
		t.Errorf("Expected order [1 3 0 2], got %v", got)
	}
}

// TestAttributeCalmNight covers a zero feature among non-zero ones
func TestAttributeCalmNight(t *testing.T) {
	calm, _ := FindPreset("Calm Night")
	ranking := mustNetwork(t, DefaultWeights()).Attribute(Normalize(calm.Reading))

	if got := importanceOrder(ranking); !equalOrder(got, []int{0, 1, 2, 3}) {
		t.Errorf("Expected order [0 1 2 3], got %v", got)
	}
	if ranking[3].Importance != 0 {
		t.Errorf("Solar importance at night: expected 0, got %v", ranking[3].Importance)
	}
	if math.Abs(ranking[1].Importance-98.2449) > 1e-4 {
		t.Errorf("Humidity importance: expected 98.2449, got %.4f", ranking[1].Importance)
	}
}

// TestAttributeUniformRescale checks the ranking survives scaling all inputs by one positive factor
func TestAttributeUniformRescale(t *testing.T) {
	network := mustNetwork(t, DefaultWeights())
	for _, p := range Presets() {
		inputs := Normalize(p.Reading)
		base := importanceOrder(network.Attribute(inputs))

		for _, k := range []float64{0.5, 2, 4} {
			var scaled Features
			for i := range inputs {
				scaled[i] = inputs[i] * k
			}
			if got := importanceOrder(network.Attribute(scaled)); !equalOrder(got, base) {
				t.Errorf("%s scaled by %v: order %v, expected %v", p.Name, k, got, base)
			}
		}
	}
}

// TestAttributeSignedContribution checks contribution keeps the input's sign
func TestAttributeSignedContribution(t *testing.T) {
	ranking := mustNetwork(t, DefaultWeights()).Attribute(Features{-0.5, 0.4, 0.5, 1})
	for _, f := range ranking {
		if f.Index == 0 && f.Contribution >= 0 {
			t.Errorf("Negative temperature should give a negative contribution, got %v", f.Contribution)
		}
		if f.Importance < 0 {
			t.Errorf("Importance must not be negative: %v", f.Importance)
		}
	}
}
