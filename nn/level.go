package nn

import "fmt"

// PredictionLevel grades a prediction into five bands
type PredictionLevel int

const (
	LevelVeryLow  PredictionLevel = iota // below 0.2
	LevelLow                             // [0.2, 0.4)
	LevelModerate                        // [0.4, 0.6)
	LevelHigh                            // [0.6, 0.8)
	LevelVeryHigh                        // 0.8 and above
)

// KeyFactorCount is how many top-ranked features a prediction names as key factors
const KeyFactorCount = 2

// Level grades an output. Lower bounds are inclusive; NaN grades Very Low.
func Level(output float64) PredictionLevel {
	switch {
	case output >= 0.8:
		return LevelVeryHigh
	case output >= 0.6:
		return LevelHigh
	case output >= 0.4:
		return LevelModerate
	case output >= 0.2:
		return LevelLow
	default:
		return LevelVeryLow
	}
}

func (l PredictionLevel) String() string {
	switch l {
	case LevelVeryHigh:
		return "Very High"
	case LevelHigh:
		return "High"
	case LevelModerate:
		return "Moderate"
	case LevelLow:
		return "Low"
	default:
		return "Very Low"
	}
}

func (l PredictionLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *PredictionLevel) UnmarshalText(text []byte) error {
	for c := LevelVeryLow; c <= LevelVeryHigh; c++ {
		if c.String() == string(text) {
			*l = c
			return nil
		}
	}
	return fmt.Errorf("unknown prediction level %q", text)
}

// Level grades the prediction's output
func (p Prediction) Level() PredictionLevel {
	return Level(p.Output())
}

// KeyFactors returns the top KeyFactorCount features of the ranking,
// or fewer when the ranking is shorter.
func (p Prediction) KeyFactors() []FeatureImportance {
	n := KeyFactorCount
	if len(p.Importance) < n {
		n = len(p.Importance)
	}
	out := make([]FeatureImportance, n)
	copy(out, p.Importance[:n])
	return out
}
