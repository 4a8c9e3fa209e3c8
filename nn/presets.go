package nn

import (
	"errors"
	"strings"
)

// ErrUnknownPreset is returned when a scenario name matches no preset
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named reference scenario
type Preset struct {
	Name            string         `json:"name" yaml:"name"`
	Description     string         `json:"description" yaml:"description"`
	Reading         WeatherReading `json:"data" yaml:"data"`
	ExpectedOutcome string         `json:"expected_outcome" yaml:"expected_outcome"`
}

var presets = []Preset{
	{
		Name:            "Sunny Summer Day",
		Description:     "High temperature, low humidity, moderate wind, high solar radiation",
		Reading:         WeatherReading{Temperature: 32, Humidity: 35, WindSpeed: 12, SolarRadiation: 950},
		ExpectedOutcome: "High renewable energy generation expected",
	},
	{
		Name:            "Windy Winter Day",
		Description:     "Low temperature, high humidity, strong wind, low solar radiation",
		Reading:         WeatherReading{Temperature: 5, Humidity: 85, WindSpeed: 25, SolarRadiation: 200},
		ExpectedOutcome: "Moderate energy generation, primarily from wind",
	},
	{
		Name:            "Cloudy Spring Day",
		Description:     "Moderate temperature, moderate humidity, light wind, medium solar radiation",
		Reading:         WeatherReading{Temperature: 18, Humidity: 60, WindSpeed: 8, SolarRadiation: 500},
		ExpectedOutcome: "Balanced but moderate energy generation",
	},
	{
		Name:            "Calm Night",
		Description:     "Cool temperature, high humidity, no wind, no solar radiation",
		Reading:         WeatherReading{Temperature: 12, Humidity: 90, WindSpeed: 2, SolarRadiation: 0},
		ExpectedOutcome: "Very low renewable energy generation",
	},
	{
		Name:            "Perfect Conditions",
		Description:     "Optimal temperature, low humidity, good wind, maximum solar radiation",
		Reading:         WeatherReading{Temperature: 25, Humidity: 40, WindSpeed: 15, SolarRadiation: 1000},
		ExpectedOutcome: "Maximum renewable energy generation",
	},
}

// Presets returns a copy of the built-in scenarios
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// FindPreset looks a scenario up by name, ignoring case and surrounding space
func FindPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
