package nn

import (
	"errors"
	"fmt"
	"math"
)

// ErrInputValue marks an input vector holding NaN or Inf.
var ErrInputValue = errors.New("input holds a non-finite value")

// Features is a normalized input vector in the fixed order
// temperature, humidity, wind speed, solar radiation.
type Features [InputSize]float64

// FeatureNames are the display names of the four inputs, in Features order
var FeatureNames = [InputSize]string{"Temperature", "Humidity", "Wind Speed", "Solar Radiation"}

// WeatherReading is a raw reading in physical units:
// °C, %, m/s and W/m².
type WeatherReading struct {
	Temperature    float64 `json:"temperature" yaml:"temperature"`
	Humidity       float64 `json:"humidity" yaml:"humidity"`
	WindSpeed      float64 `json:"wind_speed" yaml:"wind_speed"`
	SolarRadiation float64 `json:"solar_radiation" yaml:"solar_radiation"`
}

// Normalize maps a raw reading onto the range the weights expect.
// Temperature spans -20..40°C, wind 0..30 m/s, solar 0..1000 W/m².
// Values outside those spans are passed through unclamped.
func Normalize(r WeatherReading) Features {
	return Features{
		(r.Temperature + 20) / 60,
		r.Humidity / 100,
		r.WindSpeed / 30,
		r.SolarRadiation / 1000,
	}
}

// Validate rejects NaN and Inf entries
func (f Features) Validate() error {
	for i, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s = %v", ErrInputValue, FeatureNames[i], v)
		}
	}
	return nil
}
