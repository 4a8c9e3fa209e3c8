// Package report turns a prediction into the JSON document and the styled
// terminal text printed by the gridcast CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/openfluke/gridcast/nn"
)

// Report is one prediction run as shown to a user
type Report struct {
	RunID      string                 `json:"run_id"`
	ModelID    string                 `json:"model_id"`
	Scenario   string                 `json:"scenario,omitempty"`
	Reading    nn.WeatherReading      `json:"reading"`
	Inputs     nn.Features            `json:"inputs"`
	Steps      []nn.PropagationStep   `json:"steps"`
	Output     float64                `json:"output"`
	Level      nn.PredictionLevel     `json:"level"`
	KeyFactors []nn.FeatureImportance `json:"key_factors"`
	Importance []nn.FeatureImportance `json:"importance"`
	Blueprint  *nn.ModelTelemetry     `json:"blueprint,omitempty"`
}

// New wraps a prediction in a report with a fresh run id.
// scenario may be empty for ad-hoc readings.
func New(pred nn.Prediction, modelID, scenario string) Report {
	r := Report{
		RunID:      uuid.NewString(),
		ModelID:    modelID,
		Scenario:   scenario,
		Reading:    pred.Reading,
		Inputs:     pred.Inputs,
		Output:     pred.Output(),
		Level:      pred.Level(),
		KeyFactors: pred.KeyFactors(),
		Importance: pred.Importance,
	}
	if pred.Propagation != nil {
		r.Steps = pred.Propagation.Steps
	}
	return r
}

// WriteJSON writes the report as indented JSON
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4FC3F7"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
	outputStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#8BC34A"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB74D"))

	levelColors = map[nn.PredictionLevel]lipgloss.Color{
		nn.LevelVeryHigh: lipgloss.Color("#66BB6A"),
		nn.LevelHigh:     lipgloss.Color("#42A5F5"),
		nn.LevelModerate: lipgloss.Color("#FFEE58"),
		nn.LevelLow:      lipgloss.Color("#FFA726"),
		nn.LevelVeryLow:  lipgloss.Color("#EF5350"),
	}
)

const barWidth = 20

// RenderText renders the report for a terminal. verbose adds every
// source contribution under each calculation.
func RenderText(r Report, verbose bool) string {
	var b strings.Builder

	title := "Renewable generation forecast"
	if r.Scenario != "" {
		title += ": " + r.Scenario
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("run %s · model %s", r.RunID, r.ModelID)) + "\n\n")

	b.WriteString(headingStyle.Render("Inputs") + "\n")
	raw := []string{
		fmt.Sprintf("%.1f °C", r.Reading.Temperature),
		fmt.Sprintf("%.1f %%", r.Reading.Humidity),
		fmt.Sprintf("%.1f m/s", r.Reading.WindSpeed),
		fmt.Sprintf("%.0f W/m²", r.Reading.SolarRadiation),
	}
	for i, name := range nn.FeatureNames {
		fmt.Fprintf(&b, "  %-16s %-12s → %.3f\n", name, raw[i], r.Inputs[i])
	}
	b.WriteString("\n")

	for _, step := range r.Steps {
		b.WriteString(headingStyle.Render(fmt.Sprintf("Step %d", step.Index)) + " " + step.Description + "\n")
		if len(step.Calculations) == 0 {
			ids := make([]string, len(step.ActiveNeurons))
			for i, id := range step.ActiveNeurons {
				ids[i] = id.String()
			}
			b.WriteString(mutedStyle.Render("  active: "+strings.Join(ids, ", ")) + "\n")
		}
		for _, rec := range step.Calculations {
			fmt.Fprintf(&b, "  %-9s %s\n", rec.Neuron, rec.Formula)
			if !verbose {
				continue
			}
			for _, in := range rec.Inputs {
				b.WriteString(mutedStyle.Render(fmt.Sprintf("      %-9s %.4f × %+.2f = %+.4f", in.From, in.Value, in.Weight, in.Value*in.Weight)) + "\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(outputStyle.Render(fmt.Sprintf("Prediction %.4f (%.1f%%)", r.Output, r.Output*100)) + "\n")
	levelStyle := lipgloss.NewStyle().Bold(true).Foreground(levelColors[r.Level])
	b.WriteString("Level: " + levelStyle.Render(r.Level.String()) + "\n")
	if len(r.KeyFactors) > 0 {
		b.WriteString("Key factors:\n")
		for _, f := range r.KeyFactors {
			fmt.Fprintf(&b, "  - %s (%.1f%% importance)\n", f.Feature, f.Importance)
		}
	}
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Feature importance") + "\n")
	for _, f := range r.Importance {
		fmt.Fprintf(&b, "  %-16s %s %6.2f  (%+.4f)\n", f.Feature, barStyle.Render(bar(f.Importance)), f.Importance, f.Contribution)
	}

	return b.String()
}

// bar draws importance in [0,100] as a fixed-width block bar
func bar(importance float64) string {
	filled := int(importance/100*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
