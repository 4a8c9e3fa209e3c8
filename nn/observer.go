package nn

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// StepObserver receives the steps of a finished forward pass.
type StepObserver interface {
	OnStep(step PropagationStep)
}

// Replay hands every step of p to each observer in step-index order.
// Timing (staged reveal, animation) is the caller's business.
func Replay(p *Propagation, observers ...StepObserver) {
	if p == nil {
		return
	}
	for _, step := range p.Steps {
		for _, obs := range observers {
			if obs != nil {
				obs.OnStep(step)
			}
		}
	}
}

// StepStats summarizes the outputs computed in one step
type StepStats struct {
	AvgOutput     float64 `json:"avg_output"`
	MaxOutput     float64 `json:"max_output"`
	MinOutput     float64 `json:"min_output"`
	ActiveNeurons int     `json:"active_neurons"`
	Calculations  int     `json:"calculations"`
}

// ComputeStepStats calculates summary statistics for a step's calculation outputs
func ComputeStepStats(step PropagationStep) StepStats {
	stats := StepStats{
		ActiveNeurons: len(step.ActiveNeurons),
		Calculations:  len(step.Calculations),
	}
	if len(step.Calculations) == 0 {
		return stats
	}

	sum := 0.0
	stats.MaxOutput = step.Calculations[0].Output
	stats.MinOutput = step.Calculations[0].Output
	for _, rec := range step.Calculations {
		sum += rec.Output
		if rec.Output > stats.MaxOutput {
			stats.MaxOutput = rec.Output
		}
		if rec.Output < stats.MinOutput {
			stats.MinOutput = rec.Output
		}
	}
	stats.AvgOutput = sum / float64(len(step.Calculations))
	return stats
}

// =============================================================================
// Observer Implementations
// =============================================================================

// ConsoleObserver prints each step to Out
type ConsoleObserver struct {
	Out     io.Writer
	Verbose bool // If true, print every contribution of every calculation
}

func (o *ConsoleObserver) OnStep(step PropagationStep) {
	fmt.Fprintf(o.Out, "[STEP %d] %s\n", step.Index, step.Description)
	for _, rec := range step.Calculations {
		fmt.Fprintf(o.Out, "  %-9s %s\n", rec.Neuron, rec.Formula)
		if !o.Verbose {
			continue
		}
		for _, in := range rec.Inputs {
			fmt.Fprintf(o.Out, "      %-9s %.4f × %+.2f = %+.4f\n", in.From, in.Value, in.Weight, in.Value*in.Weight)
		}
	}
}

// LogObserver writes one structured entry per step, plus one debug entry per calculation
type LogObserver struct {
	Logger *zap.Logger
}

func (o *LogObserver) OnStep(step PropagationStep) {
	if o.Logger == nil {
		return
	}
	stats := ComputeStepStats(step)
	o.Logger.Info("propagation step",
		zap.Int("step", step.Index),
		zap.String("description", step.Description),
		zap.Int("active_neurons", stats.ActiveNeurons),
		zap.Int("active_connections", len(step.ActiveConnections)),
		zap.Int("calculations", stats.Calculations),
		zap.Float64("avg_output", stats.AvgOutput),
		zap.Float64("max_output", stats.MaxOutput),
	)
	for _, rec := range step.Calculations {
		o.Logger.Debug("neuron calculation",
			zap.Int("step", step.Index),
			zap.Stringer("neuron", rec.Neuron),
			zap.Float64("weighted_sum", rec.WeightedSum),
			zap.Float64("bias", rec.Bias),
			zap.Float64("output", rec.Output),
			zap.String("formula", rec.Formula),
		)
	}
}

// RecordingObserver keeps every step it sees, in order
type RecordingObserver struct {
	Steps []PropagationStep
}

func (o *RecordingObserver) OnStep(step PropagationStep) {
	o.Steps = append(o.Steps, step)
}
