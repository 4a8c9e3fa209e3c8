package nn

import "math"

// maxAbsDiff calculates the maximum absolute difference between two slices
func maxAbsDiff(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	m := 0.0
	for i := 0; i < n; i++ {
		d := math.Abs(a[i] - b[i])
		if d > m {
			m = d
		}
	}
	return m
}

// hiddenOutputs extracts the hidden layer values of a result, in index order
func hiddenOutputs(p *Propagation) []float64 {
	out := make([]float64, 0, HiddenSize)
	for _, n := range p.Neurons {
		if n.ID.Layer == LayerHidden {
			out = append(out, n.Value)
		}
	}
	return out
}
