// Package uncertainty computes per-item uncertainty metrics from the
// class probability vector a trained model predicts for an item. Higher
// least-confident and entropy values and lower margin values mean the
// model is less sure, so those items are worth labeling first.
package uncertainty

import (
	"fmt"
	"math"
	"sort"

	"github.com/labelworks/annoqueue/internal/common"
)

// Metrics bundles the three uncertainty measures for one item.
type Metrics struct {
	LeastConfident float64
	Margin         float64
	Entropy        float64
}

// LeastConfident is 1 minus the highest class probability.
func LeastConfident(probs []float64) (float64, error) {
	if err := checkProbs(probs, 1); err != nil {
		return 0, err
	}
	max := probs[0]
	for _, p := range probs[1:] {
		if p > max {
			max = p
		}
	}
	return 1 - max, nil
}

// Margin is the gap between the two highest class probabilities.
// It needs at least two classes.
func Margin(probs []float64) (float64, error) {
	if err := checkProbs(probs, 2); err != nil {
		return 0, err
	}
	sorted := make([]float64, len(probs))
	copy(sorted, probs)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	return sorted[0] - sorted[1], nil
}

// Entropy is the base-10 Shannon entropy of the probability vector.
// Zero probabilities contribute nothing.
func Entropy(probs []float64) (float64, error) {
	if err := checkProbs(probs, 1); err != nil {
		return 0, err
	}
	var h float64
	for _, p := range probs {
		if p == 0 {
			continue
		}
		h -= p * math.Log10(p)
	}
	return h, nil
}

// Score computes all three metrics for one probability vector.
func Score(probs []float64) (Metrics, error) {
	lc, err := LeastConfident(probs)
	if err != nil {
		return Metrics{}, err
	}
	margin, err := Margin(probs)
	if err != nil {
		return Metrics{}, err
	}
	entropy, err := Entropy(probs)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{LeastConfident: lc, Margin: margin, Entropy: entropy}, nil
}

func checkProbs(probs []float64, minLen int) error {
	if len(probs) < minLen {
		return fmt.Errorf("need at least %d class probabilities, got %d: %w", minLen, len(probs), common.ErrInvalidInput)
	}
	for _, p := range probs {
		if math.IsNaN(p) || p < 0 {
			return fmt.Errorf("probability %v out of range: %w", p, common.ErrInvalidInput)
		}
	}
	return nil
}
