package uncertainty

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/internal/common"
)

func TestLeastConfident(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
		want  float64
	}{
		{name: "two classes", probs: []float64{0.7, 0.3}, want: 0.3},
		{name: "three classes", probs: []float64{0.7, 0.2, 0.1}, want: 0.3},
		{name: "max not first", probs: []float64{0.1, 0.8, 0.1}, want: 0.2},
		{name: "certain", probs: []float64{1.0, 0.0}, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LeastConfident(tt.probs)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMargin(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
		want  float64
	}{
		{name: "wide gap", probs: []float64{0.9, 0.1}, want: 0.8},
		{name: "three classes", probs: []float64{0.7, 0.2, 0.1}, want: 0.5},
		{name: "tie", probs: []float64{0.5, 0.5}, want: 0.0},
		{name: "unsorted input", probs: []float64{0.1, 0.2, 0.7}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Margin(tt.probs)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMargin_NeedsTwoClasses(t *testing.T) {
	_, err := Margin([]float64{1.0})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
		want  float64
	}{
		{name: "uniform binary", probs: []float64{0.5, 0.5}, want: math.Log10(2)},
		{name: "certain", probs: []float64{1.0, 0.0}, want: 0.0},
		{name: "zero terms skipped", probs: []float64{0.5, 0.5, 0.0, 0.0}, want: math.Log10(2)},
		{name: "uniform ternary", probs: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, want: math.Log10(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Entropy(tt.probs)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestScore(t *testing.T) {
	m, err := Score([]float64{0.7, 0.2, 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, m.LeastConfident, 1e-9)
	assert.InDelta(t, 0.5, m.Margin, 1e-9)

	want := -(0.7*math.Log10(0.7) + 0.2*math.Log10(0.2) + 0.1*math.Log10(0.1))
	assert.InDelta(t, want, m.Entropy, 1e-9)
}

func TestScore_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
	}{
		{name: "empty", probs: nil},
		{name: "single class", probs: []float64{1.0}},
		{name: "negative", probs: []float64{0.5, -0.5}},
		{name: "nan", probs: []float64{math.NaN(), 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Score(tt.probs)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}
