package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelworks/annoqueue/internal/common"
)

func TestSample(t *testing.T) {
	population := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got, err := Sample(population, 4)
	require.NoError(t, err)
	require.Len(t, got, 4)

	seen := make(map[int]struct{})
	for _, v := range got {
		assert.Contains(t, population, v)
		_, dup := seen[v]
		assert.False(t, dup, "sampled %d twice", v)
		seen[v] = struct{}{}
	}
}

func TestSample_WholePopulation(t *testing.T) {
	population := []string{"a", "b", "c"}
	got, err := Sample(population, 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, population, got)
}

func TestSample_Empty(t *testing.T) {
	got, err := Sample([]int{}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSample_Impossible(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{name: "more than population", n: 3},
		{name: "negative", n: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sample([]int{1, 2}, tt.n)
			assert.ErrorIs(t, err, common.ErrSamplingImpossible)
		})
	}
}
