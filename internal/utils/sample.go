package utils

import (
	"fmt"
	"math/rand"

	"github.com/labelworks/annoqueue/internal/common"
)

// Sample draws n items from population without replacement using reservoir
// sampling, so callers can pass large slices without caring about their
// order. Returns ErrSamplingImpossible when n exceeds the population.
func Sample[T any](population []T, n int) ([]T, error) {
	if n < 0 || n > len(population) {
		return nil, fmt.Errorf("want %d of %d: %w", n, len(population), common.ErrSamplingImpossible)
	}

	results := make([]T, n)
	copy(results, population[:n])
	rand.Shuffle(n, func(i, j int) {
		results[i], results[j] = results[j], results[i]
	})

	// Replace reservoir entries at a decreasing rate.
	for i := n; i < len(population); i++ {
		r := rand.Intn(i + 1)
		if r < n {
			results[r] = population[i]
		}
	}

	return results, nil
}
