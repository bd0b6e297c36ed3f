package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopularity(t *testing.T) {
	popularity := Popularity{OptimalRatio: DefaultOptimalRatio, Sigma: DefaultSigma}

	assert.InDelta(t, 1.0, popularity.Score(DefaultOptimalRatio), 1e-12)

	// Strictly decreasing as the ratio moves away from the optimum, on both sides
	previousBelow, previousAbove := 1.0, 1.0
	for step := 1; step <= 20; step++ {
		offset := float64(step) * 0.1
		below, above := popularity.Score(DefaultOptimalRatio-offset), popularity.Score(DefaultOptimalRatio+offset)
		assert.Less(t, below, previousBelow)
		assert.Less(t, above, previousAbove)
		assert.InDelta(t, below, above, 1e-9)
		previousBelow, previousAbove = below, above
	}
}

func TestPopularityValidation(t *testing.T) {
	assert.ErrorIs(t, Popularity{OptimalRatio: 1, Sigma: 0}.validate(), ErrConfiguration)
	assert.ErrorIs(t, Popularity{OptimalRatio: 1, Sigma: -1}.validate(), ErrConfiguration)
	assert.NoError(t, Popularity{OptimalRatio: 1, Sigma: 0.1}.validate())
}
