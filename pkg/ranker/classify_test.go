package ranker

import (
	"errors"
	"testing"

	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	input := testInput(
		lesson{id: 1, number: "A.01", start: 1, end: 2, enrolled: 10, capacity: 20},
		lesson{id: 2, number: "A.02", start: 3, end: 4, enrolled: 20, capacity: 20}, // Full
		lesson{id: 3, number: "B.01", start: 6, end: 7, enrolled: 25, capacity: 20}, // Full
		lesson{id: 4, number: "AB.01", start: 8, end: 9},                            // Not requested
	)
	selections := []Selection{
		{Tag: "Core", Count: 1, Codes: []string{"A", "B"}},
	}

	t.Run("Full offerings are dropped", func(t *testing.T) {
		// Act
		tags, err := Classify(testCatalog(t), input, selections, ClassifyOptions{})

		// Assert
		require.NoError(t, err)
		require.Len(t, tags, 1)
		require.Len(t, tags[0].Pools, 1) // B has no offering left
		assert.Equal(t, "A", tags[0].Pools[0].Code)
		assert.Equal(t, []string{"A.01"}, numbers(tags[0].Pools[0].Offerings))
	})

	t.Run("Full offerings are kept when asked to", func(t *testing.T) {
		tags, err := Classify(testCatalog(t), input, selections, ClassifyOptions{FullOK: true})

		require.NoError(t, err)
		require.Len(t, tags[0].Pools, 2)
		assert.Equal(t, []string{"A.01", "A.02"}, numbers(tags[0].Pools[0].Offerings))
		assert.Equal(t, []string{"B.01"}, numbers(tags[0].Pools[1].Offerings))
	})

	t.Run("Selected offerings are kept", func(t *testing.T) {
		tags, err := Classify(testCatalog(t), input, selections, ClassifyOptions{Selected: []int64{3}})

		require.NoError(t, err)
		require.Len(t, tags[0].Pools, 2)
		assert.Equal(t, []string{"B.01"}, numbers(tags[0].Pools[1].Offerings))
	})
}

func TestClassifyInsufficientCandidates(t *testing.T) {
	input := testInput(
		lesson{id: 1, number: "A.01", start: 1, end: 2},
		lesson{id: 2, number: "B.01", start: 3, end: 4, enrolled: 30, capacity: 20},
	)

	_, err := Classify(testCatalog(t), input, []Selection{
		{Tag: "Core", Count: 2, Codes: []string{"A", "B"}},
	}, ClassifyOptions{})

	var insufficient InsufficientCandidatesError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, InsufficientCandidatesError{Tag: "Core", Needed: 2, Available: 1}, insufficient)
	assert.ErrorIs(t, err, model.ErrConfiguration)
}

func TestClassifyQuotaInfeasible(t *testing.T) {
	input := testInput(
		lesson{id: 1, number: "X1.01", start: 1, end: 2},
		lesson{id: 2, number: "X2.01", start: 3, end: 4},
		lesson{id: 3, number: "Y1.01", start: 6, end: 7},
	)
	catalog := testCatalog(t, model.QuotaRule{Pattern: "^X", Limit: 1})

	t.Run("Infeasible", func(t *testing.T) {
		_, err := Classify(catalog, input, []Selection{
			{Tag: "Writing", Count: 2, Codes: []string{"X1", "X2"}},
		}, ClassifyOptions{})

		var infeasible QuotaInfeasibleError
		require.True(t, errors.As(err, &infeasible))
		assert.Equal(t, 1, infeasible.Reachable)
		assert.ErrorIs(t, err, model.ErrConfiguration)
	})

	t.Run("Feasible with a free code", func(t *testing.T) {
		_, err := Classify(catalog, input, []Selection{
			{Tag: "Mixed", Count: 2, Codes: []string{"X1", "X2", "Y1"}},
		}, ClassifyOptions{})

		assert.NoError(t, err)
	})
}

func TestClassifyMalformedCourse(t *testing.T) {
	input := testInput(lesson{id: 1, number: "A.01", start: 4, end: 2})

	_, err := Classify(testCatalog(t), input, []Selection{{Tag: "Core", Count: 1, Codes: []string{"A"}}}, ClassifyOptions{})

	assert.ErrorIs(t, err, model.ErrMalformedInput)
}
