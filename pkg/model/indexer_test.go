package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexer(t *testing.T) {
	indexer := newIndexer(7, 14)
	assert.Equal(t, uint64(98), indexer.Slots())

	seen := make(map[uint64]bool)
	for day := range uint64(7) {
		for period := range uint64(14) {
			index := indexer.Index(day, period)
			assert.Less(t, index, indexer.Slots())
			assert.False(t, seen[index])
			seen[index] = true

			gotDay, gotPeriod := indexer.Attributes(index)
			assert.Equal(t, day, gotDay)
			assert.Equal(t, period, gotPeriod)
		}
	}
}
