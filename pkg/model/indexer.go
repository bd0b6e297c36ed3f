package model

// indexer interface is designed to give a unique index to a (day, period) slot of the weekly grid and vice versa
type indexer interface {
	// Returns a unique index to a slot, period is 0-based
	Index(day, period uint64) uint64
	// Returns the slot of a unique index
	Attributes(index uint64) (day uint64, period uint64)
	// Returns how many slots the grid has
	Slots() uint64
}

func newIndexer(days, periods uint64) indexer {
	return &indexerImplementation{
		days:    days,
		periods: periods,
	}
}
