package model

type indexerImplementation struct {
	days    uint64
	periods uint64
}

func (indexer *indexerImplementation) Index(day, period uint64) uint64 {
	return period + indexer.periods*day
}

func (indexer *indexerImplementation) Attributes(index uint64) (day, period uint64) {
	period = index % indexer.periods
	day = index / indexer.periods
	return day, period
}

func (indexer *indexerImplementation) Slots() uint64 {
	return indexer.days * indexer.periods
}
