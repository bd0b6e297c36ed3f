package ranker

import (
	"github.com/limaJavier/timetable-ranker/internal/progress"
	"github.com/limaJavier/timetable-ranker/pkg/model"
	"go.uber.org/zap"
)

type sequentialRanker struct {
	catalog *model.Catalog
	options Options
}

func NewSequentialRanker(catalog *model.Catalog, options Options) Ranker {
	return &sequentialRanker{
		catalog: catalog,
		options: options,
	}
}

func (ranker *sequentialRanker) Rank(enumerator *Enumerator) []*model.Timetable {
	logger := ranker.options.logger()
	reporter := progress.New(logger, enumerator.Count(), ranker.options.ProgressInterval)

	results := []ranked{}
	sequence := 0
	for courses := range enumerator.Candidates() {
		if timetable := ranker.catalog.NewTimetable(courses); !timetable.Conflict() {
			results = append(results, ranked{sequence: sequence, timetable: timetable})
		}
		sequence++
		reporter.Add(1)
	}
	reporter.Done()

	logger.Info("conflict-free timetables", zap.Int("count", len(results)))
	return rank(results, ranker.options.Limit)
}
