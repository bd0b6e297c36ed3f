package ranker

import (
	"runtime"
	"sync"

	"github.com/limaJavier/timetable-ranker/internal/progress"
	"github.com/limaJavier/timetable-ranker/pkg/model"
	"go.uber.org/zap"
)

type concurrentRanker struct {
	catalog *model.Catalog
	options Options
}

func NewConcurrentRanker(catalog *model.Catalog, options Options) Ranker {
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}
	return &concurrentRanker{
		catalog: catalog,
		options: options,
	}
}

type candidate struct {
	sequence int
	courses  []*model.Course
}

func (ranker *concurrentRanker) Rank(enumerator *Enumerator) []*model.Timetable {
	logger := ranker.options.logger()
	reporter := progress.New(logger, enumerator.Count(), ranker.options.ProgressInterval)

	candidatesChannel := make(chan candidate, ranker.options.Workers)
	resultsChannel := make(chan ranked, ranker.options.Workers)

	// Enumerate on a single goroutine so that sequence numbers follow the enumeration order
	go func() {
		sequence := 0
		for courses := range enumerator.Candidates() {
			candidatesChannel <- candidate{sequence: sequence, courses: courses}
			sequence++
		}
		close(candidatesChannel)
	}()

	// Build and score timetables on different goroutines
	var wait sync.WaitGroup
	for range ranker.options.Workers {
		wait.Add(1)
		go func() {
			defer wait.Done()
			for candidate := range candidatesChannel {
				if timetable := ranker.catalog.NewTimetable(candidate.courses); !timetable.Conflict() {
					resultsChannel <- ranked{sequence: candidate.sequence, timetable: timetable}
				}
				reporter.Add(1)
			}
		}()
	}

	go func() {
		wait.Wait()
		close(resultsChannel)
	}()

	// Collect results
	results := []ranked{}
	for result := range resultsChannel {
		results = append(results, result)
	}
	reporter.Done()

	logger.Info("conflict-free timetables", zap.Int("count", len(results)), zap.Int("workers", ranker.options.Workers))
	return rank(results, ranker.options.Limit)
}
