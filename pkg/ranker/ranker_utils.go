package ranker

import (
	"cmp"
	"slices"

	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/samber/lo"
)

// ranked is a scored timetable along with its position in the enumeration
type ranked struct {
	sequence  int
	timetable *model.Timetable
}

// rank sorts by score, highest first, then by enumeration order, and keeps the best limit ones
func rank(results []ranked, limit int) []*model.Timetable {
	slices.SortFunc(results, func(a, b ranked) int {
		if byScore := cmp.Compare(b.timetable.Score(), a.timetable.Score()); byScore != 0 {
			return byScore
		}
		return cmp.Compare(a.sequence, b.sequence)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return lo.Map(results, func(result ranked, _ int) *model.Timetable { return result.timetable })
}
