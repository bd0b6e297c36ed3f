package ranker

import (
	"fmt"
	"slices"

	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/samber/lo"
)

// Selection asks for Count courses among Codes
type Selection struct {
	Tag   string
	Count int
	Codes []string
}

// Pool holds the offerings of a course code a student may pick from
type Pool struct {
	Code      string
	Offerings []*model.Course
}

type Tag struct {
	Name  string
	Count int
	Pools []Pool
}

type ClassifyOptions struct {
	FullOK   bool    // Keep offerings that have no seats left
	Selected []int64 // Offerings already taken, they're kept even if they're full
}

// Classify builds the courses of input and groups them into the tags of selections.
// Codes without offerings left are dropped.
func Classify(catalog *model.Catalog, input model.Input, selections []Selection, options ClassifyOptions) ([]Tag, error) {
	catalog.SetCounts(input.Counts)

	requested := make(map[string]bool)
	for _, selection := range selections {
		for _, code := range selection.Codes {
			requested[code] = true
		}
	}

	//** Build courses
	offerings := make(map[string][]*model.Course)
	for _, raw := range input.Courses {
		if !requested[raw.Code] { // Searches by code also return courses whose code merely contains it
			continue
		}
		course, err := catalog.Course(raw)
		if err != nil {
			return nil, err
		}
		if course.Full() && !options.FullOK && !slices.Contains(options.Selected, course.ID) {
			continue
		}
		if slices.ContainsFunc(offerings[course.Code], func(offering *model.Course) bool { return offering == course }) {
			continue // Listed twice
		}
		offerings[course.Code] = append(offerings[course.Code], course)
	}

	//** Group into tags
	tags := make([]Tag, 0, len(selections))
	for _, selection := range selections {
		if selection.Count < 0 {
			return nil, fmt.Errorf("%w: tag \"%v\" requires %v courses", model.ErrConfiguration, selection.Tag, selection.Count)
		}

		tag := Tag{Name: selection.Tag, Count: selection.Count}
		for _, code := range lo.Uniq(selection.Codes) {
			if len(offerings[code]) > 0 {
				tag.Pools = append(tag.Pools, Pool{Code: code, Offerings: offerings[code]})
			}
		}

		if len(tag.Pools) < tag.Count {
			return nil, InsufficientCandidatesError{Tag: tag.Name, Needed: tag.Count, Available: len(tag.Pools)}
		}
		if reachable := reachableCount(catalog, tag); reachable < tag.Count {
			return nil, QuotaInfeasibleError{Tag: tag.Name, Needed: tag.Count, Reachable: reachable}
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// reachableCount bounds how many pools of tag can be taken together without exceeding a quota.
// A pool whose every offering counts toward a quota is bound to it, the first one if several apply.
func reachableCount(catalog *model.Catalog, tag Tag) int {
	quotas := catalog.Quotas()
	bound := make([]int, len(quotas))
	free := 0

	for _, pool := range tag.Pools {
		index := lo.IndexOf(lo.Map(quotas, func(_ model.QuotaRule, quota int) bool {
			return lo.EveryBy(pool.Offerings, func(course *model.Course) bool { return course.MatchesQuota(quota) })
		}), true)
		if index >= 0 {
			bound[index]++
		} else {
			free++
		}
	}

	reachable := free
	for index, count := range bound {
		reachable += min(count, quotas[index].Limit)
	}
	return reachable
}
