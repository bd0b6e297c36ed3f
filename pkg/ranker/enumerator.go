package ranker

import (
	"iter"

	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/samber/lo"
)

// Enumerator expands tags into complete course selections in three levels:
// the code combinations of each tag, the conflict-free offering groups of each combination,
// and the cross product of every tag's groups.
type Enumerator struct {
	tags   []Tag
	groups [][][]*model.Course // Conflict-free groups per tag
}

func NewEnumerator(catalog *model.Catalog, tags []Tag) *Enumerator {
	generator := newCombinationsGenerator()
	enumerator := &Enumerator{
		tags:   tags,
		groups: make([][][]*model.Course, len(tags)),
	}

	for index, tag := range tags {
		groups := [][]*model.Course{}

		for _, combination := range generator.Combinations(len(tag.Pools), tag.Count) {
			pools := lo.Map(combination, func(pool int, _ int) Pool { return tag.Pools[pool] })
			domains := lo.Map(pools, func(pool Pool, _ int) int { return len(pool.Offerings) })
			courses := func(tuple []int) []*model.Course {
				return lo.Map(tuple, func(offering int, position int) *model.Course { return pools[position].Offerings[offering] })
			}

			tuples := generator.ConstrainedProduct(domains, []func(prefix []int) bool{
				func(prefix []int) bool {
					return !catalog.NewCourseSet(courses(prefix)).Conflict()
				},
			})
			for _, tuple := range tuples {
				groups = append(groups, courses(tuple))
			}
		}

		enumerator.groups[index] = groups
	}

	return enumerator
}

func (enumerator *Enumerator) Tags() []Tag {
	return enumerator.tags
}

// Groups returns the conflict-free offering groups of the index-th tag
func (enumerator *Enumerator) Groups(index int) [][]*model.Course {
	return enumerator.groups[index]
}

// Count returns how many candidates Candidates yields
func (enumerator *Enumerator) Count() int {
	if len(enumerator.groups) == 0 {
		return 0
	}
	return lo.Reduce(enumerator.groups, func(count int, groups [][]*model.Course, _ int) int {
		return count * len(groups)
	}, 1)
}

// Candidates yields one group of every tag, concatenated in tag order, with the last tag varying fastest.
// Groups of different tags are not checked against each other.
func (enumerator *Enumerator) Candidates() iter.Seq[[]*model.Course] {
	return func(yield func([]*model.Course) bool) {
		if len(enumerator.groups) == 0 || lo.SomeBy(enumerator.groups, func(groups [][]*model.Course) bool { return len(groups) == 0 }) {
			return
		}

		indices := make([]int, len(enumerator.groups))
		for {
			candidate := []*model.Course{}
			for tag, index := range indices {
				candidate = append(candidate, enumerator.groups[tag][index]...)
			}
			if !yield(candidate) {
				return
			}

			tag := len(indices) - 1
			for ; tag >= 0; tag-- {
				if indices[tag]++; indices[tag] < len(enumerator.groups[tag]) {
					break
				}
				indices[tag] = 0
			}
			if tag < 0 {
				return
			}
		}
	}
}
