package ranker

import (
	"strings"
	"testing"

	"github.com/limaJavier/timetable-ranker/pkg/geo"
	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T, quotas ...model.QuotaRule) *model.Catalog {
	atlas, err := geo.NewAtlas(geo.Layout{
		Campuses: []geo.CampusSpec{{Code: "A"}},
		Buildings: []geo.BuildingSpec{
			{Code: "AH", Kind: "hall", Campus: "A", Longitude: 121.5, Latitude: 31.3},
			{Code: "AD", Kind: "dormitory", Campus: "A", Longitude: 121.5005, Latitude: 31.3},
			{Code: "A1", Kind: "teaching", Campus: "A", Longitude: 121.5, Latitude: 31.302},
		},
	})
	require.NoError(t, err)

	settings := model.DefaultSettings()
	settings.Dormitory = "AD101"
	settings.Quotas = quotas
	catalog, err := model.NewCatalog(atlas, settings, nil)
	require.NoError(t, err)
	return catalog
}

// lesson describes a single-session offering, on Monday unless weekday says otherwise
type lesson struct {
	id         int64
	number     string
	weekday    int
	start, end int
	enrolled   int
	capacity   int
}

func (lesson lesson) raw() model.RawCourse {
	return model.RawCourse{
		Id:      lesson.id,
		Code:    strings.Split(lesson.number, ".")[0],
		Number:  lesson.number,
		Name:    lesson.number,
		Credits: 2,
		Sessions: []model.RawSession{{
			Weekday:   max(lesson.weekday, 1),
			StartUnit: lesson.start,
			EndUnit:   lesson.end,
			WeekState: "01111111111111111",
			Rooms:     "A1201",
		}},
	}
}

func testInput(lessons ...lesson) model.Input {
	input := model.Input{Counts: make(map[int64]model.Counts)}
	for _, lesson := range lessons {
		input.Courses = append(input.Courses, lesson.raw())
		capacity := lesson.capacity
		if capacity == 0 {
			capacity = 100
		}
		input.Counts[lesson.id] = model.Counts{Enrolled: lesson.enrolled, Capacity: capacity}
	}
	return input
}

func classify(t *testing.T, catalog *model.Catalog, input model.Input, selections ...Selection) []Tag {
	tags, err := Classify(catalog, input, selections, ClassifyOptions{})
	require.NoError(t, err)
	return tags
}

func numbers(courses []*model.Course) []string {
	result := make([]string, len(courses))
	for i, course := range courses {
		result[i] = course.Number
	}
	return result
}
