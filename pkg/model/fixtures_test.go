package model

import (
	"strings"
	"testing"

	"github.com/limaJavier/timetable-ranker/pkg/geo"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const allWeeks = "01111111111111111"

func testAtlas(t *testing.T) *geo.Atlas {
	atlas, err := geo.NewAtlas(geo.Layout{
		Campuses: []geo.CampusSpec{{Code: "A"}, {Code: "B"}},
		Shuttles: []geo.ShuttleSpec{
			{From: "A", To: "B", Minutes: 17},
			{From: "B", To: "A", Minutes: 14},
		},
		Buildings: []geo.BuildingSpec{
			{Code: "AH", Kind: "hall", Campus: "A", Longitude: 121.5, Latitude: 31.3},
			{Code: "AD", Kind: "dormitory", Campus: "A", Longitude: 121.5005, Latitude: 31.3},
			{Code: "A1", Kind: "teaching", Campus: "A", Longitude: 121.5, Latitude: 31.3005},
			{Code: "A2", Kind: "teaching", Campus: "A", Longitude: 121.5, Latitude: 31.31},
			{Code: "BH", Kind: "hall", Campus: "B", Longitude: 121.6, Latitude: 31.2},
			{Code: "B1", Kind: "teaching", Campus: "B", Longitude: 121.6, Latitude: 31.2001},
		},
	})
	require.NoError(t, err)
	return atlas
}

func testSettings() Settings {
	settings := DefaultSettings()
	settings.Dormitory = "AD101"
	settings.Quotas = []QuotaRule{{Pattern: "^X", Limit: 1}}
	return settings
}

func testCatalog(t *testing.T, settings Settings) *Catalog {
	catalog, err := NewCatalog(testAtlas(t), settings, zap.NewNop())
	require.NoError(t, err)
	return catalog
}

func rawSession(weekday, start, end int, rooms string) RawSession {
	return RawSession{
		Weekday:     weekday,
		StartUnit:   start,
		EndUnit:     end,
		WeekState:   allWeeks,
		WeeksDigest: "1-16",
		Rooms:       rooms,
	}
}

func rawCourse(id int64, number string, sessions ...RawSession) RawCourse {
	return RawCourse{
		Id:       id,
		Code:     strings.Split(number, ".")[0],
		Number:   number,
		Name:     "Course " + number,
		Credits:  2,
		Sessions: sessions,
	}
}

// mustCourse registers counts for raw and builds it
func mustCourse(t *testing.T, catalog *Catalog, raw RawCourse, enrolled, capacity int) *Course {
	catalog.SetCounts(map[int64]Counts{raw.Id: {Enrolled: enrolled, Capacity: capacity}})
	course, err := catalog.Course(raw)
	require.NoError(t, err)
	return course
}
