package model

import (
	"math"
	"testing"

	"github.com/limaJavier/timetable-ranker/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimetableMetrics(t *testing.T) {
	// Arrange
	catalog := testCatalog(t, testSettings())
	a := mustCourse(t, catalog, rawCourse(1, "A1.01", rawSession(1, 1, 2, "A1201")), 10, 20)
	b := mustCourse(t, catalog, rawCourse(2, "A2.01", rawSession(2, 6, 7, "A2301")), 35, 35)
	b.Credits = 4

	// Act
	timetable := catalog.NewTimetable([]*Course{a, b})

	// Assert
	require.False(t, timetable.Conflict())
	assert.InDelta(t, 35.0/36, timetable.Probability(), 1e-12)
	expectedScore := math.Exp((2*math.Log(a.Score) + 4*math.Log(b.Score)) / 6)
	assert.InDelta(t, expectedScore, timetable.CourseScore(), 1e-12)
	assert.Greater(t, timetable.CommuteTime(), 0.0)
}

func TestCompositeScoreWithCourseWeightOnly(t *testing.T) {
	catalog := testCatalog(t, testSettings()) // Weights (0, 1)
	a := mustCourse(t, catalog, rawCourse(1, "A1.01", rawSession(1, 1, 2, "A1201")), 10, 20)
	b := mustCourse(t, catalog, rawCourse(2, "A2.01", rawSession(3, 6, 7, "B1101")), 3, 70)

	timetable := catalog.NewTimetable([]*Course{a, b})

	assert.Equal(t, timetable.CourseScore(), timetable.Score())
}

func TestCompositeScoreBlendsCommute(t *testing.T) {
	settings := testSettings()
	settings.CommuteWeight, settings.CourseScoreWeight = 1, 1
	catalog := testCatalog(t, settings)
	a := mustCourse(t, catalog, rawCourse(1, "A1.01", rawSession(1, 1, 2, "A1201")), 10, 20)

	timetable := catalog.NewTimetable([]*Course{a})

	expected := math.Sqrt(60 / timetable.CommuteTime() * timetable.CourseScore())
	assert.InDelta(t, expected, timetable.Score(), 1e-9)
}

func TestAllRemoteCommute(t *testing.T) {
	// Arrange
	catalog := testCatalog(t, testSettings())
	course := mustCourse(t, catalog, rawCourse(1, "A1.01",
		rawSession(1, 1, 2, RemoteRooms), // Monday morning
		rawSession(3, 7, 7, RemoteRooms), // Wednesday afternoon
	), 10, 20)
	dormitory := catalog.Dormitory()
	breakfast := geo.CommuteTime(dormitory, dormitory.NearestHall())

	// Act
	timetable := catalog.NewTimetable([]*Course{course})

	// Assert
	// Every day starts and ends with the dormitory to hall trip, the rest is remote transitions:
	// Monday: hall -> 1 -> 2 -> lunch, Wednesday: lunch hall -> 7 -> dinner
	remote := 3*geo.RemoteTransition + 2*geo.RemoteTransition
	assert.InDelta(t, 7*2*breakfast+remote, timetable.CommuteTime(), 1e-9)
}

func TestCommuteSimulation(t *testing.T) {
	// Arrange
	catalog := testCatalog(t, testSettings())
	morning := mustCourse(t, catalog, rawCourse(1, "A1.01", rawSession(1, 2, 3, "A1201")), 10, 20)
	afternoon := mustCourse(t, catalog, rawCourse(2, "B1.01", rawSession(1, 6, 6, "B1301")), 10, 20)
	dormitory := catalog.Dormitory()
	hallA, _ := catalog.Atlas().Building("AH")
	hallB, _ := catalog.Atlas().Building("BH")
	roomA, _ := catalog.Atlas().Room("A1201")
	roomB, _ := catalog.Atlas().Room("B1301")

	// Act
	timetable := catalog.NewTimetable([]*Course{morning, afternoon})

	// Assert
	idle := 2 * geo.CommuteTime(dormitory, hallA)
	monday := geo.CommuteTime(dormitory, hallA) +
		geo.CommuteTime(hallA, roomA) + // Period 2, period 3 stays in the room
		geo.CommuteTime(roomA, hallA) + // Lunch
		geo.CommuteTime(hallA, roomB) + // Period 6
		geo.CommuteTime(roomB, hallB) + // Dinner near the last classroom
		geo.CommuteTime(hallB, dormitory)
	assert.InDelta(t, 6*idle+monday, timetable.CommuteTime(), 1e-9)
}

func TestConflictingTimetableIsNotScored(t *testing.T) {
	catalog := testCatalog(t, testSettings())
	a := mustCourse(t, catalog, rawCourse(1, "A1.01", rawSession(1, 1, 2, "A1201")), 10, 20)
	b := mustCourse(t, catalog, rawCourse(2, "A2.01", rawSession(1, 2, 3, "A1201")), 10, 20)

	timetable := catalog.NewTimetable([]*Course{a, b})

	assert.True(t, timetable.Conflict())
	assert.Zero(t, timetable.Score())
	assert.Zero(t, timetable.CommuteTime())
}

func TestTimetableGrid(t *testing.T) {
	catalog := testCatalog(t, testSettings())
	course := mustCourse(t, catalog, rawCourse(1, "A1.01",
		rawSession(2, 3, 4, "A1201"),
		rawSession(7, 14, 14, RemoteRooms),
	), 10, 20)

	grid := catalog.NewTimetable([]*Course{course}).Grid()

	require.Len(t, grid, 7)
	require.Len(t, grid[0], 14)
	assert.Same(t, course.Sessions[0], grid[1][2])
	assert.Same(t, course.Sessions[0], grid[1][3])
	assert.Nil(t, grid[1][4])
	assert.Same(t, course.Sessions[1], grid[6][13])
}
