package model

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Timetable is a course set scored as a whole. Metrics of a conflicting timetable are left at zero.
type Timetable struct {
	*CourseSet

	grid        []*Session // Flattened weekly grid, see indexer
	probability float64
	courseScore float64
	commuteTime float64
	score       float64
}

func (catalog *Catalog) NewTimetable(courses []*Course) *Timetable {
	timetable := &Timetable{CourseSet: catalog.NewCourseSet(courses)}
	if timetable.Conflict() {
		return timetable
	}

	timetable.grid = timetable.arrange()
	timetable.probability = timetable.computeProbability()
	timetable.courseScore = timetable.computeCourseScore()
	timetable.commuteTime = timetable.simulateCommute()
	timetable.score = timetable.computeScore()
	return timetable
}

// Probability of being admitted to every course
func (timetable *Timetable) Probability() float64 {
	return timetable.probability
}

// CourseScore is the credit-weighted geometric mean of the courses' popularity
func (timetable *Timetable) CourseScore() float64 {
	return timetable.courseScore
}

// CommuteTime is the expected commute in minutes per week
func (timetable *Timetable) CommuteTime() float64 {
	return timetable.commuteTime
}

func (timetable *Timetable) Score() float64 {
	return timetable.score
}

// Grid returns the session taking place at each day and period (0-based), nil for free periods
func (timetable *Timetable) Grid() [][]*Session {
	periods := timetable.catalog.settings.Periods.PerDay()
	grid := make([][]*Session, len(Weekdays))
	for day := range grid {
		grid[day] = make([]*Session, periods)
	}
	for index, session := range timetable.grid {
		day, period := timetable.catalog.indexer.Attributes(uint64(index))
		grid[day][period] = session
	}
	return grid
}

// Later sessions overwrite earlier ones, which only happens for conflicting timetables
func (timetable *Timetable) arrange() []*Session {
	indexer := timetable.catalog.indexer
	grid := make([]*Session, indexer.Slots())
	for _, course := range timetable.courses {
		for _, session := range course.Sessions {
			for period := session.Start; period <= session.End; period++ {
				grid[indexer.Index(uint64(session.Weekday), uint64(period-1))] = session
			}
		}
	}
	return grid
}

func (timetable *Timetable) computeProbability() float64 {
	return lo.Reduce(timetable.courses, func(probability float64, course *Course, _ int) float64 {
		return probability * course.Probability()
	}, 1)
}

func (timetable *Timetable) computeCourseScore() float64 {
	if len(timetable.courses) == 0 {
		return 0
	}

	scores := lo.Map(timetable.courses, func(course *Course, _ int) float64 { return course.Score })
	credits := lo.Map(timetable.courses, func(course *Course, _ int) float64 { return course.Credits })
	if lo.Sum(credits) == 0 {
		credits = nil // Unweighted
	}
	return stat.GeometricMean(scores, credits)
}

func (timetable *Timetable) computeScore() float64 {
	settings := timetable.catalog.settings

	values, weights := []float64{}, []float64{}
	if settings.CommuteWeight > 0 {
		values = append(values, 60/timetable.commuteTime)
		weights = append(weights, settings.CommuteWeight)
	}
	if settings.CourseScoreWeight > 0 {
		values = append(values, timetable.courseScore)
		weights = append(weights, settings.CourseScoreWeight)
	}

	if len(values) == 1 {
		return values[0]
	}
	return stat.GeometricMean(values, weights)
}
