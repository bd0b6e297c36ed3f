package model

import "fmt"

// Course is a single offering (section) of a course. Sections of the same course share Code.
type Course struct {
	ID       int64
	Code     string
	Number   string // e.g. "MATH120017.06"
	Name     string
	Teachers string
	Credits  float64
	Sessions []*Session
	Exam     ExamTime
	Enrolled int
	Capacity int
	Score    float64 // Popularity

	quotaMatches []bool // quotaMatches[i] is set if Number matches the catalog's i-th quota
}

// Probability of getting a seat: a full offering is modeled as one open slot for Enrolled+1 competitors
func (course *Course) Probability() float64 {
	if course.Enrolled < course.Capacity {
		return 1
	}
	return float64(course.Capacity) / float64(course.Enrolled+1)
}

func (course *Course) Full() bool {
	return course.Enrolled >= course.Capacity
}

func (course *Course) Ratio() float64 {
	return float64(course.Enrolled) / float64(course.Capacity)
}

// MatchesQuota reports whether the course counts toward the catalog's index-th quota
func (course *Course) MatchesQuota(index int) bool {
	return course.quotaMatches[index]
}

func (course *Course) String() string {
	return fmt.Sprintf("[%v]%v", course.Number, course.Name)
}
