package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const examLayout = "2006-01-02 15:04"

// Chinese weekday names as printed by the registration website, Monday first
var examWeekdays = []string{"一", "二", "三", "四", "五", "六", "日"}

// e.g. "2025-06-13 15:30-17:30 第17周 星期五"
var examPattern = regexp.MustCompile(
	`(\d{4}-\d{2}-\d{2}) (\d{2}:\d{2})-(\d{2}:\d{2}) 第(\d{1,2})周 星期([` + strings.Join(examWeekdays, "") + `])`,
)

// ExamTime is an optional final exam slot. Absent fields hold their zero time or -1.
type ExamTime struct {
	Start   time.Time
	End     time.Time
	Week    int
	Weekday int
}

func NoExam() ExamTime {
	return ExamTime{Week: -1, Weekday: -1}
}

// NewExamTime builds an exam time. A single known endpoint is used for both ends.
func NewExamTime(start, end time.Time, week, weekday int) (ExamTime, error) {
	if week < -1 {
		return ExamTime{}, fmt.Errorf("%w: exam week must be at least 0, got %v", ErrMalformedInput, week)
	}
	if start.IsZero() != end.IsZero() {
		if start.IsZero() {
			start = end
		} else {
			end = start
		}
	}
	if end.Before(start) {
		return ExamTime{}, fmt.Errorf("%w: exam ends (%v) before it starts (%v)", ErrMalformedInput, end, start)
	}
	return ExamTime{Start: start, End: end, Week: week, Weekday: weekday}, nil
}

// ParseExamTime reads the registration website's exam string. The empty string means no exam.
func ParseExamTime(value string) (ExamTime, error) {
	if value == "" {
		return NoExam(), nil
	}

	match := examPattern.FindStringSubmatch(value)
	if match == nil {
		return ExamTime{}, fmt.Errorf("%w: cannot parse exam time \"%v\"", ErrMalformedInput, value)
	}
	date, startClock, endClock, weekStr, weekdayStr := match[1], match[2], match[3], match[4], match[5]

	start, err := time.ParseInLocation(examLayout, date+" "+startClock, time.Local)
	if err != nil {
		return ExamTime{}, fmt.Errorf("%w: exam start of \"%v\": %v", ErrMalformedInput, value, err)
	}
	end, err := time.ParseInLocation(examLayout, date+" "+endClock, time.Local)
	if err != nil {
		return ExamTime{}, fmt.Errorf("%w: exam end of \"%v\": %v", ErrMalformedInput, value, err)
	}
	week, _ := strconv.Atoi(weekStr) // The pattern only lets digits through

	weekday := 0
	for index, name := range examWeekdays {
		if name == weekdayStr {
			weekday = index
		}
	}

	return NewExamTime(start, end, week, weekday)
}

// Scheduled reports whether both ends of the exam are known
func (exam ExamTime) Scheduled() bool {
	return !exam.Start.IsZero() && !exam.End.IsZero()
}

// Conflicts reports whether two scheduled exams overlap. Unscheduled exams never conflict.
func (exam ExamTime) Conflicts(other ExamTime) bool {
	if !exam.Scheduled() || !other.Scheduled() {
		return false
	}
	return exam.Start.Before(other.End) && other.Start.Before(exam.End)
}

func (exam ExamTime) String() string {
	parts := make([]string, 0, 3)
	if exam.Scheduled() {
		parts = append(parts, exam.Start.Format(examLayout)+"-"+exam.End.Format("15:04"))
	}
	if exam.Week >= 0 {
		parts = append(parts, fmt.Sprintf("第%v周", exam.Week))
	}
	if exam.Weekday >= 0 && exam.Weekday < len(examWeekdays) {
		parts = append(parts, "星期"+examWeekdays[exam.Weekday])
	}
	return strings.Join(parts, " ")
}
