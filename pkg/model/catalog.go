package model

import (
	"fmt"
	"strings"

	"github.com/limaJavier/timetable-ranker/pkg/geo"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Catalog builds and owns the courses of a run and the pairwise conflict cache between them.
// Courses must be built before ranking starts: Course and SetCounts are not safe for concurrent use,
// everything else is.
type Catalog struct {
	atlas     *geo.Atlas
	settings  Settings
	quotas    []quota
	dormitory *geo.Room
	indexer   indexer
	evaluator conflictEvaluator
	logger    *zap.Logger

	counts  map[int64]Counts
	courses map[int64]*Course
}

func NewCatalog(atlas *geo.Atlas, settings Settings, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}

	quotas, err := compileQuotas(settings.Quotas)
	if err != nil {
		return nil, err
	}
	dormitory, err := atlas.Room(settings.Dormitory)
	if err != nil {
		return nil, fmt.Errorf("%w: dormitory: %v", ErrConfiguration, err)
	}

	return &Catalog{
		atlas:     atlas,
		settings:  settings,
		quotas:    quotas,
		dormitory: dormitory,
		indexer:   newIndexer(uint64(len(Weekdays)), uint64(settings.Periods.PerDay())),
		evaluator: newConflictEvaluator(),
		logger:    logger,
		counts:    make(map[int64]Counts),
		courses:   make(map[int64]*Course),
	}, nil
}

func (catalog *Catalog) Settings() Settings {
	return catalog.settings
}

func (catalog *Catalog) Atlas() *geo.Atlas {
	return catalog.atlas
}

func (catalog *Catalog) Dormitory() *geo.Room {
	return catalog.dormitory
}

// SetCounts merges enrollment counts into the catalog. Counts of a course must be set before it's built.
func (catalog *Catalog) SetCounts(counts map[int64]Counts) {
	for id, count := range counts {
		catalog.counts[id] = count
	}
}

// Course returns the course built from raw, building it the first time its id is seen
func (catalog *Catalog) Course(raw RawCourse) (*Course, error) {
	if course, ok := catalog.courses[raw.Id]; ok {
		return course, nil
	}

	counts, ok := catalog.counts[raw.Id]
	if !ok {
		return nil, fmt.Errorf("%w: no enrollment counts for course %v (%v)", ErrMalformedInput, raw.Id, raw.Number)
	} else if counts.Capacity <= 0 {
		return nil, fmt.Errorf("%w: course %v (%v) has capacity %v", ErrMalformedInput, raw.Id, raw.Number, counts.Capacity)
	}

	exam, err := ParseExamTime(raw.ExamTime)
	if err != nil {
		return nil, fmt.Errorf("course %v: %w", raw.Number, err)
	}
	if exam.Week >= 0 && !catalog.settings.ExamWindow.Contains(exam.Week) {
		catalog.logger.Warn("exam outside the usual window",
			zap.String("course", raw.Number),
			zap.Int("week", exam.Week),
			zap.Int("windowStart", catalog.settings.ExamWindow.Start),
			zap.Int("windowEnd", catalog.settings.ExamWindow.End),
		)
	}

	course := &Course{
		ID:       raw.Id,
		Code:     raw.Code,
		Number:   raw.Number,
		Name:     raw.Name,
		Teachers: raw.Teachers,
		Credits:  raw.Credits,
		Exam:     exam,
		Enrolled: counts.Enrolled,
		Capacity: counts.Capacity,
		Sessions: make([]*Session, 0, len(raw.Sessions)),
	}

	for _, rawSession := range raw.Sessions {
		session, err := catalog.session(rawSession)
		if err != nil {
			return nil, fmt.Errorf("course %v: %w", raw.Number, err)
		}
		course.Sessions = append(course.Sessions, session)
	}
	for _, session := range course.Sessions {
		session.course = course
	}

	course.Score = catalog.settings.Popularity.Score(course.Ratio())
	course.quotaMatches = lo.Map(catalog.quotas, func(quota quota, _ int) bool { return quota.Matches(course.Number) })

	catalog.courses[raw.Id] = course
	return course, nil
}

func (catalog *Catalog) session(raw RawSession) (*Session, error) {
	weeks, err := ParseWeeks(raw.WeekState)
	if err != nil {
		return nil, err
	}

	var rooms []*geo.Room
	if raw.Rooms != RemoteRooms {
		for _, code := range strings.Split(raw.Rooms, ",") {
			room, err := catalog.atlas.Room(strings.TrimSpace(code))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
			}
			rooms = append(rooms, room)
		}
	}

	return NewSession(raw.Weekday-1, raw.StartUnit, raw.EndUnit, catalog.settings.Periods.PerDay(), weeks, raw.WeeksDigest, rooms)
}

// Courses returns how many courses have been built
func (catalog *Catalog) Courses() int {
	return len(catalog.courses)
}

// Conflicts reports whether course1 and course2 cannot be taken together. Results are cached per pair.
func (catalog *Catalog) Conflicts(course1, course2 *Course) bool {
	return catalog.evaluator.Conflicts(course1, course2)
}

// Quotas returns the quota rules courses are counted against, in the order of their counts
func (catalog *Catalog) Quotas() []QuotaRule {
	return lo.Map(catalog.quotas, func(quota quota, _ int) QuotaRule { return quota.rule })
}
