package model

// CourseSet is an ordered selection of courses along with whether it can be taken as a whole
type CourseSet struct {
	catalog     *Catalog
	courses     []*Course
	quotaCounts []int
	conflict    bool
}

// NewCourseSet evaluates courses as a whole: every pair and every quota
func (catalog *Catalog) NewCourseSet(courses []*Course) *CourseSet {
	set := &CourseSet{
		catalog:     catalog,
		courses:     make([]*Course, 0, len(courses)),
		quotaCounts: make([]int, len(catalog.quotas)),
	}
	for _, course := range courses {
		set.Append(course)
	}
	return set
}

// Append adds course to the set, comparing it only against the courses already in it.
// Returns whether the set is in conflict afterwards.
func (set *CourseSet) Append(course *Course) bool {
	if !set.conflict {
		for _, member := range set.courses {
			if set.catalog.Conflicts(member, course) {
				set.conflict = true
				break
			}
		}
	}

	for index := range set.quotaCounts {
		if course.MatchesQuota(index) {
			set.quotaCounts[index]++
			if set.quotaCounts[index] > set.catalog.quotas[index].rule.Limit {
				set.conflict = true
			}
		}
	}

	set.courses = append(set.courses, course)
	return set.conflict
}

func (set *CourseSet) Courses() []*Course {
	return set.courses
}

func (set *CourseSet) Len() int {
	return len(set.courses)
}

// Conflict reports whether two members overlap, share a code, or a quota is exceeded
func (set *CourseSet) Conflict() bool {
	return set.conflict
}

// QuotaCounts returns how many members count toward each of the catalog's quotas
func (set *CourseSet) QuotaCounts() []int {
	return set.quotaCounts
}
