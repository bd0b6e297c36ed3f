package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseSetQuota(t *testing.T) {
	// Arrange
	catalog := testCatalog(t, testSettings()) // "^X" at most once
	x1 := mustCourse(t, catalog, rawCourse(1, "X1.01", rawSession(1, 1, 2, "A1201")), 1, 10)
	x2 := mustCourse(t, catalog, rawCourse(2, "X2.01", rawSession(2, 1, 2, "A1201")), 1, 10)
	y := mustCourse(t, catalog, rawCourse(3, "Y1.01", rawSession(3, 1, 2, "A1201")), 1, 10)

	// Act
	single := catalog.NewCourseSet([]*Course{x1, y})
	double := catalog.NewCourseSet([]*Course{x1, y, x2})

	// Assert
	assert.False(t, single.Conflict())
	assert.Equal(t, []int{1}, single.QuotaCounts())
	assert.True(t, double.Conflict())
	assert.Equal(t, []int{2}, double.QuotaCounts())
}

func TestCourseSetConflicts(t *testing.T) {
	catalog := testCatalog(t, testSettings())
	monday := mustCourse(t, catalog, rawCourse(1, "A1.01", rawSession(1, 1, 3, "A1201")), 1, 10)
	mondayOverlap := mustCourse(t, catalog, rawCourse(2, "A2.01", rawSession(1, 3, 4, "A1301")), 1, 10)
	tuesday := mustCourse(t, catalog, rawCourse(3, "A3.01", rawSession(2, 1, 3, "A1201")), 1, 10)
	otherSection := mustCourse(t, catalog, rawCourse(4, "A3.02", rawSession(4, 1, 3, "A1201")), 1, 10)

	t.Run("Overlapping sessions", func(t *testing.T) {
		assert.True(t, catalog.NewCourseSet([]*Course{monday, mondayOverlap}).Conflict())
		assert.True(t, catalog.Conflicts(mondayOverlap, monday))
	})

	t.Run("Sections of the same course", func(t *testing.T) {
		assert.True(t, catalog.NewCourseSet([]*Course{tuesday, otherSection}).Conflict())
	})

	t.Run("Compatible courses", func(t *testing.T) {
		assert.False(t, catalog.NewCourseSet([]*Course{monday, tuesday}).Conflict())
		assert.False(t, catalog.Conflicts(monday, monday))
	})

	t.Run("Incremental append matches bulk evaluation", func(t *testing.T) {
		set := catalog.NewCourseSet(nil)
		assert.False(t, set.Append(monday))
		assert.False(t, set.Append(tuesday))
		assert.True(t, set.Append(mondayOverlap))
		assert.Equal(t, 3, set.Len())
		assert.Equal(t, catalog.NewCourseSet(set.Courses()).Conflict(), set.Conflict())
	})
}

func TestExamConflictMakesCoursesIncompatible(t *testing.T) {
	catalog := testCatalog(t, testSettings())
	first := rawCourse(1, "A1.01", rawSession(1, 1, 2, "A1201"))
	first.ExamTime = "2025-06-12 08:30-10:30 第17周 星期四"
	second := rawCourse(2, "A2.01", rawSession(2, 1, 2, "A1201"))
	second.ExamTime = "2025-06-12 09:30-11:30 第17周 星期四"

	a, b := mustCourse(t, catalog, first, 1, 10), mustCourse(t, catalog, second, 1, 10)

	assert.True(t, catalog.Conflicts(a, b))
	assert.True(t, catalog.Conflicts(b, a))
}
