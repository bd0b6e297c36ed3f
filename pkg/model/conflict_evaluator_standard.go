package model

type conflictEvaluatorStandard struct{}

func (conflictEvaluatorStandard) Conflicts(course1, course2 *Course) bool {
	if course1 == course2 {
		return false
	} else if course1.Code == course2.Code { // Only one section of a course can be taken
		return true
	} else if course1.Exam.Conflicts(course2.Exam) {
		return true
	}

	for _, session1 := range course1.Sessions {
		for _, session2 := range course2.Sessions {
			if session1.Conflicts(session2) {
				return true
			}
		}
	}
	return false
}
