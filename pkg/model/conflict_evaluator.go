package model

type conflictEvaluator interface {
	// Checks whether course1 and course2 cannot be taken together (i.e. they overlap or are sections of the same course)
	Conflicts(course1, course2 *Course) bool
}

func newConflictEvaluator() conflictEvaluator {
	return &conflictEvaluatorMemoized{
		evaluator: conflictEvaluatorStandard{},
		memo:      make(map[[2]int64]bool),
	}
}
