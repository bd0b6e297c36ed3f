package model

import "sync"

type conflictEvaluatorMemoized struct {
	evaluator conflictEvaluator

	mutex sync.RWMutex
	memo  map[[2]int64]bool // Keyed by (smaller id, larger id)
}

func (evaluator *conflictEvaluatorMemoized) Conflicts(course1, course2 *Course) bool {
	key := [2]int64{min(course1.ID, course2.ID), max(course1.ID, course2.ID)}

	evaluator.mutex.RLock()
	conflicts, ok := evaluator.memo[key]
	evaluator.mutex.RUnlock()
	if ok {
		return conflicts
	}

	conflicts = evaluator.evaluator.Conflicts(course1, course2)

	evaluator.mutex.Lock()
	evaluator.memo[key] = conflicts
	evaluator.mutex.Unlock()
	return conflicts
}
