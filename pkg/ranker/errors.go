package ranker

import (
	"fmt"

	"github.com/limaJavier/timetable-ranker/pkg/model"
)

// InsufficientCandidatesError is returned when a tag has fewer codes with offerings left than it requires
type InsufficientCandidatesError struct {
	Tag       string
	Needed    int
	Available int
}

func (err InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("tag \"%v\" needs %v courses but only %v have offerings left", err.Tag, err.Needed, err.Available)
}

func (err InsufficientCandidatesError) Unwrap() error {
	return model.ErrConfiguration
}

// QuotaInfeasibleError is returned when a tag cannot be filled without exceeding a quota
type QuotaInfeasibleError struct {
	Tag       string
	Needed    int
	Reachable int
}

func (err QuotaInfeasibleError) Error() string {
	return fmt.Sprintf("tag \"%v\" needs %v courses but quotas allow at most %v", err.Tag, err.Needed, err.Reachable)
}

func (err QuotaInfeasibleError) Unwrap() error {
	return model.ErrConfiguration
}
