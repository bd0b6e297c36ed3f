package ranker

import (
	"time"

	"github.com/limaJavier/timetable-ranker/pkg/model"
	"go.uber.org/zap"
)

type Ranker interface {
	// Returns the conflict-free timetables among the enumerator's candidates, best score first.
	// Equal scores keep their enumeration order.
	Rank(enumerator *Enumerator) []*model.Timetable
}

type Options struct {
	Limit            int // Timetables to keep, 0 keeps all of them
	Workers          int // Only used by the concurrent ranker
	ProgressInterval time.Duration
	Logger           *zap.Logger
}

func (options Options) logger() *zap.Logger {
	if options.Logger == nil {
		return zap.NewNop()
	}
	return options.Logger
}
