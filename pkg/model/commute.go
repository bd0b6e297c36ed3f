package model

import "github.com/limaJavier/timetable-ranker/pkg/geo"

// simulateCommute walks every day of the week: from the dormitory to breakfast, through every
// occupied period, to the nearest hall after the last morning and afternoon periods, and back.
func (timetable *Timetable) simulateCommute() float64 {
	catalog := timetable.catalog
	periods := catalog.settings.Periods
	lunch, dinner := periods.Morning, periods.Morning+periods.Afternoon

	total := 0.0
	for day := range Weekdays {
		var last geo.Locator = catalog.dormitory
		hall := catalog.dormitory.NearestHall()

		// Breakfast
		total += geo.CommuteTime(last, hall)
		last = hall

		for period := 1; period <= periods.PerDay(); period++ {
			if session := timetable.grid[catalog.indexer.Index(uint64(day), uint64(period-1))]; session != nil {
				total += geo.CommuteTime(last, session)
				if !session.Remote() {
					hall = session.NearestHall()
				}
				last = session
			}

			if period == lunch || period == dinner {
				total += geo.CommuteTime(last, hall)
				last = hall
			}
		}

		total += geo.CommuteTime(last, catalog.dormitory)
	}
	return total
}
