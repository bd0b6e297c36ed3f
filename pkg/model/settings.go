package model

import "fmt"

// Periods holds how many class periods each part of the day has
type Periods struct {
	Morning   int `mapstructure:"morning" validate:"gte=0"`
	Afternoon int `mapstructure:"afternoon" validate:"gte=0"`
	Evening   int `mapstructure:"evening" validate:"gte=0"`
}

func (periods Periods) PerDay() int {
	return periods.Morning + periods.Afternoon + periods.Evening
}

// ExamWindow is the range of semester weeks final exams usually take place in
type ExamWindow struct {
	Start int `mapstructure:"start" validate:"gte=0"`
	End   int `mapstructure:"end" validate:"gtefield=Start"`
}

func (window ExamWindow) Contains(week int) bool {
	return window.Start <= week && week <= window.End
}

// Settings are the parameters courses and timetables are built and scored with
type Settings struct {
	Periods           Periods
	ExamWindow        ExamWindow
	Quotas            []QuotaRule
	Popularity        Popularity
	CommuteWeight     float64
	CourseScoreWeight float64
	Dormitory         string // Room code the daily itinerary starts and ends at
}

func DefaultSettings() Settings {
	return Settings{
		Periods:           Periods{Morning: 5, Afternoon: 5, Evening: 4},
		ExamWindow:        ExamWindow{Start: 15, End: 18},
		Quotas:            DefaultQuotas,
		Popularity:        Popularity{OptimalRatio: DefaultOptimalRatio, Sigma: DefaultSigma},
		CommuteWeight:     0,
		CourseScoreWeight: 1,
		Dormitory:         "H南区9301",
	}
}

func (settings Settings) validate() error {
	if err := settings.Popularity.validate(); err != nil {
		return err
	} else if settings.Periods.PerDay() == 0 {
		return fmt.Errorf("%w: a day needs at least one period", ErrConfiguration)
	} else if settings.CommuteWeight < 0 || settings.CourseScoreWeight < 0 {
		return fmt.Errorf("%w: score weights must be non-negative", ErrConfiguration)
	} else if settings.CommuteWeight == 0 && settings.CourseScoreWeight == 0 {
		return fmt.Errorf("%w: commute and course score weights cannot both be zero", ErrConfiguration)
	}
	return nil
}
