package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/limaJavier/timetable-ranker/pkg/geo"
	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/limaJavier/timetable-ranker/pkg/ranker"
	"github.com/mitchellh/mapstructure"
)

const (
	Sequential = "sequential"
	Concurrent = "concurrent"
)

// Config holds every knob of a run. Files only need to set what differs from Default.
type Config struct {
	Periods           model.Periods     `mapstructure:"periods"`
	PeriodTimes       []string          `mapstructure:"periodTimes"` // Labels of each period, e.g. "8:00-8:45"
	ExamWindow        model.ExamWindow  `mapstructure:"examWindow"`
	Quotas            []model.QuotaRule `mapstructure:"quotas" validate:"dive"`
	OptimalRatio      float64           `mapstructure:"optimalRatio" validate:"gt=0"`
	Sigma             float64           `mapstructure:"sigma" validate:"gt=0"`
	CommuteWeight     float64           `mapstructure:"commuteWeight" validate:"gte=0"`
	CourseScoreWeight float64           `mapstructure:"courseScoreWeight" validate:"gte=0"`
	Dormitory         string            `mapstructure:"dormitory" validate:"required"`
	Limit             int               `mapstructure:"limit" validate:"gte=0"`
	FullOK            bool              `mapstructure:"fullOK"`
	Selected          []int64           `mapstructure:"selected"` // Ids of the offerings already taken
	Strategy          string            `mapstructure:"strategy" validate:"oneof=sequential concurrent"`
	Workers           int               `mapstructure:"workers" validate:"gte=0"`
	ProgressInterval  int               `mapstructure:"progressInterval" validate:"gte=0"` // Seconds
	Encoding          string            `mapstructure:"encoding" validate:"oneof=utf-8 gbk"`
	Geography         *geo.Layout       `mapstructure:"geography"` // Defaults to geo.DefaultLayout
}

func Default() Config {
	settings := model.DefaultSettings()
	return Config{
		Periods: settings.Periods,
		PeriodTimes: []string{
			"8:00-8:45", "8:55-9:40", "9:55-10:40", "10:50-11:35", "11:45-12:30",
			"13:30-14:15", "14:25-15:10", "15:25-16:10", "16:20-17:05", "17:15-18:00",
			"18:30-19:15", "19:25-20:10", "20:20-21:05", "21:15-22:00",
		},
		ExamWindow:        settings.ExamWindow,
		Quotas:            settings.Quotas,
		OptimalRatio:      settings.Popularity.OptimalRatio,
		Sigma:             settings.Popularity.Sigma,
		CommuteWeight:     settings.CommuteWeight,
		CourseScoreWeight: settings.CourseScoreWeight,
		Dormitory:         settings.Dormitory,
		Limit:             10,
		Strategy:          Sequential,
		Workers:           runtime.NumCPU(),
		ProgressInterval:  10,
		Encoding:          UTF8,
	}
}

// Load overlays the JSON file at path on Default and validates the result
func Load(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Config{}, fmt.Errorf("%w: %v: %v", model.ErrConfiguration, path, err)
	}

	config := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &config,
		ZeroFields:  true, // Lists in the file replace the default ones instead of being merged
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(configJson); err != nil {
		return Config{}, fmt.Errorf("%w: %v: %v", model.ErrConfiguration, path, err)
	}

	return config, config.Validate()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterStructValidation(func(level validator.StructLevel) {
		config := level.Current().Interface().(Config)
		if config.CommuteWeight == 0 && config.CourseScoreWeight == 0 {
			level.ReportError(config.CourseScoreWeight, "CourseScoreWeight", "courseScoreWeight", "weights", "")
		}
		if len(config.PeriodTimes) != 0 && len(config.PeriodTimes) != config.Periods.PerDay() {
			level.ReportError(config.PeriodTimes, "PeriodTimes", "periodTimes", "periods", "")
		}
	}, Config{})
	return validate
}

func (config Config) Validate() error {
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", model.ErrConfiguration, err)
	}
	return nil
}

func (config Config) Settings() model.Settings {
	return model.Settings{
		Periods:           config.Periods,
		ExamWindow:        config.ExamWindow,
		Quotas:            config.Quotas,
		Popularity:        model.Popularity{OptimalRatio: config.OptimalRatio, Sigma: config.Sigma},
		CommuteWeight:     config.CommuteWeight,
		CourseScoreWeight: config.CourseScoreWeight,
		Dormitory:         config.Dormitory,
	}
}

func (config Config) Layout() geo.Layout {
	if config.Geography == nil {
		return geo.DefaultLayout()
	}
	return *config.Geography
}

func (config Config) ClassifyOptions() ranker.ClassifyOptions {
	return ranker.ClassifyOptions{FullOK: config.FullOK, Selected: config.Selected}
}

func (config Config) RankerOptions() ranker.Options {
	return ranker.Options{
		Limit:            config.Limit,
		Workers:          config.Workers,
		ProgressInterval: time.Duration(config.ProgressInterval) * time.Second,
	}
}
