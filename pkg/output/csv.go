package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/samber/lo"
)

type summary struct {
	Rank        int    `csv:"Rank"`
	CommuteTime string `csv:"Commute (min/week)"`
	CourseScore string `csv:"Course score"`
	Score       string `csv:"Score"`
	Probability string `csv:"Admission probability"`
}

type row struct {
	Period    int    `csv:"Period"`
	Time      string `csv:"Time"`
	Monday    string `csv:"Monday"`
	Tuesday   string `csv:"Tuesday"`
	Wednesday string `csv:"Wednesday"`
	Thursday  string `csv:"Thursday"`
	Friday    string `csv:"Friday"`
	Saturday  string `csv:"Saturday"`
	Sunday    string `csv:"Sunday"`
}

// WriteCSV writes one block per timetable, in the order given: a summary record, the weekly grid
// and an empty line. periodTimes labels the grid rows and may be shorter than a day.
func WriteCSV(out io.Writer, timetables []*model.Timetable, periodTimes []string) error {
	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(out))

	for index, timetable := range timetables {
		summaries := []summary{{
			Rank:        index + 1,
			CommuteTime: strconv.FormatFloat(timetable.CommuteTime(), 'f', 0, 64),
			CourseScore: strconv.FormatFloat(timetable.CourseScore(), 'f', 3, 64),
			Score:       strconv.FormatFloat(timetable.Score(), 'f', 3, 64),
			Probability: strconv.FormatFloat(timetable.Probability(), 'f', 3, 64),
		}}
		if err := gocsv.MarshalCSV(summaries, writer); err != nil {
			return err
		}
		if err := gocsv.MarshalCSV(rows(timetable, periodTimes), writer); err != nil {
			return err
		}
		if err := writer.Write(nil); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func rows(timetable *model.Timetable, periodTimes []string) []row {
	grid := timetable.Grid()
	cell := func(day, period int) string {
		session := grid[day][period]
		if session == nil {
			return ""
		}
		return fmt.Sprintf("%v[%v]", session.Course(), session.RoomsString())
	}

	rows := make([]row, 0, len(grid[0]))
	for period := range grid[0] {
		label, _ := lo.Nth(periodTimes, period)
		rows = append(rows, row{
			Period:    period + 1,
			Time:      label,
			Monday:    cell(0, period),
			Tuesday:   cell(1, period),
			Wednesday: cell(2, period),
			Thursday:  cell(3, period),
			Friday:    cell(4, period),
			Saturday:  cell(5, period),
			Sunday:    cell(6, period),
		})
	}
	return rows
}

// FileName names the result file of a run
func FileName(now time.Time, runID uuid.UUID) string {
	return fmt.Sprintf("%v_%v.csv", now.Format("20060102-150405"), runID.String()[:8])
}
