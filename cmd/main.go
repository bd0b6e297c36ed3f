package main

import (
	"fmt"
	"log"

	"github.com/limaJavier/timetable-ranker/pkg/config"
	"github.com/limaJavier/timetable-ranker/pkg/geo"
	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/limaJavier/timetable-ranker/pkg/ranker"
	"go.uber.org/zap"
)

const Directory string = "../example/fudan/"

func main() {
	logger := zap.Must(zap.NewDevelopment())
	defer logger.Sync()

	configuration, err := config.Load(Directory + "config.json")
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	atlas, err := geo.NewAtlas(configuration.Layout())
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := model.NewCatalog(atlas, configuration.Settings(), logger)
	if err != nil {
		log.Fatal(err)
	}

	input, err := model.InputFromJson(Directory + "lessons.json")
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	codes, err := config.LoadCodes(Directory+"course_codes.csv", configuration.Encoding)
	if err != nil {
		log.Fatal(err)
	}
	tagCounts, err := config.LoadTags(Directory+"tags.csv", configuration.Encoding)
	if err != nil {
		log.Fatal(err)
	}
	selections, err := config.Selections(codes, tagCounts)
	if err != nil {
		log.Fatal(err)
	}
	tags, err := ranker.Classify(catalog, input, selections, configuration.ClassifyOptions())
	if err != nil {
		log.Fatal(err)
	}

	options := configuration.RankerOptions()
	options.Logger = logger
	// rank := ranker.NewSequentialRanker(catalog, options)
	rank := ranker.NewConcurrentRanker(catalog, options)
	timetables := rank.Rank(ranker.NewEnumerator(catalog, tags))
	if len(timetables) == 0 {
		fmt.Println("No conflict-free timetable")
		return
	}

	for index, timetable := range timetables {
		fmt.Printf("#%v score: %.3f, course score: %.3f, commute: %.0f min, probability: %.3f\n",
			index+1, timetable.Score(), timetable.CourseScore(), timetable.CommuteTime(), timetable.Probability())
		for day, sessions := range timetable.Grid() {
			for period, session := range sessions {
				if session == nil || (period > 0 && sessions[period-1] == session) {
					continue
				}
				fmt.Printf("\t%v %v-%v %v %v\n", model.Weekdays[day], session.Start, session.End, session.Course(), session.RoomsString())
			}
		}
	}
}
