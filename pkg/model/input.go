package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Rooms value of sessions that take place online
const RemoteRooms = "在线教学"

type RawSession struct {
	Weekday     int    `mapstructure:"weekDay"` // 1 is Monday
	StartUnit   int    `mapstructure:"startUnit"`
	EndUnit     int    `mapstructure:"endUnit"`
	WeekState   string `mapstructure:"weekState"` // weekState[n] == '1' means there's class on week n
	WeeksDigest string `mapstructure:"weekStateDigest"`
	Rooms       string `mapstructure:"rooms"` // Comma separated room codes or RemoteRooms
}

type RawCourse struct {
	Id       int64        `mapstructure:"id"`
	Code     string       `mapstructure:"code"`
	Number   string       `mapstructure:"no"`
	Name     string       `mapstructure:"name"`
	Teachers string       `mapstructure:"teachers"`
	Credits  float64      `mapstructure:"credits"`
	ExamTime string       `mapstructure:"examTime"`
	Sessions []RawSession `mapstructure:"arrangeInfo"`
}

type Counts struct {
	Enrolled int `mapstructure:"sc"`
	Capacity int `mapstructure:"lc"`
}

type RawInput struct {
	Lessons []RawCourse       `mapstructure:"lessons"`
	Counts  map[string]Counts `mapstructure:"counts"`
}

type Input struct {
	Courses []RawCourse
	Counts  map[int64]Counts
}

// InputFromJson reads the lessons and enrollment counts collected from the registration website
func InputFromJson(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input{}, err
	}

	var rawInput RawInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return Input{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawInput) (Input, error) {
	input := Input{
		Courses: rawInput.Lessons,
		Counts:  make(map[int64]Counts, len(rawInput.Counts)),
	}

	for key, counts := range rawInput.Counts {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return Input{}, fmt.Errorf("%w: counts key \"%v\" is not a course id", ErrMalformedInput, key)
		}
		input.Counts[id] = counts
	}

	return input, nil
}
