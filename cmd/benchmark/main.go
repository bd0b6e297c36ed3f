package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/timetable-ranker/pkg/config"
	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/samber/lo"
)

const (
	executablePath = "../../bin/timetable-ranker"
	casesDirectory = "../../example/"
	resultsFile    = "benchmark_results.csv"
)

type ResultType int

const (
	ranked ResultType = iota
	noTimetable
)

var resultTypes = map[ResultType]string{
	ranked:      "ranked",
	noTimetable: "no-timetable",
}

// A case is a directory holding config.json, lessons.json, course_codes.csv and tags.csv
type CaseMetadata struct {
	Name    string
	Lessons int
	Tags    int
}

type StrategyMetadata struct {
	Strategy string
	Workers  int
}

type BenchmarkResult struct {
	Strategy      string  `csv:"Strategy"`
	Workers       int     `csv:"Workers"`
	Case          string  `csv:"Case"`
	Lessons       int     `csv:"Lessons"`
	Tags          int     `csv:"Tags"`
	Duration      int64   `csv:"Duration(ms)"`
	Memory        float32 `csv:"Memory(MB)"`
	CpuPercentage int64   `csv:"CPU(%)"`
	Result        string  `csv:"Result"`
}

func main() {
	cases := getCases()
	strategies := getStrategies()
	results := make([]BenchmarkResult, 0, len(cases)*len(strategies))

	for _, test := range cases {
		for _, strategy := range strategies {
			fmt.Printf("Benchmarking case \"%v\" with strategy \"%v\" and %v workers\n", test.Name, strategy.Strategy, strategy.Workers)

			duration, maxMemory, cpuPercentage, result := measure(strategy, test.Name)

			results = append(results, BenchmarkResult{
				Strategy:      strategy.Strategy,
				Workers:       strategy.Workers,
				Case:          test.Name,
				Lessons:       test.Lessons,
				Tags:          test.Tags,
				Duration:      duration,
				Memory:        maxMemory,
				CpuPercentage: cpuPercentage,
				Result:        resultTypes[result],
			})
		}
	}

	toCsv(results)
}

func getCases() []CaseMetadata {
	entries, err := os.ReadDir(casesDirectory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	cases := make([]CaseMetadata, 0)
	for _, entry := range lo.Filter(entries, func(entry os.DirEntry, _ int) bool { return entry.IsDir() }) {
		directory := filepath.Join(casesDirectory, entry.Name())
		input, err := model.InputFromJson(filepath.Join(directory, "lessons.json"))
		if err != nil {
			log.Fatalf("cannot parse lessons file: %v", err)
		}
		configuration, err := config.Load(filepath.Join(directory, "config.json"))
		if err != nil {
			log.Fatalf("cannot load configuration: %v", err)
		}
		tags, err := config.LoadTags(filepath.Join(directory, "tags.csv"), configuration.Encoding)
		if err != nil {
			log.Fatalf("cannot parse tags file: %v", err)
		}

		cases = append(cases, CaseMetadata{
			Name:    directory,
			Lessons: len(input.Courses),
			Tags:    len(tags),
		})
	}

	return cases
}

func getStrategies() []StrategyMetadata {
	return []StrategyMetadata{
		{Strategy: config.Sequential, Workers: 1},
		{Strategy: config.Concurrent, Workers: 2},
		{Strategy: config.Concurrent, Workers: 4},
		{Strategy: config.Concurrent, Workers: 8},
	}
}

func measure(strategy StrategyMetadata, directory string) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType) {
	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "rank",
		"--strategy", strategy.Strategy,
		"--workers", fmt.Sprint(strategy.Workers),
		"--config", filepath.Join(directory, "config.json"),
		"--lessons", filepath.Join(directory, "lessons.json"),
		"--codes", filepath.Join(directory, "course_codes.csv"),
		"--tags", filepath.Join(directory, "tags.csv"),
		"--out", os.TempDir(),
	)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	if cmd.ProcessState.ExitCode() != 0 && cmd.ProcessState.ExitCode() != 20 {
		log.Fatalf("an error occurred during the execution of \"timetable-ranker\" at case \"%v\" using strategy \"%v\" and %v workers: %v\n", directory, strategy.Strategy, strategy.Workers, stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		result = noTimetable
	} else {
		result = ranked
	}
	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		log.Panicf("cannot write CSV records: %v", err)
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / 1024
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
