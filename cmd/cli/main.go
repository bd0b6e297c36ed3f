package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/limaJavier/timetable-ranker/pkg/config"
	"github.com/limaJavier/timetable-ranker/pkg/geo"
	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/limaJavier/timetable-ranker/pkg/output"
	"github.com/limaJavier/timetable-ranker/pkg/ranker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit code of a ranking without results, read by the benchmark
const exitNoTimetable = 20

var errNoTimetable = errors.New("no conflict-free timetable")

var rankers = map[string]func(*model.Catalog, ranker.Options) ranker.Ranker{
	config.Sequential: ranker.NewSequentialRanker,
	config.Concurrent: ranker.NewConcurrentRanker,
}

type commandFlags struct {
	config   string
	lessons  string
	codes    string
	tags     string
	out      string
	strategy string
	workers  int
	limit    int
	verbose  bool
}

func main() {
	err := newRootCommand().Execute()
	if errors.Is(err, errNoTimetable) {
		os.Exit(exitNoTimetable)
	} else if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var flags commandFlags

	root := &cobra.Command{
		Use:          "timetable-ranker",
		Short:        "Ranks the conflict-free timetables that can be built from a course registration catalog",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.config, "config", "", "Path to the JSON configuration; defaults are used if empty")
	root.PersistentFlags().StringVar(&flags.lessons, "lessons", "lessons.json", "Path to the lessons and enrollment counts")
	root.PersistentFlags().StringVar(&flags.codes, "codes", "course_codes.csv", "Path to the header-less \"code,tag\" file")
	root.PersistentFlags().StringVar(&flags.tags, "tags", "tags.csv", "Path to the header-less \"tag,count\" file")
	root.PersistentFlags().StringVar(&flags.strategy, "strategy", "", fmt.Sprintf("Ranking strategy, either %q or %q", config.Sequential, config.Concurrent))
	root.PersistentFlags().IntVar(&flags.workers, "workers", 0, "Workers used by the concurrent strategy")
	root.PersistentFlags().IntVar(&flags.limit, "limit", 0, "How many timetables to keep, 0 keeps all of them")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log at debug level in a human readable format")

	rank := &cobra.Command{
		Use:   "rank",
		Short: "Ranks timetables and writes the best ones to a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd, flags)
		},
	}
	rank.Flags().StringVar(&flags.out, "out", "result", "Directory the result file is written to, \"-\" writes to the standard output")

	check := &cobra.Command{
		Use:   "check",
		Short: "Validates the inputs and reports how many candidates would be ranked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, flags)
		},
	}

	root.AddCommand(rank, check)
	return root
}

// execution is everything a command needs once the inputs are parsed
type execution struct {
	id         uuid.UUID
	config     config.Config
	logger     *zap.Logger
	catalog    *model.Catalog
	enumerator *ranker.Enumerator
}

func prepare(cmd *cobra.Command, flags commandFlags) (*execution, error) {
	configuration := config.Default()
	if flags.config != "" {
		var err error
		if configuration, err = config.Load(flags.config); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("strategy") {
		configuration.Strategy = flags.strategy
	}
	if cmd.Flags().Changed("workers") {
		configuration.Workers = flags.workers
	}
	if cmd.Flags().Changed("limit") {
		configuration.Limit = flags.limit
	}
	if err := configuration.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	logger, err := newLogger(flags.verbose)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("run", id.String()))

	atlas, err := geo.NewAtlas(configuration.Layout())
	if err != nil {
		return nil, err
	}
	catalog, err := model.NewCatalog(atlas, configuration.Settings(), logger)
	if err != nil {
		return nil, err
	}

	input, err := model.InputFromJson(flags.lessons)
	if err != nil {
		return nil, fmt.Errorf("cannot parse lessons file: %w", err)
	}
	codes, err := config.LoadCodes(flags.codes, configuration.Encoding)
	if err != nil {
		return nil, err
	}
	tagCounts, err := config.LoadTags(flags.tags, configuration.Encoding)
	if err != nil {
		return nil, err
	}
	selections, err := config.Selections(codes, tagCounts)
	if err != nil {
		return nil, err
	}

	tags, err := ranker.Classify(catalog, input, selections, configuration.ClassifyOptions())
	if err != nil {
		return nil, err
	}
	enumerator := ranker.NewEnumerator(catalog, tags)
	logger.Info("candidates enumerated",
		zap.Int("lessons", len(input.Courses)),
		zap.Int("courses", catalog.Courses()),
		zap.Int("tags", len(tags)),
		zap.Int("candidates", enumerator.Count()),
	)

	return &execution{id: id, config: configuration, logger: logger, catalog: catalog, enumerator: enumerator}, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runRank(cmd *cobra.Command, flags commandFlags) error {
	run, err := prepare(cmd, flags)
	if err != nil {
		return err
	}
	defer run.logger.Sync()

	options := run.config.RankerOptions()
	options.Logger = run.logger
	start := time.Now()
	timetables := rankers[run.config.Strategy](run.catalog, options).Rank(run.enumerator)
	run.logger.Info("ranking finished",
		zap.String("strategy", run.config.Strategy),
		zap.Int("timetables", len(timetables)),
		zap.Duration("elapsed", time.Since(start)),
	)
	if len(timetables) == 0 {
		return errNoTimetable
	}

	if flags.out == "-" {
		return writeResult(os.Stdout, run.config, timetables)
	}

	if err := os.MkdirAll(flags.out, 0o755); err != nil {
		return err
	}
	path := filepath.Join(flags.out, output.FileName(time.Now(), run.id))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := writeResult(file, run.config, timetables); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "The best %v timetables were written to %v\n", len(timetables), path)
	return nil
}

func writeResult(file *os.File, configuration config.Config, timetables []*model.Timetable) error {
	writer := config.Writer(file, configuration.Encoding)
	if err := output.WriteCSV(writer, timetables, configuration.PeriodTimes); err != nil {
		return err
	}
	return writer.Close()
}

func runCheck(cmd *cobra.Command, flags commandFlags) error {
	run, err := prepare(cmd, flags)
	if err != nil {
		return err
	}
	defer run.logger.Sync()

	out := cmd.OutOrStdout()
	for index, tag := range run.enumerator.Tags() {
		fmt.Fprintf(out, "%v: %v of %v codes, %v conflict-free groups\n", tag.Name, tag.Count, len(tag.Pools), len(run.enumerator.Groups(index)))
	}
	fmt.Fprintf(out, "%v candidates\n", run.enumerator.Count())
	return nil
}
