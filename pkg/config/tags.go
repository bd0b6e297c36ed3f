package config

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/timetable-ranker/pkg/model"
	"github.com/limaJavier/timetable-ranker/pkg/ranker"
	"github.com/samber/lo"
)

// CourseCode assigns a course code to a tag, one per row of the codes file
type CourseCode struct {
	Code string `csv:"code"`
	Tag  string `csv:"tag"`
}

// TagCount is how many courses of a tag must be taken, one per row of the tags file
type TagCount struct {
	Tag   string `csv:"tag"`
	Count int    `csv:"count"`
}

// LoadCodes reads a header-less "code,tag" CSV file
func LoadCodes(path, encoding string) ([]CourseCode, error) {
	codes := []CourseCode{}
	if err := loadCsv(path, encoding, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// LoadTags reads a header-less "tag,count" CSV file
func LoadTags(path, encoding string) ([]TagCount, error) {
	tags := []TagCount{}
	if err := loadCsv(path, encoding, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func loadCsv(path, encoding string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.UnmarshalWithoutHeaders(Reader(file, encoding), out); err != nil {
		return fmt.Errorf("%w: %v: %v", model.ErrConfiguration, path, err)
	}
	return nil
}

// Selections groups codes under their tags, in the order tags are listed.
// Codes of tags that aren't listed are ignored.
func Selections(codes []CourseCode, tags []TagCount) ([]ranker.Selection, error) {
	byTag := lo.GroupBy(codes, func(code CourseCode) string { return code.Tag })

	if duplicates := lo.FindDuplicates(lo.Map(tags, func(tag TagCount, _ int) string { return tag.Tag })); len(duplicates) > 0 {
		return nil, fmt.Errorf("%w: tags listed more than once: %v", model.ErrConfiguration, duplicates)
	}

	selections := make([]ranker.Selection, 0, len(tags))
	for _, tag := range tags {
		if tag.Count < 0 {
			return nil, fmt.Errorf("%w: tag \"%v\" requires %v courses", model.ErrConfiguration, tag.Tag, tag.Count)
		}
		selections = append(selections, ranker.Selection{
			Tag:   tag.Tag,
			Count: tag.Count,
			Codes: lo.Map(byTag[tag.Tag], func(code CourseCode, _ int) string { return code.Code }),
		})
	}
	return selections, nil
}
