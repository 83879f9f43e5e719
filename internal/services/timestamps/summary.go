package timestamps

import (
	"regexp"
	"sort"
	"strings"

	"github.com/killallgit/videomind-api/internal/models"
	"github.com/killallgit/videomind-api/pkg/timecode"
	"github.com/phuslu/log"
)

var summaryTagRegex = regexp.MustCompile(`\[` + timePattern + `\]`)

// ScanSummary finds "description [MM:SS]" tags in a generated summary.
// Results keep summary order, keyed by the byte offset of each tag.
// maxDuration <= 0 disables the ceiling.
func ScanSummary(summary string, maxDuration, descriptionMaxLength int) []models.SummaryTimestamp {
	if descriptionMaxLength <= 0 {
		descriptionMaxLength = DefaultDescriptionMaxLength
	}

	matches := summaryTagRegex.FindAllStringSubmatchIndex(summary, -1)
	found := make([]models.SummaryTimestamp, 0, len(matches))
	seen := make(map[int]struct{}, len(matches))
	previousEnd := 0

	for _, m := range matches {
		tagStart, tagEnd := m[0], m[1]
		text := summary[m[2]:m[3]]
		segmentStart := previousEnd
		previousEnd = tagEnd

		seconds, err := timecode.ParseStrict(text)
		if err != nil {
			log.Warn().Err(err).Str("time", text).Msg("Skipping summary tag with unparsable time")
			continue
		}
		if seconds < 0 || (maxDuration > 0 && seconds > maxDuration) {
			continue
		}
		if _, dup := seen[tagStart]; dup {
			continue
		}

		description := describeTag(summary, segmentStart, tagStart, tagEnd)
		description = normalizeDescription(description, descriptionMaxLength)
		if description == "" {
			continue
		}

		seen[tagStart] = struct{}{}
		found = append(found, models.SummaryTimestamp{
			Time:         text,
			Description:  description,
			Seconds:      seconds,
			TextPosition: tagStart,
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].TextPosition < found[j].TextPosition
	})
	return found
}

// describeTag returns the sentence the tag trails. When nothing precedes the
// tag on its line, the text after the tag is used instead.
func describeTag(summary string, segmentStart, tagStart, tagEnd int) string {
	segment := summary[segmentStart:tagStart]
	if nl := strings.LastIndexByte(segment, '\n'); nl >= 0 {
		segment = segment[nl+1:]
	}
	segment = strings.TrimSpace(segment)

	if i := lastSentenceBreak(segment); i >= 0 {
		segment = segment[i:]
	}
	if description := cleanMarkup(segment); description != "" {
		return description
	}

	rest := summary[tagEnd:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	if next := summaryTagRegex.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	return cleanMarkup(rest)
}

// lastSentenceBreak returns the index just past the last ". ", "! " or "? "
// in s, or -1
func lastSentenceBreak(s string) int {
	best := -1
	for _, sep := range []string{". ", "! ", "? "} {
		if i := strings.LastIndex(s, sep); i >= 0 && i+len(sep) > best {
			best = i + len(sep)
		}
	}
	return best
}

func cleanMarkup(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*•#> ")
	s = strings.TrimRight(s, " -:–—")
	return strings.TrimSpace(s)
}
