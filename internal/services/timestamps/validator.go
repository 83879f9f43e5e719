package timestamps

import (
	"regexp"
	"sort"

	"github.com/killallgit/videomind-api/internal/models"
	"github.com/phuslu/log"
)

var timeFormatRegex = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

// ValidationReport counts what Validate kept and why it dropped the rest
type ValidationReport struct {
	Input       int `json:"input"`
	Kept        int `json:"kept"`
	Dropped     int `json:"dropped"`
	Negative    int `json:"negative"`
	OverCeiling int `json:"over_ceiling"`
	BadFormat   int `json:"bad_format"`
	// Unparsable counts model items dropped before validation for a missing
	// or unparsable time or an empty description. Validate leaves it at 0.
	Unparsable  int `json:"unparsable"`
}

// Validate drops negative, over-ceiling and badly formatted candidates and
// returns the survivors stable-sorted by seconds. maxDuration <= 0 disables
// the ceiling.
func Validate(candidates []models.Timestamp, maxDuration int) []models.Timestamp {
	kept, _ := ValidateWithReport(candidates, maxDuration)
	return kept
}

// ValidateWithReport is Validate that also returns the drop counts
func ValidateWithReport(candidates []models.Timestamp, maxDuration int) ([]models.Timestamp, ValidationReport) {
	report := ValidationReport{Input: len(candidates)}
	kept := make([]models.Timestamp, 0, len(candidates))

	for _, candidate := range candidates {
		switch {
		case candidate.Seconds < 0:
			report.Negative++
		case maxDuration > 0 && candidate.Seconds > maxDuration:
			report.OverCeiling++
		case !timeFormatRegex.MatchString(candidate.Time):
			report.BadFormat++
		default:
			kept = append(kept, candidate)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Seconds < kept[j].Seconds
	})

	report.Kept = len(kept)
	report.Dropped = report.Input - report.Kept

	log.Info().
		Int("input", report.Input).
		Int("kept", report.Kept).
		Int("dropped", report.Dropped).
		Int("negative", report.Negative).
		Int("over_ceiling", report.OverCeiling).
		Int("bad_format", report.BadFormat).
		Int("max_duration", maxDuration).
		Msg("Validated timestamps")

	return kept, report
}

// Deduplicate removes timestamps that point at the same second, keeping the
// first occurrence
func Deduplicate(timestamps []models.Timestamp) []models.Timestamp {
	seen := make(map[int]struct{}, len(timestamps))
	unique := make([]models.Timestamp, 0, len(timestamps))
	for _, ts := range timestamps {
		if _, ok := seen[ts.Seconds]; ok {
			continue
		}
		seen[ts.Seconds] = struct{}{}
		unique = append(unique, ts)
	}
	return unique
}
