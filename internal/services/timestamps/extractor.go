package timestamps

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/killallgit/videomind-api/internal/models"
	"github.com/killallgit/videomind-api/internal/services/llm"
	"github.com/killallgit/videomind-api/pkg/timecode"
	"github.com/killallgit/videomind-api/pkg/transcript"
	"github.com/phuslu/log"
	"google.golang.org/genai"
)

// Strategy names the parser that produced a Result
type Strategy string

const (
	StrategyStructured Strategy = "structured"
	StrategyFallback   Strategy = "fallback"
	StrategyEmpty      Strategy = "empty"
)

const (
	DefaultMaxDuration          = 7200
	DefaultDescriptionMaxLength = 200
)

// Result is the outcome of one extraction. Strategy is StrategyEmpty when
// neither the JSON decoder nor the fallback found anything to work with.
type Result struct {
	Strategy   Strategy           `json:"strategy"`
	Timestamps []models.Timestamp `json:"timestamps"`
	Report     ValidationReport   `json:"report"`
}

// Config holds extraction limits
type Config struct {
	// MaxDuration is the assumed ceiling in seconds when the video length is unknown
	MaxDuration int
	// DescriptionMaxLength caps descriptions, in runes
	DescriptionMaxLength int
}

// Extractor asks the model for timestamps and turns its answer into a
// validated list
type Extractor struct {
	generator llm.Generator
	config    Config
}

// candidate is a timestamp as found in model output, before reconciliation
type candidate struct {
	time        string
	description string
	declared    *int
}

// NewExtractor creates an extractor. Zero config values take the defaults.
func NewExtractor(generator llm.Generator, cfg Config) *Extractor {
	if cfg.MaxDuration <= 0 {
		cfg.MaxDuration = DefaultMaxDuration
	}
	if cfg.DescriptionMaxLength <= 0 {
		cfg.DescriptionMaxLength = DefaultDescriptionMaxLength
	}
	return &Extractor{generator: generator, config: cfg}
}

// FromTranscript extracts timestamps from a time-coded transcript. The
// transcript length, when shorter than the configured ceiling, becomes the
// ceiling.
func (e *Extractor) FromTranscript(ctx context.Context, entries []transcript.Entry) (*Result, error) {
	if len(entries) == 0 {
		return &Result{Strategy: StrategyEmpty, Timestamps: []models.Timestamp{}}, nil
	}

	duration := transcriptDuration(entries)
	raw, err := e.generator.Generate(ctx, llm.Request{
		Prompt: buildTranscriptPrompt(entries, duration),
		Schema: timestampSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("generating timestamps from transcript: %w", err)
	}

	return e.Parse(raw, e.ceiling(duration)), nil
}

// FromVideo extracts timestamps by letting the model watch the video
func (e *Extractor) FromVideo(ctx context.Context, videoURL string) (*Result, error) {
	raw, err := e.generator.Generate(ctx, llm.Request{
		Prompt:   buildVideoPrompt(),
		VideoURL: videoURL,
		Schema:   timestampSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("generating timestamps from video: %w", err)
	}

	return e.Parse(raw, e.config.MaxDuration), nil
}

// Parse turns raw model output into validated, deduplicated timestamps.
// It never fails: unusable output yields an empty list.
func (e *Extractor) Parse(raw string, maxDuration int) *Result {
	result := &Result{Strategy: StrategyEmpty}
	unparsable := 0

	if candidates, incomplete, ok := parseStructured(raw); ok {
		result.Strategy = StrategyStructured
		result.Timestamps, unparsable = e.reconcile(candidates)
		unparsable += incomplete
	} else if candidates := parseFallback(raw); len(candidates) > 0 {
		log.Warn().Int("candidates", len(candidates)).Msg("Model output was not JSON, used fallback parser")
		result.Strategy = StrategyFallback
		result.Timestamps, unparsable = e.reconcile(candidates)
	}

	validated, report := ValidateWithReport(result.Timestamps, maxDuration)
	result.Timestamps = Deduplicate(validated)

	report.Unparsable = unparsable
	report.Input += unparsable
	report.Dropped += unparsable
	result.Report = report

	return result
}

// ceiling picks the known duration when it is tighter than the configured one
func (e *Extractor) ceiling(known int) int {
	if known > 0 && known < e.config.MaxDuration {
		return known
	}
	return e.config.MaxDuration
}

// reconcile recomputes seconds from the time text. Declared seconds are
// advisory and lose on mismatch. rejected counts candidates whose time text
// or description was unusable.
func (e *Extractor) reconcile(candidates []candidate) (timestamps []models.Timestamp, rejected int) {
	timestamps = make([]models.Timestamp, 0, len(candidates))
	for _, c := range candidates {
		text := strings.TrimSpace(c.time)
		seconds, err := timecode.ParseStrict(text)
		if err != nil {
			log.Warn().Err(err).Str("time", text).Msg("Dropping timestamp with unparsable time")
			rejected++
			continue
		}
		if c.declared != nil && *c.declared != seconds {
			log.Warn().
				Str("time", text).
				Int("declared", *c.declared).
				Int("computed", seconds).
				Msg("Declared seconds disagree with time text, using computed value")
		}

		description := normalizeDescription(c.description, e.config.DescriptionMaxLength)
		if description == "" {
			rejected++
			continue
		}

		timestamps = append(timestamps, models.Timestamp{
			Time:        text,
			Description: description,
			Seconds:     seconds,
		})
	}
	return timestamps, rejected
}

// parseStructured decodes the first JSON array in raw. incomplete counts
// items that are not objects or lack a time or description. ok is false
// when no array could be decoded.
func parseStructured(raw string) (candidates []candidate, incomplete int, ok bool) {
	array, found := FindJSONArray(raw)
	if !found {
		return nil, 0, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(array), &items); err != nil {
		return nil, 0, false
	}

	candidates = make([]candidate, 0, len(items))
	for _, item := range items {
		var fields map[string]any
		if err := json.Unmarshal(item, &fields); err != nil {
			incomplete++
			continue
		}
		c, complete := candidateFromFields(fields)
		if !complete {
			incomplete++
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, incomplete, true
}

// candidateFromFields requires a time (or timestamp) and a description.
// A numeric timestamp is taken as seconds.
func candidateFromFields(fields map[string]any) (candidate, bool) {
	var c candidate

	description, ok := fields["description"].(string)
	if !ok || strings.TrimSpace(description) == "" {
		return c, false
	}
	c.description = description

	value, ok := fields["time"]
	if !ok {
		value, ok = fields["timestamp"]
	}
	if !ok {
		return c, false
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return c, false
		}
		c.time = v
	case float64:
		seconds := int(v)
		c.time = timecode.Clock(seconds)
		c.declared = &seconds
	default:
		return c, false
	}

	if seconds, ok := numericField(fields["seconds"]); ok {
		c.declared = &seconds
	}

	return c, true
}

func numericField(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

// FindJSONArray returns the first bracket-balanced substring of raw that is valid
// JSON. Brackets inside strings are ignored.
func FindJSONArray(raw string) (string, bool) {
	for start := strings.IndexByte(raw, '['); start >= 0; {
		if end := matchBracket(raw, start); end > start {
			if candidate := raw[start : end+1]; json.Valid([]byte(candidate)) {
				return candidate, true
			}
		}

		next := strings.IndexByte(raw[start+1:], '[')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

// matchBracket returns the index of the ']' closing the '[' at start, or -1
func matchBracket(raw string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// normalizeDescription collapses whitespace and caps the length in runes
func normalizeDescription(text string, maxLength int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if maxLength > 0 && utf8.RuneCountInString(normalized) > maxLength {
		runes := []rune(normalized)
		normalized = strings.TrimSpace(string(runes[:maxLength]))
	}
	return normalized
}

func transcriptDuration(entries []transcript.Entry) int {
	var end float64
	for _, entry := range entries {
		if e := entry.End(); e > end {
			end = e
		}
	}
	return int(math.Ceil(end))
}

// density returns the target timestamp count range and the minimum spacing
// between timestamps for a video of the given length
func density(duration int) (minCount, maxCount, minGap int) {
	switch {
	case duration <= 0:
		return 5, 10, 60
	case duration < 5*60:
		return 3, 5, 30
	case duration < 15*60:
		return 5, 8, 60
	case duration < 30*60:
		return 8, 12, 90
	case duration < 60*60:
		return 10, 15, 120
	default:
		return 15, 20, 180
	}
}

const timeFormatRule = "- Use MM:SS for the time, or H:MM:SS from one hour on (1:05:30, never 65:30), " +
	"and give seconds as the same moment in whole seconds.\n"

func buildTranscriptPrompt(entries []transcript.Entry, duration int) string {
	minCount, maxCount, minGap := density(duration)

	var b strings.Builder
	fmt.Fprintf(&b, "You are given the transcript of a video that is %s long.\n", timecode.Clock(duration))
	b.WriteString("Identify the key moments a viewer would want to jump to.\n\n")
	b.WriteString("Rules:\n")
	fmt.Fprintf(&b, "- Return between %d and %d timestamps.\n", minCount, maxCount)
	fmt.Fprintf(&b, "- Keep timestamps at least %d seconds apart; each one starts a new section.\n", minGap)
	b.WriteString("- A 00:00 timestamp is allowed for the introduction.\n")
	fmt.Fprintf(&b, "- Every time must be within the transcript, at or before %s.\n", timecode.Clock(duration))
	b.WriteString(timeFormatRule)
	b.WriteString("- Descriptions are one short sentence.\n")
	b.WriteString("- Respond with only a JSON array of objects with the keys \"time\", \"description\" and \"seconds\".\n\n")
	b.WriteString("Transcript:\n")
	for _, entry := range entries {
		b.WriteString(entry.Line())
		b.WriteByte('\n')
	}
	return b.String()
}

func buildVideoPrompt() string {
	minCount, maxCount, minGap := density(0)

	var b strings.Builder
	b.WriteString("Watch this video and identify the key moments a viewer would want to jump to.\n\n")
	b.WriteString("Rules:\n")
	fmt.Fprintf(&b, "- Return between %d and %d timestamps, scaled to the length of the video.\n", minCount, maxCount)
	fmt.Fprintf(&b, "- Keep timestamps at least %d seconds apart.\n", minGap)
	b.WriteString("- A 00:00 timestamp is allowed for the introduction.\n")
	b.WriteString(timeFormatRule)
	b.WriteString("- Describe what is shown or said in one short sentence.\n")
	b.WriteString("- Respond with only a JSON array of objects with the keys \"time\", \"description\" and \"seconds\".\n")
	return b.String()
}

func timestampSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"time":        {Type: genai.TypeString, Description: "Time as MM:SS, or H:MM:SS from one hour on"},
				"description": {Type: genai.TypeString, Description: "What happens at this moment"},
				"seconds":     {Type: genai.TypeInteger, Description: "The same moment in whole seconds"},
			},
			Required:         []string{"time", "description", "seconds"},
			PropertyOrdering: []string{"time", "description", "seconds"},
		},
	}
}
