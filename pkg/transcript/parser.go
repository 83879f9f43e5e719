package transcript

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/killallgit/videomind-api/pkg/timecode"
)

// TranscriptFormat represents the format of a caption track
type TranscriptFormat string

const (
	FormatVTT   TranscriptFormat = "vtt"
	FormatSRT   TranscriptFormat = "srt"
	FormatJSON  TranscriptFormat = "json"
	FormatJSON3 TranscriptFormat = "json3"
	FormatText  TranscriptFormat = "text"
)

// Entry is one time-coded caption line. Start and Duration are in seconds.
type Entry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// End returns the end offset of the entry in seconds
func (e Entry) End() float64 {
	return e.Start + e.Duration
}

// Line renders the entry as "[MM:SS] text"
func (e Entry) Line() string {
	return fmt.Sprintf("[%s] %s", timecode.Clock(int(e.Start)), e.Text)
}

// Transcript represents a parsed caption track
type Transcript struct {
	Format   TranscriptFormat
	Entries  []Entry
	FullText string
	Duration float64 // seconds, from the end of the last entry
}

var (
	vttCueRegex = regexp.MustCompile(`((?:\d{2,}:)?\d{2}:\d{2}\.\d{3})\s*-->\s*((?:\d{2,}:)?\d{2}:\d{2}\.\d{3})`)
	srtCueRegex = regexp.MustCompile(`(\d{2,}:\d{2}:\d{2},\d{3})\s*-->\s*(\d{2,}:\d{2}:\d{2},\d{3})`)
	cueTagRegex = regexp.MustCompile(`<[^>]*>`)
)

// Parser handles parsing different caption formats
type Parser struct{}

// NewParser creates a new transcript parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses caption content based on its format
func (p *Parser) Parse(content string, format TranscriptFormat) (*Transcript, error) {
	var (
		entries []Entry
		err     error
	)

	switch format {
	case FormatVTT:
		entries = parseCues(content, vttCueRegex, true)
	case FormatSRT:
		entries = parseCues(content, srtCueRegex, false)
	case FormatJSON:
		entries, err = parseJSON(content)
	case FormatJSON3:
		entries, err = parseJSON3(content)
	case FormatText:
		return &Transcript{Format: FormatText, FullText: strings.TrimSpace(content)}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	return newTranscript(format, entries), nil
}

func newTranscript(format TranscriptFormat, entries []Entry) *Transcript {
	t := &Transcript{Format: format, Entries: entries}
	texts := make([]string, 0, len(entries))
	for _, e := range entries {
		texts = append(texts, e.Text)
		if e.End() > t.Duration {
			t.Duration = e.End()
		}
	}
	t.FullText = strings.Join(texts, " ")
	return t
}

// parseCues handles both VTT and SRT, which differ only in the cue timing
// line and header. Cue identifiers and blank separators are skipped.
func parseCues(content string, cueRegex *regexp.Regexp, vtt bool) []Entry {
	entries := []Entry{}
	var current *Entry
	var text []string

	flush := func() {
		if current != nil && len(text) > 0 {
			current.Text = strings.Join(text, " ")
			entries = append(entries, *current)
		}
		current = nil
		text = text[:0]
	}

	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)

		if vtt && (strings.HasPrefix(line, "WEBVTT") || strings.HasPrefix(line, "NOTE") ||
			strings.HasPrefix(line, "Kind:") || strings.HasPrefix(line, "Language:")) {
			continue
		}

		if matches := cueRegex.FindStringSubmatch(line); matches != nil {
			flush()
			start := parseClock(matches[1])
			end := parseClock(matches[2])
			current = &Entry{Start: start, Duration: end - start}
			continue
		}

		if line == "" {
			flush()
			continue
		}

		if current != nil {
			if clean := cleanCueText(line); clean != "" {
				text = append(text, clean)
			}
		}
	}
	flush()

	return dedupeRolling(entries)
}

// dedupeRolling drops consecutive repeats produced by auto-generated
// captions, where each cue repeats the previous line before adding words.
func dedupeRolling(entries []Entry) []Entry {
	if len(entries) < 2 {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	out = append(out, entries[0])
	for _, e := range entries[1:] {
		last := &out[len(out)-1]
		if e.Text == last.Text {
			if e.End() > last.End() {
				last.Duration = e.End() - last.Start
			}
			continue
		}
		out = append(out, e)
	}
	return out
}

func parseJSON(content string) ([]Entry, error) {
	var segments []struct {
		Text      string  `json:"text"`
		Start     float64 `json:"start"`
		StartTime float64 `json:"startTime"`
		Duration  float64 `json:"duration"`
		End       float64 `json:"end"`
		EndTime   float64 `json:"endTime"`
	}

	if err := json.Unmarshal([]byte(content), &segments); err != nil {
		var obj struct {
			Segments json.RawMessage `json:"segments"`
		}
		if err := json.Unmarshal([]byte(content), &obj); err != nil {
			return nil, fmt.Errorf("failed to parse JSON transcript: %w", err)
		}
		if len(obj.Segments) == 0 {
			return nil, fmt.Errorf("failed to parse JSON transcript: no segments")
		}
		return parseJSON(string(obj.Segments))
	}

	entries := make([]Entry, 0, len(segments))
	for _, seg := range segments {
		start := seg.Start
		if start == 0 && seg.StartTime > 0 {
			start = seg.StartTime
		}
		duration := seg.Duration
		end := seg.End
		if end == 0 {
			end = seg.EndTime
		}
		if duration == 0 && end > start {
			duration = end - start
		}
		text := cleanCueText(seg.Text)
		if text == "" {
			continue
		}
		entries = append(entries, Entry{Text: text, Start: start, Duration: duration})
	}
	return entries, nil
}

// parseJSON3 parses YouTube's timed-text json3 format
func parseJSON3(content string) ([]Entry, error) {
	var doc struct {
		Events []struct {
			StartMs    int64 `json:"tStartMs"`
			DurationMs int64 `json:"dDurationMs"`
			Segs       []struct {
				UTF8 string `json:"utf8"`
			} `json:"segs"`
		} `json:"events"`
	}
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse json3 transcript: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Events))
	for _, ev := range doc.Events {
		var b strings.Builder
		for _, seg := range ev.Segs {
			b.WriteString(seg.UTF8)
		}
		text := cleanCueText(b.String())
		if text == "" {
			continue
		}
		entries = append(entries, Entry{
			Text:     text,
			Start:    float64(ev.StartMs) / 1000,
			Duration: float64(ev.DurationMs) / 1000,
		})
	}
	return entries, nil
}

// parseClock parses HH:MM:SS.mmm, MM:SS.mmm or HH:MM:SS,mmm into seconds
func parseClock(clock string) float64 {
	clock = strings.Replace(clock, ",", ".", 1)
	parts := strings.Split(clock, ":")

	var total float64
	for _, part := range parts[:len(parts)-1] {
		v, _ := strconv.Atoi(part)
		total = total*60 + float64(v)
	}
	secs, _ := strconv.ParseFloat(parts[len(parts)-1], 64)
	return total*60 + secs
}

func cleanCueText(text string) string {
	text = cueTagRegex.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// ToPlainText converts a transcript to plain text
func (t *Transcript) ToPlainText() string {
	return t.FullText
}
