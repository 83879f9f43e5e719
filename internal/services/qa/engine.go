package qa

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/killallgit/videomind-api/internal/services/llm"
	"github.com/killallgit/videomind-api/pkg/timecode"
	"github.com/killallgit/videomind-api/pkg/transcript"
	"github.com/killallgit/videomind-api/pkg/youtube"
	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"
)

// Apology is returned when no chunk produced a usable answer
const Apology = "I'm sorry, I couldn't find an answer to that question in this video's transcript."

const (
	DefaultChunkSize      = 5000
	DefaultMaxConcurrency = 4
)

var timeMentionRegex = regexp.MustCompile(`\[?\b(\d{1,2}:\d{2}(?::\d{2})?)\b\]?`)

// Config holds chunking and fan-out limits
type Config struct {
	// ChunkSize is the character budget of one transcript chunk
	ChunkSize int
	// MaxConcurrency bounds the number of chunk queries in flight
	MaxConcurrency int
}

// Engine answers questions over long transcripts by querying each chunk
// separately and keeping the answer that cites the most moments
type Engine struct {
	generator llm.Generator
	config    Config
}

// Answer is the selected answer to a question
type Answer struct {
	// Text has every time mention rewritten as a link into the video
	Text string `json:"text"`
	// Raw is the winning chunk answer as the model returned it
	Raw string `json:"raw"`
	// Chunk is the index of the winning chunk, -1 when nothing was kept
	Chunk  int `json:"chunk"`
	Score  int `json:"score"`
	Chunks int `json:"chunks"`
}

type chunkAnswer struct {
	text  string
	score int
	err   error
}

// NewEngine creates a Q&A engine. Zero config values take the defaults.
func NewEngine(generator llm.Generator, cfg Config) *Engine {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	return &Engine{generator: generator, config: cfg}
}

// Ask answers question from the transcript. An empty transcript returns the
// apology without calling the model. Only answers citing at least one moment
// are kept; when none does the apology is returned. Failing chunks are
// skipped, and only a cancelled or expired context is returned as an error.
func (e *Engine) Ask(ctx context.Context, entries []transcript.Entry, question, videoURL string) (*Answer, error) {
	if len(entries) == 0 {
		return apology(0), nil
	}

	chunks := Chunk(entries, e.config.ChunkSize)
	answers := make([]chunkAnswer, len(chunks))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.MaxConcurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			text, err := e.generator.Generate(gctx, llm.Request{
				Prompt: buildChunkPrompt(chunk, i, len(chunks), question),
			})
			if err != nil {
				log.Warn().Err(err).Int("chunk", i).Msg("Chunk query failed")
				answers[i] = chunkAnswer{err: err}
				return nil
			}
			answers[i] = chunkAnswer{text: text, score: Score(text)}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, llm.NewUpstreamError("gemini", "answer question", err)
	}

	best := -1
	for i, a := range answers {
		if a.err != nil || a.score == 0 || strings.TrimSpace(a.text) == "" {
			continue
		}
		if best < 0 || a.score > answers[best].score {
			best = i
		}
	}

	log.Info().
		Int("chunks", len(chunks)).
		Int("selected", best).
		Dur("duration", time.Since(start)).
		Msg("Answered question over transcript chunks")

	if best < 0 {
		return apology(len(chunks)), nil
	}

	raw := answers[best].text
	return &Answer{
		Text:   LinkTimestamps(raw, videoURL),
		Raw:    raw,
		Chunk:  best,
		Score:  answers[best].score,
		Chunks: len(chunks),
	}, nil
}

func apology(chunks int) *Answer {
	return &Answer{Text: Apology, Raw: Apology, Chunk: -1, Chunks: chunks}
}

// Chunk splits entries into runs whose rendered lines fit in budget
// characters. Entries are never split; an entry longer than the budget gets
// a chunk of its own.
func Chunk(entries []transcript.Entry, budget int) [][]transcript.Entry {
	if budget <= 0 {
		budget = DefaultChunkSize
	}

	var (
		chunks  [][]transcript.Entry
		current []transcript.Entry
		size    int
	)
	for _, entry := range entries {
		n := len(entry.Line()) + 1
		if len(current) > 0 && size+n > budget {
			chunks = append(chunks, current)
			current, size = nil, 0
		}
		current = append(current, entry)
		size += n
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

// Score counts the time mentions in an answer
func Score(answer string) int {
	return len(timeMentionRegex.FindAllStringIndex(answer, -1))
}

// LinkTimestamps rewrites each time mention as a markdown link to that
// moment of the video. Mentions that do not parse link to the video itself.
func LinkTimestamps(answer, videoURL string) string {
	return timeMentionRegex.ReplaceAllStringFunc(answer, func(match string) string {
		text := strings.Trim(match, "[]")
		target := videoURL
		if seconds, err := timecode.ParseStrict(text); err == nil {
			target = youtube.TimestampURL(videoURL, seconds)
		}
		return fmt.Sprintf("[%s](%s)", text, target)
	})
}

func buildChunkPrompt(chunk []transcript.Entry, index, total int, question string) string {
	var b strings.Builder
	b.WriteString("You are answering a question about a video using part of its transcript.\n")
	b.WriteString("Answer only from this part. When you refer to a moment, cite its time as MM:SS, or H:MM:SS from one hour on.\n")
	b.WriteString("If this part does not contain the answer, say so in one sentence.\n\n")
	fmt.Fprintf(&b, "Transcript part %d of %d:\n", index+1, total)
	for _, entry := range chunk {
		b.WriteString(entry.Line())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nQuestion: %s\n", question)
	return b.String()
}
