package qa

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/killallgit/videomind-api/internal/services/llm"
	"github.com/killallgit/videomind-api/pkg/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const videoURL = "https://www.youtube.com/watch?v=abc123"

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, req llm.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func promptContains(s string) interface{} {
	return mock.MatchedBy(func(req llm.Request) bool {
		return strings.Contains(req.Prompt, s)
	})
}

// threeChunks yields one chunk per entry with a 20 character budget
func threeChunks() []transcript.Entry {
	return []transcript.Entry{
		{Text: "alpha", Start: 0, Duration: 5},
		{Text: "bravo", Start: 10, Duration: 5},
		{Text: "charlie", Start: 30, Duration: 5},
	}
}

func TestAsk_SelectsHighestScoringChunk(t *testing.T) {
	gen := new(MockGenerator)
	engine := NewEngine(gen, Config{ChunkSize: 20, MaxConcurrency: 2})

	gen.On("Generate", mock.Anything, promptContains("alpha")).Return("This part does not mention it.", nil)
	gen.On("Generate", mock.Anything, promptContains("bravo")).Return("It is shown at 00:10 and again at 00:20.", nil)
	gen.On("Generate", mock.Anything, promptContains("charlie")).Return("Briefly at 00:30.", nil)

	answer, err := engine.Ask(context.Background(), threeChunks(), "when is it shown?", videoURL)

	require.NoError(t, err)
	assert.Equal(t, "It is shown at 00:10 and again at 00:20.", answer.Raw)
	assert.Equal(t, 1, answer.Chunk)
	assert.Equal(t, 2, answer.Score)
	assert.Equal(t, 3, answer.Chunks)
	assert.Equal(t,
		"It is shown at [00:10](https://www.youtube.com/watch?t=10s&v=abc123) and again at [00:20](https://www.youtube.com/watch?t=20s&v=abc123).",
		answer.Text)
	gen.AssertNumberOfCalls(t, "Generate", 3)
}

func TestAsk_TiesKeepFirstChunk(t *testing.T) {
	gen := new(MockGenerator)
	engine := NewEngine(gen, Config{ChunkSize: 20})

	gen.On("Generate", mock.Anything, promptContains("alpha")).Return("first at 00:01", nil)
	gen.On("Generate", mock.Anything, promptContains("bravo")).Return("second at 00:11", nil)
	gen.On("Generate", mock.Anything, promptContains("charlie")).Return("third at 00:31", nil)

	answer, err := engine.Ask(context.Background(), threeChunks(), "q", videoURL)

	require.NoError(t, err)
	assert.Equal(t, "first at 00:01", answer.Raw)
}

func TestAsk_SkipsFailedAndBlankChunks(t *testing.T) {
	gen := new(MockGenerator)
	engine := NewEngine(gen, Config{ChunkSize: 20})

	gen.On("Generate", mock.Anything, promptContains("alpha")).Return("", errors.New("timeout"))
	gen.On("Generate", mock.Anything, promptContains("bravo")).Return("   ", nil)
	gen.On("Generate", mock.Anything, promptContains("charlie")).Return("Only this part answers, at 00:30.", nil)

	answer, err := engine.Ask(context.Background(), threeChunks(), "q", videoURL)

	require.NoError(t, err)
	assert.Equal(t, "Only this part answers, at 00:30.", answer.Raw)
	assert.Equal(t, 2, answer.Chunk)
}

func TestAsk_ZeroScoringAnswersGiveApology(t *testing.T) {
	gen := new(MockGenerator)
	engine := NewEngine(gen, Config{ChunkSize: 20})

	gen.On("Generate", mock.Anything, promptContains("alpha")).Return("This part does not contain the answer.", nil)
	gen.On("Generate", mock.Anything, promptContains("bravo")).Return("Nothing relevant here.", nil)
	gen.On("Generate", mock.Anything, promptContains("charlie")).Return("", errors.New("upstream down"))

	answer, err := engine.Ask(context.Background(), threeChunks(), "q", videoURL)

	require.NoError(t, err)
	assert.Equal(t, Apology, answer.Text)
	assert.Equal(t, -1, answer.Chunk)
	assert.Equal(t, 3, answer.Chunks)
}

func TestAsk_DeadlineIsRetryable(t *testing.T) {
	gen := new(MockGenerator)
	engine := NewEngine(gen, Config{ChunkSize: 20})
	gen.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return("", context.DeadlineExceeded)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := engine.Ask(ctx, threeChunks(), "q", videoURL)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, llm.ErrUpstream)
	assert.True(t, llm.IsRetryable(err))
}

func TestAsk_LongVideoCitesHours(t *testing.T) {
	gen := new(MockGenerator)
	engine := NewEngine(gen, Config{})

	entries := []transcript.Entry{
		{Text: "intro", Start: 0, Duration: 5},
		{Text: "late topic", Start: 4530, Duration: 30},
	}
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(req llm.Request) bool {
		return strings.Contains(req.Prompt, "[1:15:30] late topic") && strings.Contains(req.Prompt, "H:MM:SS")
	})).Return("It comes up at 1:15:30.", nil)

	answer, err := engine.Ask(context.Background(), entries, "when?", videoURL)

	require.NoError(t, err)
	assert.Equal(t, "It comes up at [1:15:30](https://www.youtube.com/watch?t=4530s&v=abc123).", answer.Text)
	gen.AssertExpectations(t)
}

func TestAsk_AllChunksFail(t *testing.T) {
	gen := new(MockGenerator)
	engine := NewEngine(gen, Config{ChunkSize: 20})

	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("upstream down"))

	answer, err := engine.Ask(context.Background(), threeChunks(), "q", videoURL)

	require.NoError(t, err)
	assert.Equal(t, Apology, answer.Text)
	assert.Equal(t, -1, answer.Chunk)
}

func TestAsk_EmptyTranscript(t *testing.T) {
	gen := new(MockGenerator)
	engine := NewEngine(gen, Config{})

	answer, err := engine.Ask(context.Background(), nil, "anything?", videoURL)

	require.NoError(t, err)
	assert.Equal(t, Apology, answer.Text)
	gen.AssertNumberOfCalls(t, "Generate", 0)
}

func TestAsk_CancelledContext(t *testing.T) {
	gen := new(MockGenerator)
	engine := NewEngine(gen, Config{ChunkSize: 20})
	gen.On("Generate", mock.Anything, mock.Anything).Return("", context.Canceled)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Ask(ctx, threeChunks(), "q", videoURL)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestChunk(t *testing.T) {
	entries := []transcript.Entry{
		{Text: "aaaa", Start: 0},  // "[00:00] aaaa" + newline = 13
		{Text: "bbbb", Start: 5},  // 13
		{Text: "cccc", Start: 10}, // 13
		{Text: strings.Repeat("d", 50), Start: 15},
		{Text: "eeee", Start: 20},
	}

	chunks := Chunk(entries, 26)

	require.Len(t, chunks, 4)
	assert.Len(t, chunks[0], 2)
	assert.Len(t, chunks[1], 1)
	assert.Len(t, chunks[2], 1, "oversized entry gets its own chunk")
	assert.Len(t, chunks[3], 1)

	var flattened []transcript.Entry
	for _, c := range chunks {
		flattened = append(flattened, c...)
	}
	assert.Equal(t, entries, flattened, "chunking preserves every entry in order")
}

func TestChunk_Empty(t *testing.T) {
	assert.Empty(t, Chunk(nil, 100))
}

func TestScore(t *testing.T) {
	tests := []struct {
		answer   string
		expected int
	}{
		{"no times at all", 0},
		{"at 01:30", 1},
		{"from [00:10] to 1:02:03 and 12:00", 3},
		{"ratio 3:1 is not a time", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Score(tt.answer), tt.answer)
	}
}

func TestLinkTimestamps(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected string
	}{
		{
			name:     "plain mention",
			answer:   "See 01:30.",
			expected: "See [01:30](https://www.youtube.com/watch?t=90s&v=abc123).",
		},
		{
			name:     "bracketed mention",
			answer:   "See [00:05]",
			expected: "See [00:05](https://www.youtube.com/watch?t=5s&v=abc123)",
		},
		{
			name:     "unparsable falls back to video url",
			answer:   "at 1:75",
			expected: "at [1:75](" + videoURL + ")",
		},
		{
			name:     "nothing to rewrite",
			answer:   "no times",
			expected: "no times",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LinkTimestamps(tt.answer, videoURL))
		})
	}
}
