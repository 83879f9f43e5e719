package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{name: "short link", url: "https://youtu.be/abc123", expected: "abc123"},
		{name: "short link with query", url: "https://youtu.be/abc123?si=xyz&t=10", expected: "abc123"},
		{name: "canonical", url: "https://www.youtube.com/watch?v=abc123", expected: "abc123"},
		{name: "canonical with extra params", url: "https://www.youtube.com/watch?v=abc123&t=5", expected: "abc123"},
		{name: "canonical param order", url: "https://www.youtube.com/watch?list=PL1&v=abc123", expected: "abc123"},
		{name: "bare host", url: "https://youtube.com/watch?v=dQw4w9WgXcQ", expected: "dQw4w9WgXcQ"},
		{name: "mobile host", url: "https://m.youtube.com/watch?v=a-b_c", expected: "a-b_c"},
		{name: "empty", url: "", wantErr: true},
		{name: "not a url", url: "not a url", wantErr: true},
		{name: "unknown host", url: "https://vimeo.com/12345", wantErr: true},
		{name: "lookalike host", url: "https://notyoutube.com/watch?v=abc123", wantErr: true},
		{name: "missing v param", url: "https://www.youtube.com/watch?list=PL1", wantErr: true},
		{name: "channel path", url: "https://www.youtube.com/channel/abc123", wantErr: true},
		{name: "short link without id", url: "https://youtu.be/", wantErr: true},
		{name: "ftp scheme", url: "ftp://youtu.be/abc123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestSameVideoSameID(t *testing.T) {
	a, err := ExtractVideoID("https://youtu.be/abc123")
	require.NoError(t, err)
	b, err := ExtractVideoID("https://www.youtube.com/watch?v=abc123&t=5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTimestampURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?t=90s&v=abc123",
		TimestampURL("https://www.youtube.com/watch?v=abc123", 90))
	assert.Equal(t, "https://www.youtube.com/watch?t=30s&v=abc123",
		TimestampURL("https://www.youtube.com/watch?v=abc123&t=5", 30))
	assert.Equal(t, "https://youtu.be/abc123?t=0s", TimestampURL("https://youtu.be/abc123", -4))
	assert.Equal(t, "not a url", TimestampURL("not a url", 10))
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", WatchURL("abc123"))
}
