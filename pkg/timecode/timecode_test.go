package timecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"zero", "0:00", 0},
		{"padded zero", "00:00", 0},
		{"minutes and seconds", "1:30", 90},
		{"padded", "05:45", 345},
		{"ten minutes", "10:00", 600},
		{"one hour", "1:00:00", 3600},
		{"long form", "1:30:45", 5445},
		{"two hours", "2:00:00", 7200},
		{"surrounding whitespace", " 2:05 ", 125},
		{"seconds out of range", "1:60", 0},
		{"minutes out of range", "60:00", 0},
		{"long form seconds out of range", "1:30:60", 0},
		{"long form minutes out of range", "1:60:00", 0},
		{"not a time", "abc", 0},
		{"too many parts", "1:30:45:00", 0},
		{"negative component", "-1:30", 0},
		{"empty", "", 0},
		{"non-numeric component", "1:3a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestParseStrict(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		seconds, err := ParseStrict("01:30")
		require.NoError(t, err)
		assert.Equal(t, 90, seconds)
	})

	t.Run("zero is not an error", func(t *testing.T) {
		seconds, err := ParseStrict("0:00")
		require.NoError(t, err)
		assert.Equal(t, 0, seconds)
	})

	for _, input := range []string{"1:60", "60:00", "abc", "1:2:3:4", ""} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := ParseStrict(input)
			assert.ErrorIs(t, err, ErrInvalidTimeCode)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{90, "01:30"},
		{599, "09:59"},
		{3599, "59:59"},
		{3600, "60:00"},
		{5400, "90:00"},
		{-10, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.seconds))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Format never wraps minutes into hours, so the round trip holds while
	// the minutes field stays inside the accepted range.
	for s := 0; s < 3600; s++ {
		require.Equal(t, s, Parse(Format(s)), "round trip failed for %d", s)
	}
}

func TestFormatNeverEmitsLongForm(t *testing.T) {
	for _, s := range []int{3600, 5400, 5999} {
		assert.Len(t, Format(s), 5, "expected MM:SS for %d", s)
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{90, "01:30"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{4530, "1:15:30"},
		{7200, "2:00:00"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clock(tt.seconds))
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	for s := 0; s <= 7200; s++ {
		seconds, err := ParseStrict(Clock(s))
		require.NoError(t, err, "clock text for %d did not parse", s)
		require.Equal(t, s, seconds)
	}
}
