package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/phuslu/log"
)

// ErrInvalidTimeCode is returned when a time code cannot be parsed
var ErrInvalidTimeCode = errors.New("invalid time code")

// Parse converts "MM:SS" or "HH:MM:SS" text into seconds.
// Invalid input yields 0 and a logged warning, so a 0 result for anything
// other than a zero time code means the text did not parse.
func Parse(text string) int {
	seconds, err := ParseStrict(text)
	if err != nil {
		log.Warn().Err(err).Str("time", text).Msg("could not parse time code, using 0")
		return 0
	}
	return seconds
}

// ParseStrict converts "MM:SS" or "HH:MM:SS" text into seconds.
// Minutes and seconds must be within [0,59]; hours must be non-negative.
func ParseStrict(text string) (int, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q has %d components", ErrInvalidTimeCode, text, len(parts))
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidTimeCode, part)
		}
		if v < 0 {
			return 0, fmt.Errorf("%w: %q is negative", ErrInvalidTimeCode, part)
		}
		values[i] = v
	}

	var hours, minutes, seconds int
	if len(values) == 3 {
		hours, minutes, seconds = values[0], values[1], values[2]
	} else {
		minutes, seconds = values[0], values[1]
	}

	if minutes > 59 {
		return 0, fmt.Errorf("%w: minutes %d out of range in %q", ErrInvalidTimeCode, minutes, text)
	}
	if seconds > 59 {
		return 0, fmt.Errorf("%w: seconds %d out of range in %q", ErrInvalidTimeCode, seconds, text)
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// Format renders seconds as zero-padded "MM:SS". The minutes field is not
// wrapped into hours, so 5400 becomes "90:00".
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Clock renders seconds as "MM:SS" below one hour and "H:MM:SS" from one
// hour on. Unlike Format its output always parses with ParseStrict.
func Clock(seconds int) string {
	if seconds < 3600 {
		return Format(seconds)
	}
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
