package timestamps

import (
	"regexp"
	"strconv"
	"strings"
)

const timePattern = `(\d{1,2}:\d{2}(?::\d{2})?)`

// fallbackPattern is one textual shape the model falls back to when it
// ignores the JSON instruction. The first pattern with any match wins.
type fallbackPattern struct {
	name  string
	regex *regexp.Regexp
	// quoted descriptions carry JSON escapes
	quoted bool
}

var fallbackPatterns = []fallbackPattern{
	{
		name:   "quoted pair",
		regex:  regexp.MustCompile(`"(?:time|timestamp)"\s*:\s*"` + timePattern + `"\s*,\s*"description"\s*:\s*"((?:[^"\\]|\\.)*)"(?:\s*,\s*"seconds"\s*:\s*(-?\d+))?`),
		quoted: true,
	},
	{
		name:  "dash with seconds",
		regex: regexp.MustCompile(`(?m)^\s*(?:[-*•]\s*)?\[?` + timePattern + `\]?\s*[-–—]\s*(.+?)\s*\(\s*seconds\s*:\s*(-?\d+)\s*\)\s*$`),
	},
	{
		name:  "time line",
		regex: regexp.MustCompile(`(?m)^\s*(?:[-*•]\s*)?\**\[?` + timePattern + `\]?\**\s*[:\-–—]\s*(.+?)\s*$`),
	},
}

// parseFallback scans raw for the known non-JSON shapes
func parseFallback(raw string) []candidate {
	for _, pattern := range fallbackPatterns {
		matches := pattern.regex.FindAllStringSubmatch(raw, -1)
		if len(matches) == 0 {
			continue
		}

		candidates := make([]candidate, 0, len(matches))
		for _, m := range matches {
			c := candidate{time: m[1], description: m[2]}
			if pattern.quoted {
				c.description = unescapeJSONString(m[2])
			}
			if len(m) > 3 && m[3] != "" {
				if seconds, err := strconv.Atoi(m[3]); err == nil {
					c.declared = &seconds
				}
			}
			c.description = strings.Trim(c.description, "* ")
			candidates = append(candidates, c)
		}
		return candidates
	}
	return nil
}

func unescapeJSONString(s string) string {
	if unquoted, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return unquoted
	}
	return s
}
