package videos

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/killallgit/videomind-api/internal/services/timestamps"
	"github.com/killallgit/videomind-api/pkg/timecode"
	"google.golang.org/genai"
)

// scene is one described moment of a video, before embedding
type scene struct {
	Timestamp   int
	Description string
}

// parseScenes decodes the first JSON array in raw into scenes sorted by
// timestamp. Items without a usable time or description are skipped, as are
// times outside [0, maxDuration].
func parseScenes(raw string, maxDuration, descriptionMaxLength int) []scene {
	array, ok := timestamps.FindJSONArray(raw)
	if !ok {
		return nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal([]byte(array), &raws); err != nil {
		return nil
	}

	scenes := make([]scene, 0, len(raws))
	seen := make(map[int]bool, len(raws))
	for _, r := range raws {
		var item map[string]any
		if err := json.Unmarshal(r, &item); err != nil {
			continue
		}

		seconds, ok := sceneSeconds(item["timestamp"])
		if !ok || seconds < 0 || (maxDuration > 0 && seconds > maxDuration) || seen[seconds] {
			continue
		}

		description, _ := item["description"].(string)
		description = strings.Join(strings.Fields(description), " ")
		if description == "" {
			continue
		}
		if descriptionMaxLength > 0 && utf8.RuneCountInString(description) > descriptionMaxLength {
			description = strings.TrimSpace(string([]rune(description)[:descriptionMaxLength]))
		}

		seen[seconds] = true
		scenes = append(scenes, scene{Timestamp: seconds, Description: description})
	}

	sort.SliceStable(scenes, func(i, j int) bool {
		return scenes[i].Timestamp < scenes[j].Timestamp
	})
	return scenes
}

// sceneSeconds accepts whole seconds or a clock string
func sceneSeconds(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case string:
		seconds, err := timecode.ParseStrict(strings.TrimSpace(v))
		return seconds, err == nil
	}
	return 0, false
}

func buildScenePrompt(maxScenes int) string {
	return fmt.Sprintf("Watch this video and describe up to %d distinct visual scenes, in order. "+
		"For each scene give the time it starts in whole seconds and one sentence describing "+
		"what is visible: people, objects, setting, on-screen text and actions. "+
		"Respond with only a JSON array of objects with the keys \"timestamp\" and \"description\".", maxScenes)
}

func sceneSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"timestamp":   {Type: genai.TypeInteger, Description: "Scene start in whole seconds"},
				"description": {Type: genai.TypeString, Description: "What is visible in the scene"},
			},
			Required:         []string{"timestamp", "description"},
			PropertyOrdering: []string{"timestamp", "description"},
		},
	}
}
