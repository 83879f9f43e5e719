package visualsearch

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/killallgit/videomind-api/internal/models"
)

// DefaultTopK is the number of results returned when none is requested
const DefaultTopK = 3

// ErrNotIndexed is returned when searching a video with no descriptions
var ErrNotIndexed = errors.New("video has not been indexed")

// Index is an in-memory store of embedded scene descriptions per video.
// Index replaces a video's whole entry at once, so a search sees either the
// old descriptions or the new ones.
type Index struct {
	mu      sync.RWMutex
	entries map[string][]models.VideoDescription
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{entries: make(map[string][]models.VideoDescription)}
}

// Index stores descriptions for videoID, replacing any earlier entry
func (idx *Index) Index(videoID string, descriptions []models.VideoDescription) {
	stored := make([]models.VideoDescription, len(descriptions))
	copy(stored, descriptions)

	idx.mu.Lock()
	idx.entries[videoID] = stored
	idx.mu.Unlock()
}

// Has reports whether videoID has stored descriptions
func (idx *Index) Has(videoID string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries[videoID]) > 0
}

// Len returns the number of descriptions stored for videoID
func (idx *Index) Len(videoID string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries[videoID])
}

// Search ranks the stored descriptions of videoID by cosine similarity to
// query and returns the best topK. Ties keep insertion order.
func (idx *Index) Search(videoID string, query []float32, topK int) ([]models.VisualSearchResult, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	idx.mu.RLock()
	descriptions := idx.entries[videoID]
	idx.mu.RUnlock()

	if len(descriptions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotIndexed, videoID)
	}

	results := make([]models.VisualSearchResult, len(descriptions))
	for i, d := range descriptions {
		results[i] = models.VisualSearchResult{
			Timestamp:       d.Timestamp,
			Description:     d.Description,
			SimilarityScore: CosineSimilarity(query, d.Embedding),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// CosineSimilarity returns dot(a,b)/(|a||b|). It is 0 when either vector has
// zero norm or the lengths differ.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, dot/math.Sqrt(normA*normB)))
}
