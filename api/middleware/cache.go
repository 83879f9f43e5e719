package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/internal/services/cache"
)

// CacheConfig holds configuration for cache middleware
type CacheConfig struct {
	Cache   cache.Cache[CachedResponse]
	TTL     time.Duration
	Enabled bool
}

// CachedResponse represents a cached HTTP response
type CachedResponse struct {
	Status      int
	Body        []byte
	ContentType string
	CachedAt    time.Time
	ETag        string
}

// responseWriter captures response for caching
type responseWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// ResponseCache caches successful JSON POST responses keyed by path and
// request body. Only mount it on endpoints whose answer depends on the body
// alone.
func ResponseCache(config CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled || config.Cache == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		if shouldBypassCache(c.Request) {
			c.Header("X-Cache", "BYPASS")
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			// oversized or broken body, let the handler report it
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		key := generateCacheKey(c.Request.URL.Path, body)
		ctx := c.Request.Context()

		if response, found := config.Cache.Get(ctx, key); found {
			c.Header("X-Cache", "HIT")
			c.Header("Age", fmt.Sprintf("%d", int(time.Since(response.CachedAt).Seconds())))
			c.Header("ETag", response.ETag)
			c.Data(response.Status, response.ContentType, response.Body)
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
			status:         http.StatusOK,
		}
		c.Writer = w

		c.Next()

		// Only cache successful responses
		if w.status == http.StatusOK && w.body.Len() > 0 {
			config.Cache.Set(ctx, key, CachedResponse{
				Status:      w.status,
				Body:        w.body.Bytes(),
				ContentType: w.Header().Get("Content-Type"),
				CachedAt:    time.Now(),
				ETag:        generateETag(w.body.Bytes()),
			}, config.TTL)
		}
	}
}

// shouldBypassCache checks if cache should be bypassed based on request headers
func shouldBypassCache(req *http.Request) bool {
	cacheControl := req.Header.Get("Cache-Control")
	if cacheControl == "" {
		return req.Header.Get("Pragma") == "no-cache"
	}

	for _, directive := range strings.Split(strings.ToLower(cacheControl), ",") {
		directive = strings.TrimSpace(directive)
		if directive == "no-cache" || directive == "no-store" || directive == "max-age=0" {
			return true
		}
	}

	return req.Header.Get("Pragma") == "no-cache"
}

// generateCacheKey hashes the path with the body. JSON bodies are
// re-encoded first so key order and whitespace do not matter.
func generateCacheKey(path string, body []byte) string {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		if canonical, err := json.Marshal(decoded); err == nil {
			body = canonical
		}
	}

	hash := sha256.New()
	hash.Write([]byte(path))
	hash.Write([]byte{0})
	hash.Write(body)
	return "response:" + hex.EncodeToString(hash.Sum(nil))
}

func generateETag(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}
