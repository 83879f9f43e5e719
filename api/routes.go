package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/videomind-api/api/analyze"
	"github.com/killallgit/videomind-api/api/chat"
	"github.com/killallgit/videomind-api/api/embeddings"
	"github.com/killallgit/videomind-api/api/health"
	"github.com/killallgit/videomind-api/api/middleware"
	"github.com/killallgit/videomind-api/api/questions"
	"github.com/killallgit/videomind-api/api/timestamps"
	"github.com/killallgit/videomind-api/api/types"
	"github.com/killallgit/videomind-api/api/version"
	"github.com/killallgit/videomind-api/api/visualsearch"
	_ "github.com/killallgit/videomind-api/docs/swagger"
)

// RouteOptions tune the analysis route group
type RouteOptions struct {
	RateLimitEnabled  bool
	RequestsPerSecond int
	Burst             int

	// ResponseCache, when enabled, serves repeated analyze and timestamp
	// requests from memory
	ResponseCache middleware.CacheConfig
}

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, opts RouteOptions, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Every analysis endpoint calls the model, so they share one limiter per client
	analysis := engine.Group("")
	if opts.RateLimitEnabled {
		analysis.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, opts.RequestsPerSecond, opts.Burst))
	}

	// Cached group: answers depend on the request body alone
	cached := analysis.Group("")
	cached.Use(middleware.ResponseCache(opts.ResponseCache))
	analyze.RegisterRoutes(cached, deps)
	timestamps.RegisterRoutes(cached, deps)

	chat.RegisterRoutes(analysis, deps)
	questions.RegisterRoutes(analysis, deps)

	// Indexing mutates state that search reads, neither can be cached
	embeddings.RegisterRoutes(analysis, deps)
	visualsearch.RegisterRoutes(analysis, deps)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
