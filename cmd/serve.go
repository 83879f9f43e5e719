package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/videomind-api/api"
	"github.com/killallgit/videomind-api/api/middleware"
	"github.com/killallgit/videomind-api/api/types"
	"github.com/killallgit/videomind-api/internal/services/cache"
	"github.com/killallgit/videomind-api/internal/services/llm"
	"github.com/killallgit/videomind-api/internal/services/qa"
	"github.com/killallgit/videomind-api/internal/services/timestamps"
	"github.com/killallgit/videomind-api/internal/services/transcripts"
	"github.com/killallgit/videomind-api/internal/services/videos"
	"github.com/killallgit/videomind-api/internal/services/visualsearch"
	"github.com/killallgit/videomind-api/pkg/config"
	"github.com/killallgit/videomind-api/pkg/transcript"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the VideoMind API server with the configured settings.

The Gemini API key is read from GEMINI_API_KEY (or a .env file). Without
a key the server still starts, reports api_key_configured=false on /health
and answers analysis requests with an upstream error.

Example:
  videomind-api serve
  videomind-api serve --port 9090
  videomind-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := buildServer(ctx, cfg)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Info().Str("host", cfg.Server.Host).Int("port", cfg.Server.Port).Msg("VideoMind API server is ready to handle requests")

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server...")
	case runErr = <-serverErr:
		log.Error().Err(runErr).Msg("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return runErr
}

// buildServer wires the model clients, services and HTTP server from cfg
func buildServer(ctx context.Context, cfg *config.Config) (*api.Server, error) {
	generator, embedder, keyConfigured, err := buildModelClients(ctx, cfg)
	if err != nil {
		return nil, err
	}

	transcriptCache := cache.NewMemoryCache[[]transcript.Entry](memoryCacheConfig(cfg))
	fetcher := transcript.NewFetcher(transcript.FetchOptions{
		BaseURL:   cfg.Transcript.BaseURL,
		Languages: cfg.Transcript.Languages,
		Timeout:   cfg.Transcript.Timeout,
		UserAgent: cfg.Transcript.UserAgent,
		MaxSize:   cfg.Transcript.MaxSize,
	})

	videoService := videos.NewService(
		generator,
		embedder,
		transcripts.NewService(fetcher, transcriptCache, cfg.Transcript.CacheTTL),
		timestamps.NewExtractor(generator, timestamps.Config{
			MaxDuration:          cfg.Timestamps.MaxDuration,
			DescriptionMaxLength: cfg.Timestamps.DescriptionMaxLength,
		}),
		qa.NewEngine(generator, qa.Config{
			ChunkSize:      cfg.QA.ChunkSize,
			MaxConcurrency: cfg.QA.MaxConcurrency,
		}),
		visualsearch.NewIndex(),
		videos.WithMaxDuration(cfg.Timestamps.MaxDuration),
		videos.WithDescriptionMaxLength(cfg.Timestamps.DescriptionMaxLength),
		videos.WithEmbeddingConcurrency(cfg.Embedding.Concurrency),
		videos.WithMaxScenes(cfg.VisualSearch.MaxScenes),
	)

	responseCache := cache.NewMemoryCache[middleware.CachedResponse](memoryCacheConfig(cfg))

	server := api.NewServer(api.ServerConfig{
		Address:        fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		CORS: api.CORSConfig{
			Origins: cfg.Security.CORSOrigins,
			Methods: cfg.Security.CORSMethods,
			Headers: cfg.Security.CORSHeaders,
		},
		RequestID: cfg.Security.EnableRequestID,
		Routes: api.RouteOptions{
			RateLimitEnabled:  cfg.RateLimiting.Enabled,
			RequestsPerSecond: cfg.RateLimiting.RequestsPerSecond,
			Burst:             cfg.RateLimiting.Burst,
			ResponseCache: middleware.CacheConfig{
				Cache:   responseCache,
				TTL:     cfg.Cache.Responses.TTL,
				Enabled: cfg.Cache.Responses.Enabled,
			},
		},
	})

	server.SetDependencies(&types.Dependencies{
		VideoService:     videoService,
		APIKeyConfigured: keyConfigured,
		RequestTimeout:   cfg.Server.RequestTimeout,
		Build: types.BuildInfo{
			Version:   Version,
			GitCommit: GitCommit,
			BuildTime: BuildTime,
		},
	})
	server.OnShutdown(transcriptCache.Stop)
	server.OnShutdown(responseCache.Stop)
	server.Initialize()

	return server, nil
}

// buildModelClients creates the generator and embedder. A missing Gemini key
// is not fatal: the clients are replaced by llm.Unavailable so the server
// can still report its health.
func buildModelClients(ctx context.Context, cfg *config.Config) (llm.Generator, llm.Embedder, bool, error) {
	var (
		generator llm.Generator
		embedder  llm.Embedder
	)

	keyConfigured := cfg.Gemini.APIKey != ""
	if keyConfigured {
		gemini, err := llm.NewGeminiService(ctx, llm.GeminiConfig{
			APIKey:             cfg.Gemini.APIKey,
			Model:              cfg.Gemini.Model,
			EmbeddingModel:     cfg.Gemini.EmbeddingModel,
			EmbeddingDimension: cfg.Gemini.EmbeddingDimension,
			Temperature:        cfg.Gemini.Temperature,
			Timeout:            cfg.Gemini.Timeout,
			RetryAttempts:      cfg.Gemini.RetryAttempts,
			RetryDelay:         cfg.Gemini.RetryDelay,
		})
		if err != nil {
			return nil, nil, false, fmt.Errorf("failed to create gemini client: %w", err)
		}
		generator, embedder = gemini, gemini
	} else {
		log.Warn().Msg("GEMINI_API_KEY is not set; analysis endpoints will fail until it is configured")
		unavailable := llm.Unavailable{Service: "gemini", Reason: errors.New("no API key configured")}
		generator, embedder = unavailable, unavailable
	}

	if cfg.Embedding.Provider == "openai" {
		openaiEmbedder, err := llm.NewOpenAIEmbedder(llm.OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.EmbeddingModel,
			Timeout: cfg.OpenAI.Timeout,
		})
		if err != nil {
			return nil, nil, false, fmt.Errorf("failed to create openai embedder: %w", err)
		}
		embedder = openaiEmbedder
	}

	return generator, embedder, keyConfigured, nil
}

func memoryCacheConfig(cfg *config.Config) cache.Config {
	return cache.Config{
		DefaultTTL:      cfg.Cache.Memory.DefaultTTL,
		CleanupInterval: cfg.Cache.Memory.CleanupInterval,
		MaxEntries:      cfg.Cache.Memory.MaxEntries,
	}
}
