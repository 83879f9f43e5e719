package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/phuslu/log"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. VIDEOMIND_SERVER_PORT
const EnvPrefix = "VIDEOMIND"

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load("./config/settings.yaml", ".env")
	})

	return initErr
}

// load reads defaults, an optional config file and the environment.
// Missing files are not an error.
func load(configFile, envFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading env file %s: %w", envFile, err)
	}

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The bare provider variables work without the prefix
	_ = viper.BindEnv("gemini.api_key", EnvPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY")
	_ = viper.BindEnv("openai.api_key", EnvPrefix+"_OPENAI_API_KEY", "OPENAI_API_KEY")

	configPath := filepath.Clean(configFile)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	switch provider := viper.GetString("embedding.provider"); provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("invalid embedding provider %q: must be gemini or openai", provider)
	}

	if viper.GetInt("timestamps.max_duration") <= 0 {
		viper.Set("timestamps.max_duration", 7200)
	}
	if viper.GetInt("timestamps.description_max_length") <= 0 {
		viper.Set("timestamps.description_max_length", 200)
	}
	if viper.GetInt("qa.chunk_size") <= 0 {
		viper.Set("qa.chunk_size", 5000)
	}

	if viper.GetString("gemini.api_key") == "" {
		if isProduction() {
			return fmt.Errorf("gemini API key is required in production")
		}
		log.Warn().Msg("No Gemini API key configured, analysis endpoints will be unavailable")
	}

	return nil
}

func isProduction() bool {
	env := viper.GetString("environment")
	return env == "production" || env == "prod"
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Embedding.Provider != "gemini" && c.Embedding.Provider != "openai" {
		return fmt.Errorf("invalid embedding provider %q: must be gemini or openai", c.Embedding.Provider)
	}
	if c.Embedding.Provider == "openai" && c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai embedding provider requires openai.api_key")
	}

	if c.Timestamps.MaxDuration <= 0 {
		c.Timestamps.MaxDuration = 7200
	}
	if c.Timestamps.DescriptionMaxLength <= 0 {
		c.Timestamps.DescriptionMaxLength = 200
	}
	if c.QA.ChunkSize <= 0 {
		c.QA.ChunkSize = 5000
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 5*time.Minute)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.request_timeout", 4*time.Minute)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Gemini defaults
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.embedding_model", "gemini-embedding-001")
	viper.SetDefault("gemini.embedding_dimension", 768)
	viper.SetDefault("gemini.temperature", 0.2)
	viper.SetDefault("gemini.timeout", 2*time.Minute)
	viper.SetDefault("gemini.retry_attempts", 2)
	viper.SetDefault("gemini.retry_delay", 2*time.Second)

	// OpenAI defaults
	viper.SetDefault("openai.base_url", "")
	viper.SetDefault("openai.embedding_model", "text-embedding-3-small")
	viper.SetDefault("openai.timeout", 30*time.Second)

	// Embedding defaults
	viper.SetDefault("embedding.provider", "gemini")
	viper.SetDefault("embedding.concurrency", 4)

	// Transcript defaults
	viper.SetDefault("transcript.base_url", "https://www.youtube.com/api/timedtext")
	viper.SetDefault("transcript.languages", []string{"en"})
	viper.SetDefault("transcript.timeout", 30*time.Second)
	viper.SetDefault("transcript.user_agent", "VideoMindAPI/1.0")
	viper.SetDefault("transcript.max_size", 10485760)
	viper.SetDefault("transcript.cache_ttl", 1*time.Hour)

	// Extraction defaults
	viper.SetDefault("timestamps.max_duration", 7200)
	viper.SetDefault("timestamps.description_max_length", 200)
	viper.SetDefault("qa.chunk_size", 5000)
	viper.SetDefault("qa.max_concurrency", 4)
	viper.SetDefault("visual_search.max_scenes", 30)

	// Cache defaults
	viper.SetDefault("cache.memory.default_ttl", 30*time.Minute)
	viper.SetDefault("cache.memory.cleanup_interval", 1*time.Minute)
	viper.SetDefault("cache.memory.max_entries", 1000)
	viper.SetDefault("cache.responses.enabled", true)
	viper.SetDefault("cache.responses.ttl", 15*time.Minute)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 2)
	viper.SetDefault("rate_limiting.burst", 5)

	// Security defaults
	viper.SetDefault("security.cors_origins", []string{"http://localhost", "http://localhost:3000"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"})
	viper.SetDefault("security.enable_request_id", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
