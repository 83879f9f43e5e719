package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Gemini       GeminiConfig       `mapstructure:"gemini"`
	OpenAI       OpenAIConfig       `mapstructure:"openai"`
	Embedding    EmbeddingConfig    `mapstructure:"embedding"`
	Transcript   TranscriptConfig   `mapstructure:"transcript"`
	Timestamps   TimestampsConfig   `mapstructure:"timestamps"`
	QA           QAConfig           `mapstructure:"qa"`
	VisualSearch VisualSearchConfig `mapstructure:"visual_search"`
	Cache        CacheConfig        `mapstructure:"cache"`
	RateLimiting RateLimitConfig    `mapstructure:"rate_limiting"`
	Security     SecurityConfig     `mapstructure:"security"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// GeminiConfig contains generative model settings
type GeminiConfig struct {
	APIKey             string        `mapstructure:"api_key"`
	Model              string        `mapstructure:"model"`
	EmbeddingModel     string        `mapstructure:"embedding_model"`
	EmbeddingDimension int           `mapstructure:"embedding_dimension"`
	Temperature        float32       `mapstructure:"temperature"`
	Timeout            time.Duration `mapstructure:"timeout"`
	RetryAttempts      int           `mapstructure:"retry_attempts"`
	RetryDelay         time.Duration `mapstructure:"retry_delay"`
}

// OpenAIConfig contains the alternative embedding provider settings
type OpenAIConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	EmbeddingModel string        `mapstructure:"embedding_model"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// EmbeddingConfig selects the embedding provider
type EmbeddingConfig struct {
	// Provider is "gemini" or "openai"
	Provider    string `mapstructure:"provider"`
	Concurrency int    `mapstructure:"concurrency"`
}

// TranscriptConfig contains caption fetch settings
type TranscriptConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Languages []string      `mapstructure:"languages"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
	MaxSize   int64         `mapstructure:"max_size"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

// TimestampsConfig contains extraction limits
type TimestampsConfig struct {
	MaxDuration          int `mapstructure:"max_duration"`
	DescriptionMaxLength int `mapstructure:"description_max_length"`
}

// QAConfig contains chunked question answering settings
type QAConfig struct {
	ChunkSize      int `mapstructure:"chunk_size"`
	MaxConcurrency int `mapstructure:"max_concurrency"`
}

// VisualSearchConfig contains scene indexing settings
type VisualSearchConfig struct {
	MaxScenes int `mapstructure:"max_scenes"`
}

// CacheConfig contains cache settings
type CacheConfig struct {
	Memory    MemoryCacheConfig   `mapstructure:"memory"`
	Responses ResponseCacheConfig `mapstructure:"responses"`
}

// ResponseCacheConfig controls caching of analyze and timestamp responses
type ResponseCacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// MemoryCacheConfig contains in-memory cache settings
type MemoryCacheConfig struct {
	DefaultTTL      time.Duration `mapstructure:"default_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	MaxEntries      int           `mapstructure:"max_entries"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// RequestsPerSecond and Burst apply to the analysis endpoints
	RequestsPerSecond int `mapstructure:"requests_per_second"`
	Burst             int `mapstructure:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	CORSOrigins     []string `mapstructure:"cors_origins"`
	CORSMethods     []string `mapstructure:"cors_methods"`
	CORSHeaders     []string `mapstructure:"cors_headers"`
	EnableRequestID bool     `mapstructure:"enable_request_id"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
