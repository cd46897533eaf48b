package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// ScanConfig controls the places fanout.
type ScanConfig struct {
	Workers        int
	MaxPerQuery    int
	PageDelay      time.Duration
	RequestTimeout time.Duration
	DefaultAPIKey  string
	PhoneRegion    string
}

// EnrichConfig controls the owner lookup.
type EnrichConfig struct {
	SearchURL string
	Timeout   time.Duration
}

// SiteConfig controls landing page generation and storage.
type SiteConfig struct {
	OpenAIBaseURL  string
	OpenAIModel    string
	GeminiEndpoint string
	GeminiModels   []string
	ImageBaseURL   string
	Timeout        time.Duration
	PageStore      string
	GCSBucket      string
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL          string
	JWTSecret            string
	TokenTTL             time.Duration
	OperatorEmail        string
	OperatorPasswordHash string
	Port                 string
	StaticDir            string
	BackupFile           string
	LogDevelopment       bool
	RateLimitSearch      RateLimitConfig
	RateLimitGenerate    RateLimitConfig
	Scan                 ScanConfig
	Enrich               EnrichConfig
	Site                 SiteConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		JWTSecret:            getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:             parseDuration(getEnv("JWT_TTL", "24h"), 24*time.Hour),
		OperatorEmail:        strings.TrimSpace(os.Getenv("OPERATOR_EMAIL")),
		OperatorPasswordHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
		Port:                 getEnv("PORT", "8080"),
		StaticDir:            getEnv("STATIC_DIR", "static"),
		BackupFile:           getEnv("BACKUP_FILE", "leads_backup.csv"),
		LogDevelopment:       parseBool(os.Getenv("LOG_DEVELOPMENT")),
		Scan: ScanConfig{
			Workers:        parseInt(getEnv("SCAN_WORKERS", "5"), 5),
			MaxPerQuery:    parseInt(getEnv("SCAN_MAX_PER_QUERY", "60"), 60),
			PageDelay:      parseDuration(getEnv("SCAN_PAGE_DELAY", "2s"), 2*time.Second),
			RequestTimeout: parseDuration(getEnv("PLACES_TIMEOUT", "10s"), 10*time.Second),
			DefaultAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
			PhoneRegion:    strings.ToUpper(getEnv("PHONE_REGION", "US")),
		},
		Enrich: EnrichConfig{
			SearchURL: getEnv("SEARCH_ENGINE_URL", "https://html.duckduckgo.com/html/"),
			Timeout:   parseDuration(getEnv("ENRICH_TIMEOUT", "10s"), 10*time.Second),
		},
		Site: SiteConfig{
			OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o"),
			GeminiEndpoint: getEnv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/"),
			GeminiModels:   parseList(getEnv("GEMINI_MODELS", "gemini-1.5-flash,gemini-pro")),
			ImageBaseURL:   getEnv("IMAGE_BASE_URL", "https://image.pollinations.ai/prompt/"),
			Timeout:        parseDuration(getEnv("AI_TIMEOUT", "60s"), 60*time.Second),
			PageStore:      strings.ToLower(getEnv("PAGE_STORE", "local")),
			GCSBucket:      os.Getenv("GCS_BUCKET"),
		},
	}

	search, err := parseRateLimit(getEnv("RATE_LIMIT_SEARCH", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SEARCH value: %w", err)
	}
	cfg.RateLimitSearch = search

	generate, err := parseRateLimit(getEnv("RATE_LIMIT_GENERATE", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_GENERATE value: %w", err)
	}
	cfg.RateLimitGenerate = generate

	switch cfg.Site.PageStore {
	case "local":
	case "gcs":
		if cfg.Site.GCSBucket == "" {
			return nil, fmt.Errorf("PAGE_STORE is gcs but GCS_BUCKET is not set")
		}
	default:
		return nil, fmt.Errorf("unsupported PAGE_STORE value: %s", cfg.Site.PageStore)
	}

	return cfg, nil
}

// AuthEnabled reports whether the operator login protects the API.
func (c *Config) AuthEnabled() bool {
	return c.OperatorEmail != ""
}

// BackupEnabled reports whether discovered businesses are appended to the backup file.
func (c *Config) BackupEnabled() bool {
	return c.BackupFile != "" && c.BackupFile != "-"
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func parseInt(input string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func parseBool(input string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(input))
	return err == nil && v
}

func parseList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
