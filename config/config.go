package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Hint policies for sale_type_hint precedence
const (
	HintPolicyAlways   = "always"
	HintPolicySaleOnly = "sale_only"
)

// Config represents the application configuration
type Config struct {
	// Brand source configuration
	BrandsCSVPath  string
	BrandsYAMLPath string

	// Report output
	OutputPath string

	// Fetch configuration
	UserAgent    string
	FetchTimeout time.Duration
	RequestDelay time.Duration

	// Pipeline profile
	EnableImages bool
	HintPolicy   string

	// Watch loop configuration (0 means a single pass)
	WatchInterval time.Duration

	// Page cache configuration
	MemcacheAddr string
	PageCacheTTL time.Duration

	// Optional Redis stream mirroring
	PublishReports       bool
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Environment
	Environment string
}

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36 salewatcher/1.0"

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAXLEN", "500"))
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "20"))
	requestDelay, _ := strconv.Atoi(getEnv("REQUEST_DELAY_MS", "0"))
	watchInterval, _ := strconv.Atoi(getEnv("WATCH_INTERVAL_SECONDS", "0"))
	cacheTTL, _ := strconv.Atoi(getEnv("PAGE_CACHE_TTL_SECONDS", "300"))

	return Config{
		BrandsCSVPath:        getEnv("BRANDS_CSV_PATH", "brands.csv"),
		BrandsYAMLPath:       getEnv("BRANDS_YAML_PATH", "config.yaml"),
		OutputPath:           getEnv("OUT_JSON_PATH", "outputs/sales.json"),
		UserAgent:            getEnv("FETCH_USER_AGENT", defaultUserAgent),
		FetchTimeout:         time.Duration(fetchTimeout) * time.Second,
		RequestDelay:         time.Duration(requestDelay) * time.Millisecond,
		EnableImages:         getEnvBool("ENABLE_IMAGES", true),
		HintPolicy:           getEnv("HINT_POLICY", HintPolicyAlways),
		WatchInterval:        time.Duration(watchInterval) * time.Second,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", ""),
		PageCacheTTL:         time.Duration(cacheTTL) * time.Second,
		PublishReports:       getEnvBool("PUBLISH_REPORTS", false),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "sales"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLen,
		Environment:          getEnv("SALEWATCHER_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.BrandsCSVPath == "" && c.BrandsYAMLPath == "" {
		return fmt.Errorf("at least one brand source path must be set")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %v", c.FetchTimeout)
	}
	if c.RequestDelay < 0 {
		return fmt.Errorf("request delay must not be negative, got %v", c.RequestDelay)
	}
	if c.WatchInterval < 0 {
		return fmt.Errorf("watch interval must not be negative, got %v", c.WatchInterval)
	}
	if c.HintPolicy != HintPolicyAlways && c.HintPolicy != HintPolicySaleOnly {
		return fmt.Errorf("hint policy must be %q or %q, got %q", HintPolicyAlways, HintPolicySaleOnly, c.HintPolicy)
	}
	if c.PublishReports {
		if c.RedisAddr == "" {
			return fmt.Errorf("redis address is required when report publishing is enabled")
		}
		if c.RedisStream == "" {
			return fmt.Errorf("redis stream prefix is required when report publishing is enabled")
		}
		if c.RedisStreamCount < 1 {
			return fmt.Errorf("redis stream count must be at least 1, got %d", c.RedisStreamCount)
		}
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
