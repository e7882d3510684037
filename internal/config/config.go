package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ParallelSearch  bool
	CacheSize       int
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// Load reads the configuration from the environment, falling back to
// defaults for unset or unparsable values.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("TTT_HTTP_ADDR", ":8080"),
		LogLevel:        getenv("TTT_LOG_LEVEL", "info"),
		LogFormat:       getenv("TTT_LOG_FORMAT", "console"),
		ParallelSearch:  getenvBool("TTT_PARALLEL_SEARCH", false),
		CacheSize:       getenvInt("TTT_CACHE_SIZE", 4096),
		ShutdownTimeout: getenvDuration("TTT_SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}
