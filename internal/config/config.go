package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

type Search struct {
	// Depth is the search depth used when a match does not ask for one.
	Depth int
	// MaxDepth caps what a match may ask for.
	MaxDepth int
	// CacheLimit is the entry count past which a match drops its search
	// cache after a move. Zero means no limit.
	CacheLimit int
}

type Config struct {
	HTTPAddr  string
	GinMode   string
	LogLevel  string
	LogPretty bool
	Search    Search
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

func Load() Config {
	cfg := Config{
		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		GinMode:   getenv("GIN_MODE", "release"),
		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty: getenvBool("LOG_PRETTY", false),
		Search: Search{
			Depth:      getenvInt("SEARCH_DEPTH", 10),
			MaxDepth:   getenvInt("MAX_SEARCH_DEPTH", 16),
			CacheLimit: getenvInt("SEARCH_CACHE_LIMIT", 1<<20),
		},
	}
	if cfg.Search.MaxDepth < 1 {
		cfg.Search.MaxDepth = 1
	}
	cfg.Search.Depth = cfg.Search.ClampDepth(cfg.Search.Depth)
	return cfg
}

// ClampDepth maps a requested depth into [1, MaxDepth]; zero or negative
// means Depth.
func (s Search) ClampDepth(depth int) int {
	if depth <= 0 {
		depth = s.Depth
	}
	if depth < 1 {
		depth = 1
	}
	if depth > s.MaxDepth {
		depth = s.MaxDepth
	}
	return depth
}

var (
	once   sync.Once
	global Config
)

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	once.Do(func() { global = Load() })
	return &global
}
