package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "SEARCH_DEPTH", "MAX_SEARCH_DEPTH", "SEARCH_CACHE_LIMIT", "LOG_LEVEL", "LOG_PRETTY"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10, cfg.Search.Depth)
	assert.Equal(t, 16, cfg.Search.MaxDepth)
	assert.Equal(t, 1<<20, cfg.Search.CacheLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("SEARCH_DEPTH", "30")
	t.Setenv("MAX_SEARCH_DEPTH", "8")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_PRETTY", "true")
	cfg := Load()
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, 8, cfg.Search.Depth)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("SEARCH_DEPTH", "deep")
	t.Setenv("LOG_PRETTY", "maybe")
	cfg := Load()
	assert.Equal(t, 10, cfg.Search.Depth)
	assert.False(t, cfg.LogPretty)
}

func TestClampDepth(t *testing.T) {
	s := Search{Depth: 4, MaxDepth: 6}
	for in, want := range map[int]int{-2: 4, 0: 4, 1: 1, 5: 5, 9: 6} {
		assert.Equal(t, want, s.ClampDepth(in), "depth %d", in)
	}
}

func TestSetupLogging(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	SetupLogging(Config{LogLevel: "warn"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	SetupLogging(Config{LogLevel: "nonsense"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
