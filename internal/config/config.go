// ABOUTME: Centralized configuration for the bookchat backend
// ABOUTME: Loads defaults, then an optional YAML file, then environment overrides
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the bookchat backend.
type Config struct {
	// Server settings
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// OpenAI settings
	OpenAIKey      string        `yaml:"-"`
	ChatModel      string        `yaml:"chat_model"`
	EmbeddingModel string        `yaml:"embedding_model"`
	Timeout        time.Duration `yaml:"-"`

	// Retrieval pipeline settings
	ChunkSize     int `yaml:"chunk_size"`
	TopK          int `yaml:"top_k"`
	HistoryWindow int `yaml:"history_window"`

	// Generation retry settings
	MaxAttempts int           `yaml:"max_attempts"`
	RetryDelay  time.Duration `yaml:"-"`
}

// Load reads configuration from environment variables on top of defaults.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads an optional YAML config file, then applies environment
// overrides. An empty path skips the file step.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{
		Host:           "0.0.0.0",
		Port:           8000,
		ChatModel:      "gpt-4o-mini",
		EmbeddingModel: "text-embedding-3-small",
		Timeout:        30 * time.Second,
		ChunkSize:      2000,
		TopK:           3,
		HistoryWindow:  5,
		MaxAttempts:    3,
		RetryDelay:     time.Second,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Host = getEnv("BOOKCHAT_HOST", cfg.Host)
	cfg.Port = getEnvInt("BOOKCHAT_PORT", cfg.Port)
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.ChatModel = getEnv("BOOKCHAT_CHAT_MODEL", cfg.ChatModel)
	cfg.EmbeddingModel = getEnv("BOOKCHAT_EMBEDDING_MODEL", cfg.EmbeddingModel)
	cfg.Timeout = getEnvDuration("OPENAI_TIMEOUT", cfg.Timeout)
	cfg.ChunkSize = getEnvInt("BOOKCHAT_CHUNK_SIZE", cfg.ChunkSize)
	cfg.TopK = getEnvInt("BOOKCHAT_TOP_K", cfg.TopK)
	cfg.HistoryWindow = getEnvInt("BOOKCHAT_HISTORY_WINDOW", cfg.HistoryWindow)
	cfg.MaxAttempts = getEnvInt("BOOKCHAT_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.RetryDelay = getEnvDuration("BOOKCHAT_RETRY_DELAY", cfg.RetryDelay)

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("BOOKCHAT_PORT must be 1-65535, got %d", c.Port)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("BOOKCHAT_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.TopK < 1 {
		return fmt.Errorf("BOOKCHAT_TOP_K must be positive, got %d", c.TopK)
	}
	if c.HistoryWindow < 1 {
		return fmt.Errorf("BOOKCHAT_HISTORY_WINDOW must be positive, got %d", c.HistoryWindow)
	}
	if c.MaxAttempts < 1 || c.MaxAttempts > 10 {
		return fmt.Errorf("BOOKCHAT_MAX_ATTEMPTS must be 1-10, got %d", c.MaxAttempts)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
