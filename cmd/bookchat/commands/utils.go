// ABOUTME: Shared wiring helpers for CLI commands
// ABOUTME: Builds the engine, extractor, and logger from config
package commands

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bookchat/internal/characters"
	"bookchat/internal/config"
	"bookchat/internal/core"
	"bookchat/internal/extract"
	"bookchat/internal/llm"
)

// loadConfig loads .env and the effective configuration.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}
	return config.LoadFile(configPath)
}

// newLogger builds the process logger.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildEngine wires the chat pipeline from config.
func buildEngine(cfg *config.Config, logger *zap.Logger) (*core.Engine, *extract.Extractor, error) {
	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize OpenAI client: %w", err)
	}

	generator := llm.NewGenerator(client, cfg.ChatModel, cfg)
	detector := characters.NewDetector(client, logger)

	engine := core.NewEngine(client, generator, detector, core.Options{
		ChunkSize:     cfg.ChunkSize,
		TopK:          cfg.TopK,
		HistoryWindow: cfg.HistoryWindow,
	}, logger)

	return engine, extract.NewExtractor(), nil
}
