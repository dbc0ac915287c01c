// ABOUTME: Main entry point for the bookchat HTTP server
// ABOUTME: Initializes config, engine, and server; direct alternative to `bookchat serve`
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bookchat/internal/characters"
	"bookchat/internal/config"
	"bookchat/internal/core"
	"bookchat/internal/extract"
	"bookchat/internal/llm"
	"bookchat/internal/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - embeddings and chat will not work")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := llm.NewClient(cfg)
	if err != nil {
		logger.Fatal("initialize OpenAI client", zap.Error(err))
	}

	engine := core.NewEngine(
		client,
		llm.NewGenerator(client, cfg.ChatModel, cfg),
		characters.NewDetector(client, logger),
		core.Options{
			ChunkSize:     cfg.ChunkSize,
			TopK:          cfg.TopK,
			HistoryWindow: cfg.HistoryWindow,
		},
		logger,
	)

	srv := server.NewServer(engine, extract.NewExtractor(), cfg, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
