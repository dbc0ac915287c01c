// ABOUTME: Engine orchestrates upload (session rebuild) and character chat
// ABOUTME: Builds sessions off to the side and publishes them atomically
package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"bookchat/internal/storage"
)

// GuidanceReply is returned for chat requests arriving before any upload.
// It is a normal reply, not an error.
const GuidanceReply = "Please upload a book or website first."

// PreviewLength is the number of leading runes returned as the upload
// preview.
const PreviewLength = 500

// Embedder maps text to a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Generator produces a reply for a prompt. Implementations never fail past
// their boundary; failures come back as marked reply strings.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// CharacterDetector produces the ordered list of distinct character names
// for a document.
type CharacterDetector interface {
	Detect(ctx context.Context, text string) ([]string, error)
}

// Options carries the pipeline knobs.
type Options struct {
	ChunkSize     int
	TopK          int
	HistoryWindow int
}

// UploadResult is the outcome of a successful upload.
type UploadResult struct {
	TextPreview string   `json:"text_preview"`
	TotalChars  int      `json:"total_chars"`
	Characters  []string `json:"characters"`
}

// Engine is the retrieval-augmented chat pipeline over the single active
// document.
type Engine struct {
	chunker   *Chunker
	embedder  Embedder
	generator Generator
	detector  CharacterDetector
	sessions  *storage.SessionHolder
	history   *storage.HistoryStore
	topK      int
	window    int
	logger    *zap.Logger
}

// NewEngine wires the pipeline together.
func NewEngine(embedder Embedder, generator Generator, detector CharacterDetector, opts Options, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		chunker:   NewChunker(opts.ChunkSize),
		embedder:  embedder,
		generator: generator,
		detector:  detector,
		sessions:  storage.NewSessionHolder(),
		history:   storage.NewHistoryStore(),
		topK:      opts.TopK,
		window:    opts.HistoryWindow,
		logger:    logger,
	}
}

// Upload rebuilds the session from raw document text. The new session is
// assembled completely before a single atomic publish, so any failure
// leaves the previous session and history untouched.
func (e *Engine) Upload(ctx context.Context, text string) (*UploadResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("document is empty")
	}

	chunks := e.chunker.Split(text)
	vectors := make([][]float64, len(chunks))
	for i, chunk := range chunks {
		vec, err := e.embedder.Embed(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("embed chunk %d of %d: %w", i+1, len(chunks), err)
		}
		vectors[i] = vec
	}

	index, err := storage.NewIndex(chunks, vectors)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	characters, err := e.detector.Detect(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("detect characters: %w", err)
	}

	e.sessions.Publish(storage.NewSession(text, index, characters))
	e.history.Reset(characters)

	e.logger.Info("session rebuilt",
		zap.Int("total_chars", len(text)),
		zap.Int("chunks", len(chunks)),
		zap.Int("characters", len(characters)))

	return &UploadResult{
		TextPreview: preview(text, PreviewLength),
		TotalChars:  len(text),
		Characters:  characters,
	}, nil
}

// Chat produces an in-character reply to the message. Before any upload it
// returns GuidanceReply without touching the embedder or generator.
func (e *Engine) Chat(ctx context.Context, character, message string) (string, error) {
	session := e.sessions.Current()
	if session == nil {
		return GuidanceReply, nil
	}

	queryVec, err := e.embedder.Embed(ctx, message)
	if err != nil {
		return "", fmt.Errorf("embed message: %w", err)
	}

	contextChunks := session.Index.Search(queryVec, e.topK)
	recent := e.history.Recent(character, e.window)
	prompt := BuildPrompt(character, recent, contextChunks, message)

	reply := e.generator.Generate(ctx, prompt)
	if reply != "" {
		e.history.Append(character, message, reply)
	}

	e.logger.Debug("chat reply produced",
		zap.String("character", character),
		zap.Int("context_chunks", len(contextChunks)),
		zap.Int("history_turns", len(recent)))

	return reply, nil
}

// Characters returns the active session's roster, or nil before any upload.
func (e *Engine) Characters() []string {
	session := e.sessions.Current()
	if session == nil {
		return nil
	}
	return session.Characters
}

// HasSession reports whether a document has been uploaded.
func (e *Engine) HasSession() bool {
	return e.sessions.Current() != nil
}

// preview returns the first n runes of text.
func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
