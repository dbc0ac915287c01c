// ABOUTME: OpenAI client for embeddings, chat completions, and name extraction
// ABOUTME: Embeddings surface ErrEmbeddingUnavailable and are never retried
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"bookchat/internal/config"
)

// ErrEmbeddingUnavailable marks failures of the embedding encoder. Callers
// surface it; retry is reserved for generation.
var ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

// ChatCompleter is the slice of the OpenAI API the generation side needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client wraps the OpenAI API for this backend.
type Client struct {
	api            *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	timeout        time.Duration
}

// NewClient creates a client from config. The API key is required.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &Client{
		api:            openai.NewClient(cfg.OpenAIKey),
		chatModel:      cfg.ChatModel,
		embeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		timeout:        cfg.Timeout,
	}, nil
}

// Embed maps text to a fixed-dimension embedding vector. Failures wrap
// ErrEmbeddingUnavailable and are not retried here.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: c.embeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: no embeddings returned", ErrEmbeddingUnavailable)
	}

	embedding32 := resp.Data[0].Embedding
	embedding64 := make([]float64, len(embedding32))
	for i, v := range embedding32 {
		embedding64[i] = float64(v)
	}
	return embedding64, nil
}

// CreateChatCompletion delegates to the underlying API so the client
// satisfies ChatCompleter.
func (c *Client) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return c.api.CreateChatCompletion(ctx, req)
}

// ChatModel returns the configured chat model name.
func (c *Client) ChatModel() string {
	return c.chatModel
}

// ExtractCharacterNames asks the chat model for the main fictional
// characters in the text, one per line.
func (c *Client) ExtractCharacterNames(ctx context.Context, text string) ([]string, error) {
	systemPrompt := `Extract only the main fictional characters' names (people or beings) from the text.
Do NOT include places, titles of books, events, or organizations.
Return each name on a new line, no numbering, no extra words.`

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Text:\n%s", text),
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("character extraction: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("character extraction: no completion choices returned")
	}

	return ParseNameLines(resp.Choices[0].Message.Content), nil
}

// ParseNameLines splits model output into candidate names, stripping bullet
// punctuation and blank lines.
func ParseNameLines(content string) []string {
	var names []string
	for _, line := range strings.Split(content, "\n") {
		name := strings.Trim(line, "-•* \t")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// IsRateLimited reports whether the error is an HTTP 429 from the API.
func IsRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
