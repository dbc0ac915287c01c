// ABOUTME: Generator wraps chat completion with bounded retry on rate limits
// ABOUTME: Never returns an error; every failure resolves to a marked reply string
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"bookchat/internal/config"
	"bookchat/internal/util"
)

const (
	// ErrorReplyPrefix marks user-visible error replies so callers can
	// detect them without parsing free text.
	ErrorReplyPrefix = "⚠️ "

	// UnavailableReply is returned when every attempt was rate-limited.
	UnavailableReply = ErrorReplyPrefix + "The service is busy right now. Please try again in a moment."
)

// Generator produces character replies through a rate-limited external
// service. Rate-limit errors are retried with exponential backoff and
// jitter; any other error ends the sequence immediately.
type Generator struct {
	client      ChatCompleter
	model       string
	maxAttempts int
	baseDelay   time.Duration
	sleep       util.Sleeper
}

// NewGenerator creates a Generator over the given chat client.
func NewGenerator(client ChatCompleter, model string, cfg *config.Config) *Generator {
	return &Generator{
		client:      client,
		model:       model,
		maxAttempts: cfg.MaxAttempts,
		baseDelay:   cfg.RetryDelay,
		sleep:       time.Sleep,
	}
}

// SetSleeper replaces the backoff sleeper. Tests use this to run without
// real delays.
func (g *Generator) SetSleeper(s util.Sleeper) {
	g.sleep = s
}

// Generate produces a reply for the prompt. All failures resolve to a reply
// string: rate-limit exhaustion yields UnavailableReply, any other error an
// inline error reply carrying the detail.
func (g *Generator) Generate(ctx context.Context, prompt string) string {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		})

		if err == nil {
			if len(resp.Choices) == 0 {
				return ErrorReplyPrefix + "The model returned an empty response."
			}
			return strings.TrimSpace(resp.Choices[0].Message.Content)
		}

		if !IsRateLimited(err) {
			return fmt.Sprintf("%sSomething went wrong while generating a reply: %v", ErrorReplyPrefix, err)
		}

		g.sleep(util.BackoffDelay(g.baseDelay, attempt))
	}

	return UnavailableReply
}

// IsErrorReply reports whether a reply is a marked error reply rather than
// generated text.
func IsErrorReply(reply string) bool {
	return strings.HasPrefix(reply, ErrorReplyPrefix)
}
