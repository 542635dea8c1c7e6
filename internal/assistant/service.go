// Package assistant is the portal's AI study helper: free-form chat and
// structured feedback on simulation performance.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/llm"
	"github.com/saketh8887/medconnect/internal/profile"
)

var (
	// ErrUnavailable means no LLM provider is configured. Callers show a
	// notice instead of an error.
	ErrUnavailable = errors.New("assistant is not configured")

	ErrEmptyQuestion = errors.New("question is empty")
)

// Config tunes the requests the assistant sends.
type Config struct {
	ChatMaxTokens     int
	FeedbackMaxTokens int
	Temperature       float64

	// HistoryLimit caps how many earlier turns are sent with a question.
	HistoryLimit int
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		ChatMaxTokens:     600,
		FeedbackMaxTokens: 900,
		Temperature:       0.4,
		HistoryLimit:      10,
	}
}

// AIFeedback is the mentor's structured review.
type AIFeedback struct {
	WeakSpots     []string `json:"weakSpots"`
	MasteredAreas []string `json:"masteredAreas"`
	ActionPlan    []string `json:"actionPlan"`
	FocusTopics   []string `json:"focusTopics"`
	Encouragement string   `json:"encouragement"`
}

// Performance is the input to Feedback besides the user.
type Performance struct {
	Tasks      []catalog.TaskPerformance
	StudyHours float64
}

// Turn is one exchange shown in the chat panel.
type Turn struct {
	Role llm.Role
	Text string
	At   time.Time
}

// Service answers questions and produces feedback. A nil provider yields a
// service whose calls return ErrUnavailable.
type Service struct {
	provider llm.Provider
	catalog  *catalog.Catalog
	cfg      Config
}

// NewService creates the assistant.
func NewService(provider llm.Provider, cat *catalog.Catalog, cfg Config) *Service {
	return &Service{provider: provider, catalog: cat, cfg: cfg}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// Ask sends question with the tail of history and returns the reply text.
func (s *Service) Ask(ctx context.Context, history []Turn, question string) (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	if n := s.cfg.HistoryLimit; n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}
	msgs := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		msgs = append(msgs, llm.Message{Role: t.Role, Content: t.Text})
	}
	msgs = append(msgs, llm.UserMessage(question))

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, llm.PurposeChat), llm.Request{
		System:      chatSystemPrompt,
		Messages:    msgs,
		MaxTokens:   s.cfg.ChatMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("assistant chat: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// Feedback reviews the user's performance and returns schema-validated
// advice.
func (s *Service) Feedback(ctx context.Context, user *profile.UserProfile, perf Performance) (*AIFeedback, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	if user == nil {
		return nil, errors.New("feedback requires a user")
	}

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, llm.PurposeFeedback), llm.Request{
		System:      feedbackSystemPrompt,
		Messages:    []llm.Message{llm.UserMessage(feedbackUserMessage(s.catalog, user, perf))},
		Schema:      FeedbackSchema,
		MaxTokens:   s.cfg.FeedbackMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("assistant feedback: %w", err)
	}

	var out AIFeedback
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("parse feedback: %w", err)
	}
	return &out, nil
}
