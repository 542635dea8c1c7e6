// Package llm talks to hosted language models on behalf of the study
// assistant. Providers share one request shape; structured replies are
// validated against a JSON Schema before they reach callers.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
type Provider interface {
	// Generate sends a prompt and returns the model's reply. When
	// req.Schema is set the reply is constrained to, and validated
	// against, that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for JSON output matching the definition.
	Schema *Schema

	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero leaves the
	// provider default in place.
	Temperature float64
}

// Message is a single turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserMessage is shorthand for a single user turn.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema (tool or response-format name),
	// kebab-case, e.g. "study-feedback".
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons, normalised across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response holds the LLM's output.
type Response struct {
	// Text is the raw reply.
	Text string

	// Content is the validated JSON reply. Only set when the request
	// carried a Schema.
	Content json.RawMessage

	Usage      Usage
	Model      string
	StopReason string
}

// Decode unmarshals the structured reply into v.
func (r *Response) Decode(v any) error {
	if len(r.Content) == 0 {
		return &ErrInvalidResponse{Err: errNoStructuredContent}
	}
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &ErrInvalidResponse{Content: r.Content, Err: err}
	}
	return nil
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish builds the Response shared by every provider: it validates the
// text against the request schema when one is set.
func finish(req Request, text, model, stop string, usage Usage) (*Response, error) {
	resp := &Response{Text: text, Usage: usage, Model: model, StopReason: stop}
	if req.Schema == nil {
		return resp, nil
	}
	if stop == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: json.RawMessage(text)}
	}
	raw := json.RawMessage(text)
	if err := validateResponse(req.Schema, raw); err != nil {
		return nil, err
	}
	resp.Content = raw
	return resp, nil
}
