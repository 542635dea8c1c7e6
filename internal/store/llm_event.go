package store

import (
	"context"
	"fmt"
	"time"

	"github.com/saketh8887/medconnect/ent"
	"github.com/saketh8887/medconnect/ent/llmrequestevent"
)

// LLMRequestEventData captures the data for a single assistant request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLMRequestEventData with its log position.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append access to the assistant request log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// AppendLLMRequest records an LLM API call event.
func (s *Store) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := s.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = s.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetTimestamp(s.now().UTC()).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// LLMEvents returns logged assistant requests, oldest first.
func (s *Store) LLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	query := s.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	out := make([]LLMRequestEvent, len(events))
	for i, e := range events {
		out[i] = entLLMEvent(e)
	}
	return out, nil
}

// LLMEvent fetches one logged request by id.
func (s *Store) LLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	e, err := s.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("LLM event %d: %w", id, notFound(err))
	}
	ev := entLLMEvent(e)
	return &ev, nil
}

func entLLMEvent(e *ent.LLMRequestEvent) LLMRequestEvent {
	return LLMRequestEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
