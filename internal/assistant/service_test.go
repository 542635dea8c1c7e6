package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/llm"
	"github.com/saketh8887/medconnect/internal/profile"
)

func sarah() *profile.UserProfile {
	u := catalog.InitialUsers()[1]
	u.RecordQuizScore("s1t1c1", 80)
	u.MarkTopicComplete("s1t1")
	return u
}

const validFeedback = `{
	"weakSpots": ["Valve recognition under time pressure"],
	"masteredAreas": ["Cardiac conduction basics"],
	"actionPlan": ["Repeat the valve task twice", "Review mitral anatomy"],
	"focusTopics": ["Valve Recognition"],
	"encouragement": "Your cardiology quiz score shows real progress."
}`

func TestUnavailableWithoutProvider(t *testing.T) {
	s := NewService(nil, catalog.Default(), DefaultConfig())
	assert.False(t, s.Available())

	_, err := s.Ask(context.Background(), nil, "what is preload?")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = s.Feedback(context.Background(), sarah(), Performance{})
	assert.ErrorIs(t, err, ErrUnavailable)

	var nilSvc *Service
	assert.False(t, nilSvc.Available())
}

func TestAskSendsTrimmedHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  Preload is end-diastolic stretch.  "})
	cfg := DefaultConfig()
	cfg.HistoryLimit = 2
	s := NewService(mock, catalog.Default(), cfg)

	history := []Turn{
		{Role: llm.RoleUser, Text: "old question", At: time.Now()},
		{Role: llm.RoleAssistant, Text: "old answer"},
		{Role: llm.RoleUser, Text: "what is afterload?"},
		{Role: llm.RoleAssistant, Text: "resistance to ejection"},
	}
	answer, err := s.Ask(context.Background(), history, "  and preload? ")
	require.NoError(t, err)
	assert.Equal(t, "Preload is end-diastolic stretch.", answer)

	req, ok := mock.LastCall()
	require.True(t, ok)
	require.Len(t, req.Messages, 3)
	assert.Equal(t, "what is afterload?", req.Messages[0].Content)
	assert.Equal(t, llm.RoleAssistant, req.Messages[1].Role)
	assert.Equal(t, "and preload?", req.Messages[2].Content)
	assert.Equal(t, chatSystemPrompt, req.System)
	assert.Nil(t, req.Schema)
}

func TestAskRejectsBlankQuestion(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock, catalog.Default(), DefaultConfig())
	_, err := s.Ask(context.Background(), nil, "   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Zero(t, mock.CallCount())
}

func TestAskWrapsProviderErrors(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("slow down")}})
	s := NewService(mock, catalog.Default(), DefaultConfig())
	_, err := s.Ask(context.Background(), nil, "hi")
	var rl *llm.ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestFeedbackDecodesStructuredReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validFeedback)})
	cat := catalog.Default()
	s := NewService(mock, cat, DefaultConfig())

	fb, err := s.Feedback(context.Background(), sarah(), Performance{Tasks: cat.Performance(), StudyHours: 12.5})
	require.NoError(t, err)
	assert.Equal(t, []string{"Valve recognition under time pressure"}, fb.WeakSpots)
	assert.Len(t, fb.ActionPlan, 2)
	assert.Contains(t, fb.Encouragement, "progress")

	req, _ := mock.LastCall()
	assert.Equal(t, FeedbackSchema, req.Schema)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Study hours logged: 12.5")
	assert.Contains(t, msg, "Valve Recognition (heart, Beginner): 3 attempts, 60% success")
	assert.Contains(t, msg, fmt.Sprintf("Topics completed: 1 of %d", cat.TopicCount()))
	assert.Contains(t, msg, "Average quiz score: 80%")
}

func TestFeedbackRejectsOffSchemaReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"weakSpots": "everything"}`)})
	s := NewService(mock, catalog.Default(), DefaultConfig())

	_, err := s.Feedback(context.Background(), sarah(), Performance{})
	var inv *llm.ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
}

func TestFeedbackPurposeIsLogged(t *testing.T) {
	repo := &purposeRepo{}
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validFeedback)}, llm.MockResponse{Text: "ok"})
	s := NewService(llm.WithLogging(mock, llm.ProviderMock, repo, nil), catalog.Default(), DefaultConfig())

	_, err := s.Feedback(context.Background(), sarah(), Performance{})
	require.NoError(t, err)
	_, err = s.Ask(context.Background(), nil, "hello")
	require.NoError(t, err)
	assert.Equal(t, []string{llm.PurposeFeedback, llm.PurposeChat}, repo.purposes)
}
