package store

import (
	"context"
	"fmt"
	"time"

	"github.com/saketh8887/medconnect/ent"
	"github.com/saketh8887/medconnect/ent/studysession"
	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/profile"
)

// StudySession is one flushed interval of tracked study time.
type StudySession struct {
	Sequence  int64
	Timestamp time.Time
	UserID    string
	Hours     float64
}

// LogStudyTime appends hours to the current user's study log. Totals
// accumulate; nothing is overwritten.
func (s *Store) LogStudyTime(ctx context.Context, hours float64) error {
	id, err := s.Preference(ctx, PrefCurrentUser)
	if err != nil {
		return fmt.Errorf("log study time: %w", err)
	}
	if id == "" {
		return fmt.Errorf("log study time: %w", ErrNoSession)
	}
	return s.AppendStudySession(ctx, id, hours)
}

// AppendStudySession records hours for a specific user.
func (s *Store) AppendStudySession(ctx context.Context, userID string, hours float64) error {
	seq, err := s.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = s.client.StudySession.Create().
		SetSequence(seq).
		SetTimestamp(s.now().UTC()).
		SetUserID(userID).
		SetHours(hours).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save study session: %w", err)
	}
	return nil
}

// TotalStudyHours sums every logged interval of a user.
func (s *Store) TotalStudyHours(ctx context.Context, userID string) (float64, error) {
	hours, err := s.client.StudySession.Query().
		Where(studysession.UserID(userID)).
		Select(studysession.FieldHours).
		Float64s(ctx)
	if err != nil {
		return 0, fmt.Errorf("total study hours: %w", err)
	}
	var total float64
	for _, h := range hours {
		total += h
	}
	return total, nil
}

// StudySessions lists a user's logged intervals, oldest first.
func (s *Store) StudySessions(ctx context.Context, userID string, opts QueryOpts) ([]StudySession, error) {
	query := s.client.StudySession.Query().
		Where(studysession.UserID(userID)).
		Order(ent.Asc(studysession.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(studysession.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(studysession.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(studysession.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(studysession.TimestampLTE(opts.To))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query study sessions: %w", err)
	}

	out := make([]StudySession, len(rows))
	for i, r := range rows {
		out[i] = StudySession{
			Sequence:  r.Sequence,
			Timestamp: r.Timestamp,
			UserID:    r.UserID,
			Hours:     r.Hours,
		}
	}
	return out, nil
}

// RecordQuizScore stores a chapter quiz result. The chapter becomes
// complete, and its topic too once every chapter of the topic is complete.
// Returns the updated profile.
func (s *Store) RecordQuizScore(ctx context.Context, cat *catalog.Catalog, userID, chapterID string, score float64) (*profile.UserProfile, error) {
	u, err := s.User(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("record quiz score: %w", err)
	}

	u.RecordQuizScore(chapterID, score)
	u.MarkChapterComplete(chapterID)
	if t, ok := cat.TopicOf(chapterID); ok {
		done := true
		for _, ch := range t.Chapters {
			if !u.HasCompletedChapter(ch.ID) {
				done = false
				break
			}
		}
		if done {
			u.MarkTopicComplete(t.ID)
		}
	}

	if err := s.UpdateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("record quiz score: %w", err)
	}
	return u, nil
}
