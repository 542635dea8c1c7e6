package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saketh8887/medconnect/ent"
	"github.com/saketh8887/medconnect/ent/inquiry"
)

// InquiryStatus is the lifecycle state of an inquiry.
type InquiryStatus string

const (
	InquiryPending  InquiryStatus = "Pending"
	InquiryResolved InquiryStatus = "Resolved"
)

// Inquiry is a student question about a subject, optionally answered.
type Inquiry struct {
	ID          string
	StudentID   string
	StudentName string
	SubjectID   string
	Question    string
	Answer      string
	Status      InquiryStatus
	CreatedAt   time.Time
	AnsweredAt  *time.Time
}

// CreateInquiry stores a new pending inquiry and fills in its id and
// creation time.
func (s *Store) CreateInquiry(ctx context.Context, q *Inquiry) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("create inquiry: question is empty")
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	q.Status = InquiryPending
	q.CreatedAt = s.now().UTC()
	q.Answer = ""
	q.AnsweredAt = nil

	_, err := s.client.Inquiry.Create().
		SetID(q.ID).
		SetStudentID(q.StudentID).
		SetStudentName(q.StudentName).
		SetSubjectID(q.SubjectID).
		SetQuestion(q.Question).
		SetStatus(inquiry.StatusPending).
		SetCreatedAt(q.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

// ListInquiries returns a student's inquiries, or all of them when
// studentID is empty, newest first.
func (s *Store) ListInquiries(ctx context.Context, studentID string) ([]Inquiry, error) {
	query := s.client.Inquiry.Query().
		Order(ent.Desc(inquiry.FieldCreatedAt))
	if studentID != "" {
		query = query.Where(inquiry.StudentID(studentID))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	out := make([]Inquiry, len(rows))
	for i, r := range rows {
		out[i] = Inquiry{
			ID:          r.ID,
			StudentID:   r.StudentID,
			StudentName: r.StudentName,
			SubjectID:   r.SubjectID,
			Question:    r.Question,
			Answer:      r.Answer,
			Status:      InquiryStatus(r.Status),
			CreatedAt:   r.CreatedAt,
			AnsweredAt:  r.AnsweredAt,
		}
	}
	return out, nil
}

// ResolveInquiry records an answer and marks the inquiry resolved.
func (s *Store) ResolveInquiry(ctx context.Context, id, answer string) error {
	if strings.TrimSpace(answer) == "" {
		return fmt.Errorf("resolve inquiry %s: answer is empty", id)
	}
	err := s.client.Inquiry.UpdateOneID(id).
		SetAnswer(answer).
		SetStatus(inquiry.StatusResolved).
		SetAnsweredAt(s.now().UTC()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("resolve inquiry %s: %w", id, notFound(err))
	}
	return nil
}
