package assistant

import (
	"context"

	"github.com/saketh8887/medconnect/internal/store"
)

type purposeRepo struct {
	purposes []string
}

func (r *purposeRepo) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	r.purposes = append(r.purposes, d.Purpose)
	return nil
}
