package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindAll(ctx context.Context) ([]entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	UpdateScore(ctx context.Context, id string, score int) error
	Delete(ctx context.Context, id string) error
}

type ClientRepositoryInterface interface {
	Create(ctx context.Context, client *entity.Client) error

	// EmailExists reports whether any client row carries the email.
	// excludingLeadID, when non-empty, ignores the client paired with that
	// lead so an update does not collide with the lead's own record.
	EmailExists(ctx context.Context, email, excludingLeadID string) (bool, error)
}

// LeadScorer computes the interest score for a lead. Implementations must
// return a value in [1,100] and perform no persistence.
type LeadScorer interface {
	ScoreLead(lead *entity.Lead) int
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
