package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/queue"
)

type CreateLeadUseCase struct {
	LeadRepo   LeadRepositoryInterface
	ClientRepo ClientRepositoryInterface
	Scorer     LeadScorer
	Queue      QueueProducerInterface
}

func NewCreateLeadUseCase(
	leadRepo LeadRepositoryInterface,
	clientRepo ClientRepositoryInterface,
	scorer LeadScorer,
	queueProducer QueueProducerInterface,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		LeadRepo:   leadRepo,
		ClientRepo: clientRepo,
		Scorer:     scorer,
		Queue:      queueProducer,
	}
}

// Execute runs the create workflow: validate, insert the lead, insert its
// companion client, score the persisted lead, persist the score. Validation
// failure aborts before any write. A failed client insert compensates by
// deleting the just-inserted lead.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	verrs := ValidationErrors(ValidateLeadFields(input.Name, input.Email, input.Phone))

	if input.Email != "" {
		exists, err := uc.ClientRepo.EmailExists(ctx, input.Email, "")
		if err != nil {
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to check email uniqueness: " + err.Error(),
			}
		}
		if exists {
			verrs = append(verrs, ValidationError{"email", "has already been taken"})
		}
	}

	if len(verrs) > 0 {
		return nil, verrs
	}

	now := time.Now()
	lead := &entity.Lead{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		Email:     lead.Email,
		LeadID:    lead.ID,
		CreatedAt: now,
	}

	txn := NewTransaction()

	txn.AddOperation("create_lead", func(ctx context.Context) error {
		return uc.LeadRepo.Create(ctx, lead)
	})
	txn.AddCompensation("delete_lead", func(ctx context.Context) error {
		return uc.LeadRepo.Delete(ctx, lead.ID)
	})
	txn.AddOperation("create_client", func(ctx context.Context) error {
		return uc.ClientRepo.Create(ctx, client)
	})

	if err := txn.Execute(ctx); err != nil {
		// A concurrent create with the same email can pass the probe above
		// and lose the race at the unique index. The storage constraint is
		// the real enforcement point.
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &TechnicalError{
				Code:    "UNIQUE_VIOLATION",
				Message: "email was claimed by a concurrent request",
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead and client: " + err.Error(),
		}
	}

	lead.Score = uc.Scorer.ScoreLead(lead)
	if err := uc.LeadRepo.UpdateScore(ctx, lead.ID, lead.Score); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead score: " + err.Error(),
		}
	}

	// Best effort: the lead is already persisted, a broker hiccup must not
	// fail the request.
	if uc.Queue != nil {
		payload := queue.LeadCapturedPayload{
			LeadID:     lead.ID,
			Name:       lead.Name,
			Email:      lead.Email,
			Phone:      lead.Phone,
			Score:      lead.Score,
			CapturedAt: lead.CreatedAt,
		}
		if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
			log.Printf("WARNING: failed to publish lead-captured event for %s: %v", lead.ID, err)
		}
	}

	return lead, nil
}
