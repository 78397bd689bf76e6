package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type UpdateLeadUseCase struct {
	LeadRepo   LeadRepositoryInterface
	ClientRepo ClientRepositoryInterface
	Scorer     LeadScorer
}

func NewUpdateLeadUseCase(
	leadRepo LeadRepositoryInterface,
	clientRepo ClientRepositoryInterface,
	scorer LeadScorer,
) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{
		LeadRepo:   leadRepo,
		ClientRepo: clientRepo,
		Scorer:     scorer,
	}
}

// Execute fetches the lead, applies the submitted fields and recomputes the
// score. The uniqueness probe is skipped when the submitted email equals the
// lead's current one, so a lead can always re-submit itself unchanged.
// The companion client row keeps its original email.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	verrs := ValidationErrors(ValidateLeadFields(input.Name, input.Email, input.Phone))

	if input.Email != "" && input.Email != lead.Email {
		exists, err := uc.ClientRepo.EmailExists(ctx, input.Email, lead.ID)
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

	lead.Name = input.Name
	lead.Email = input.Email
	lead.Phone = input.Phone
	lead.UpdatedAt = time.Now()

	if err := uc.LeadRepo.Update(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, err
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to update lead: " + err.Error(),
		}
	}

	// Score is recomputed on every update, never carried over.
	lead.Score = uc.Scorer.ScoreLead(lead)
	if err := uc.LeadRepo.UpdateScore(ctx, lead.ID, lead.Score); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead score: " + err.Error(),
		}
	}

	return lead, nil
}
