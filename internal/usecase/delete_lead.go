package usecase

import (
	"context"
)

type DeleteLeadUseCase struct {
	LeadRepo LeadRepositoryInterface
}

func NewDeleteLeadUseCase(leadRepo LeadRepositoryInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{LeadRepo: leadRepo}
}

// Execute removes the lead row only. The companion client row is retained
// on purpose: it soft-keeps the captured contact and its email claim.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id string) error {
	if _, err := uc.LeadRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.LeadRepo.Delete(ctx, id)
}
