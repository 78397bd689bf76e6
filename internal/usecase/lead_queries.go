package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type GetLeadUseCase struct {
	LeadRepo LeadRepositoryInterface
}

func NewGetLeadUseCase(leadRepo LeadRepositoryInterface) *GetLeadUseCase {
	return &GetLeadUseCase{LeadRepo: leadRepo}
}

func (uc *GetLeadUseCase) Execute(ctx context.Context, id string) (*entity.Lead, error) {
	return uc.LeadRepo.FindByID(ctx, id)
}

type ListLeadsUseCase struct {
	LeadRepo LeadRepositoryInterface
}

func NewListLeadsUseCase(leadRepo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{LeadRepo: leadRepo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context) ([]entity.Lead, error) {
	return uc.LeadRepo.FindAll(ctx)
}
