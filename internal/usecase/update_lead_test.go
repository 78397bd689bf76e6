package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func existingLead() *entity.Lead {
	return &entity.Lead{
		ID:        "lead-123",
		Name:      "John Doe",
		Email:     "john@example.com",
		Phone:     "1234567890",
		Score:     55,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

func TestUpdateLeadNotFound(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockClientRepo := new(MockClientRepository)
	mockScorer := new(MockLeadScorer)

	mockLeadRepo.On("FindByID", ctx, "missing").Return(nil, entity.ErrLeadNotFound)

	uc := usecase.NewUpdateLeadUseCase(mockLeadRepo, mockClientRepo, mockScorer)

	_, err := uc.Execute(ctx, "missing", usecase.UpdateLeadInput{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	mockLeadRepo.AssertNotCalled(t, "Update")
	mockScorer.AssertNotCalled(t, "ScoreLead")
}

func TestUpdateLeadUnchangedEmailSkipsUniquenessProbe(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockClientRepo := new(MockClientRepository)
	mockScorer := new(MockLeadScorer)

	mockLeadRepo.On("FindByID", ctx, "lead-123").Return(existingLead(), nil)
	mockLeadRepo.On("Update", ctx, mock.Anything).Return(nil)
	mockScorer.On("ScoreLead", mock.Anything).Return(61)
	mockLeadRepo.On("UpdateScore", ctx, "lead-123", 61).Return(nil)

	uc := usecase.NewUpdateLeadUseCase(mockLeadRepo, mockClientRepo, mockScorer)

	// Same email as the stored lead: re-submitting itself must pass without
	// consulting the clients table.
	lead, err := uc.Execute(ctx, "lead-123", usecase.UpdateLeadInput{
		Name:  "John Q. Doe",
		Email: "john@example.com",
		Phone: "1234567890",
	})

	assert.NoError(t, err)
	assert.Equal(t, "John Q. Doe", lead.Name)
	assert.Equal(t, 61, lead.Score)
	mockClientRepo.AssertNotCalled(t, "EmailExists")
}

func TestUpdateLeadChangedEmailConflicts(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockClientRepo := new(MockClientRepository)
	mockScorer := new(MockLeadScorer)

	mockLeadRepo.On("FindByID", ctx, "lead-123").Return(existingLead(), nil)
	mockClientRepo.On("EmailExists", ctx, "taken@example.com", "lead-123").Return(true, nil)

	uc := usecase.NewUpdateLeadUseCase(mockLeadRepo, mockClientRepo, mockScorer)

	_, err := uc.Execute(ctx, "lead-123", usecase.UpdateLeadInput{
		Name:  "John Doe",
		Email: "taken@example.com",
	})

	var verrs usecase.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ByField(), "email")
	mockLeadRepo.AssertNotCalled(t, "Update")
}

func TestUpdateLeadRecomputesScore(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockClientRepo := new(MockClientRepository)
	mockScorer := new(MockLeadScorer)

	mockLeadRepo.On("FindByID", ctx, "lead-123").Return(existingLead(), nil)
	mockClientRepo.On("EmailExists", ctx, "jane@example.com", "lead-123").Return(false, nil)
	mockLeadRepo.On("Update", ctx, mock.Anything).Return(nil)
	mockScorer.On("ScoreLead", mock.Anything).Return(93)
	mockLeadRepo.On("UpdateScore", ctx, "lead-123", 93).Return(nil)

	uc := usecase.NewUpdateLeadUseCase(mockLeadRepo, mockClientRepo, mockScorer)

	lead, err := uc.Execute(ctx, "lead-123", usecase.UpdateLeadInput{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "9876543210",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", lead.Name)
	assert.Equal(t, "jane@example.com", lead.Email)

	// Not preserved: the old 55 is replaced on every update.
	assert.Equal(t, 93, lead.Score)
	mockLeadRepo.AssertCalled(t, "UpdateScore", ctx, "lead-123", 93)
}
