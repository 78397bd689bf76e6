package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func TestCreateLeadSuccessCreatesPairedClient(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockClientRepo := new(MockClientRepository)
	mockScorer := new(MockLeadScorer)
	mockQueue := new(MockQueueProducer)

	mockClientRepo.On("EmailExists", ctx, "john@example.com", "").Return(false, nil)
	mockLeadRepo.On("Create", ctx, mock.Anything).Return(nil)

	var createdClient *entity.Client
	mockClientRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		createdClient = args.Get(1).(*entity.Client)
	}).Return(nil)

	mockScorer.On("ScoreLead", mock.Anything).Return(87)
	mockLeadRepo.On("UpdateScore", ctx, mock.Anything, 87).Return(nil)
	mockQueue.On("PublishLeadCaptured", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateLeadUseCase(mockLeadRepo, mockClientRepo, mockScorer, mockQueue)

	lead, err := uc.Execute(ctx, usecase.CreateLeadInput{
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "1234567890",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "John Doe", lead.Name)
	assert.Equal(t, 87, lead.Score)

	// Exactly one paired client: same email, pointing at the new lead.
	assert.NotNil(t, createdClient)
	assert.Equal(t, lead.Email, createdClient.Email)
	assert.Equal(t, lead.ID, createdClient.LeadID)

	mockScorer.AssertNumberOfCalls(t, "ScoreLead", 1)
	mockQueue.AssertNumberOfCalls(t, "PublishLeadCaptured", 1)
}

func TestCreateLeadValidationAbortsBeforeWrites(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockClientRepo := new(MockClientRepository)
	mockScorer := new(MockLeadScorer)

	uc := usecase.NewCreateLeadUseCase(mockLeadRepo, mockClientRepo, mockScorer, nil)

	_, err := uc.Execute(ctx, usecase.CreateLeadInput{Name: "", Email: ""})

	var verrs usecase.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	byField := verrs.ByField()
	assert.Contains(t, byField, "name")
	assert.Contains(t, byField, "email")

	mockLeadRepo.AssertNotCalled(t, "Create")
	mockClientRepo.AssertNotCalled(t, "Create")
	mockScorer.AssertNotCalled(t, "ScoreLead")
}

func TestCreateLeadDuplicateEmailRejected(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockClientRepo := new(MockClientRepository)
	mockScorer := new(MockLeadScorer)

	mockClientRepo.On("EmailExists", ctx, "taken@example.com", "").Return(true, nil)

	uc := usecase.NewCreateLeadUseCase(mockLeadRepo, mockClientRepo, mockScorer, nil)

	_, err := uc.Execute(ctx, usecase.CreateLeadInput{
		Name:  "John Doe",
		Email: "taken@example.com",
	})

	var verrs usecase.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ByField(), "email")

	mockLeadRepo.AssertNotCalled(t, "Create")
	mockClientRepo.AssertNotCalled(t, "Create")
}

func TestCreateLeadClientInsertFailureCompensates(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockClientRepo := new(MockClientRepository)
	mockScorer := new(MockLeadScorer)

	mockClientRepo.On("EmailExists", ctx, "john@example.com", "").Return(false, nil)

	var leadID string
	mockLeadRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		leadID = args.Get(1).(*entity.Lead).ID
	}).Return(nil)

	// The unique index fires on the second insert (probe/insert race).
	mockClientRepo.On("Create", ctx, mock.Anything).Return(entity.ErrEmailAlreadyExists)
	mockLeadRepo.On("Delete", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateLeadUseCase(mockLeadRepo, mockClientRepo, mockScorer, nil)

	_, err := uc.Execute(ctx, usecase.CreateLeadInput{
		Name:  "John Doe",
		Email: "john@example.com",
	})

	assert.Error(t, err)
	assert.True(t, usecase.IsTechnicalError(err))

	// Compensation must have removed the just-inserted lead.
	mockLeadRepo.AssertCalled(t, "Delete", ctx, leadID)
	mockScorer.AssertNotCalled(t, "ScoreLead")
}

func TestCreateLeadPublishFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockClientRepo := new(MockClientRepository)
	mockScorer := new(MockLeadScorer)
	mockQueue := new(MockQueueProducer)

	mockClientRepo.On("EmailExists", ctx, "john@example.com", "").Return(false, nil)
	mockLeadRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockClientRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockScorer.On("ScoreLead", mock.Anything).Return(42)
	mockLeadRepo.On("UpdateScore", ctx, mock.Anything, 42).Return(nil)
	mockQueue.On("PublishLeadCaptured", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := usecase.NewCreateLeadUseCase(mockLeadRepo, mockClientRepo, mockScorer, mockQueue)

	lead, err := uc.Execute(ctx, usecase.CreateLeadInput{
		Name:  "John Doe",
		Email: "john@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, lead.Score)
}
