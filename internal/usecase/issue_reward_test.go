package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/rewards/internal/config"
	"github.com/avc-dev/rewards/internal/mocks"
	"github.com/avc-dev/rewards/internal/model"
	"github.com/avc-dev/rewards/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var issuedAt = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

func newTestUsecase(t *testing.T) (*RewardUsecase, *mocks.MockRewardQueries, *mocks.MockRewardService) {
	t.Helper()

	mockRepo := mocks.NewMockRewardQueries(t)
	mockService := mocks.NewMockRewardService(t)
	usecase := NewRewardUsecase(mockRepo, mockService, config.NewDefaultConfig(), zap.NewNop())
	usecase.now = func() time.Time { return issuedAt }

	return usecase, mockRepo, mockService
}

func entryFor(draft model.RewardDraft, code model.Code) model.RewardEntry {
	return model.RewardEntry{
		ID:            "id-" + code.String(),
		Code:          code,
		Description:   draft.Description,
		CustomerEmail: draft.CustomerEmail,
		IssuedBy:      draft.IssuedBy,
		CreatedAt:     issuedAt,
	}
}

func TestIssueReward_Success(t *testing.T) {
	tests := []struct {
		name          string
		description   string
		customerEmail string
		expectedDraft model.RewardDraft
	}{
		{
			name:          "Description only",
			description:   "Free dessert",
			expectedDraft: model.RewardDraft{Description: "Free dessert", IssuedBy: "staff-1"},
		},
		{
			name:          "Trimmed input",
			description:   "  10% off next visit \n",
			customerEmail: "  guest@example.com ",
			expectedDraft: model.RewardDraft{Description: "10% off next visit", CustomerEmail: "guest@example.com", IssuedBy: "staff-1"},
		},
		{
			name:          "Email with display name",
			description:   "Free coffee",
			customerEmail: "Anna Guest <anna@example.com>",
			expectedDraft: model.RewardDraft{Description: "Free coffee", CustomerEmail: "anna@example.com", IssuedBy: "staff-1"},
		},
		{
			name:          "Unicode description at limit",
			description:   strings.Repeat("я", MaxDescriptionLength),
			expectedDraft: model.RewardDraft{Description: strings.Repeat("я", MaxDescriptionLength), IssuedBy: "staff-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			usecase, _, mockService := newTestUsecase(t)
			entry := entryFor(tt.expectedDraft, "ABCD1234")

			mockService.EXPECT().
				IssueReward(mock.Anything, tt.expectedDraft).
				Return(entry, nil).
				Once()

			// Act
			result, err := usecase.IssueReward(context.Background(), tt.description, tt.customerEmail, "staff-1")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, entry, result.RewardEntry)
			assert.Equal(t, "http://localhost:8080/r/ABCD1234", result.RedeemURL)
		})
	}
}

func TestIssueReward_InvalidInput(t *testing.T) {
	tests := []struct {
		name          string
		description   string
		customerEmail string
		expectedErr   error
	}{
		{name: "Empty description", description: "", expectedErr: ErrEmptyDescription},
		{name: "Whitespace description", description: "   \t", expectedErr: ErrEmptyDescription},
		{name: "Too long description", description: strings.Repeat("a", MaxDescriptionLength+1), expectedErr: ErrInvalidDescription},
		{name: "Malformed email", description: "Free dessert", customerEmail: "not-an-email", expectedErr: ErrInvalidEmail},
		{name: "Email without domain", description: "Free dessert", customerEmail: "guest@", expectedErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			usecase, _, mockService := newTestUsecase(t)

			// Act
			result, err := usecase.IssueReward(context.Background(), tt.description, tt.customerEmail, "staff-1")

			// Assert
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Empty(t, result.Code)
			mockService.AssertNotCalled(t, "IssueReward", mock.Anything, mock.Anything)
		})
	}
}

func TestIssueReward_ServiceErrors(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectUnavail  bool
		expectWrapping error
	}{
		{
			name:           "Generation exhausted",
			serviceErr:     fmt.Errorf("failed to generate unique code: %w", service.ErrGenerationExhausted),
			expectUnavail:  true,
			expectWrapping: service.ErrGenerationExhausted,
		},
		{
			name:           "Storage failure",
			serviceErr:     errors.New("connection reset"),
			expectUnavail:  false,
			expectWrapping: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			usecase, _, mockService := newTestUsecase(t)

			mockService.EXPECT().
				IssueReward(mock.Anything, mock.Anything).
				Return(model.RewardEntry{}, tt.serviceErr).
				Once()

			// Act
			_, err := usecase.IssueReward(context.Background(), "Free dessert", "", "staff-1")

			// Assert
			require.Error(t, err)
			assert.Equal(t, tt.expectUnavail, errors.Is(err, ErrServiceUnavailable))
			if tt.expectWrapping != nil {
				assert.ErrorIs(t, err, tt.expectWrapping)
			}
		})
	}
}

func TestIssueRewardsBatch_Success(t *testing.T) {
	// Arrange
	usecase, _, mockService := newTestUsecase(t)
	draft := model.RewardDraft{Description: "Free dessert", IssuedBy: "staff-1"}
	entries := []model.RewardEntry{entryFor(draft, "AAAA1111"), entryFor(draft, "BBBB2222")}

	mockService.EXPECT().
		IssueRewardsBatch(mock.Anything, draft, 2).
		Return(entries, nil).
		Once()

	// Act
	result, err := usecase.IssueRewardsBatch(context.Background(), " Free dessert ", 2, "staff-1")

	// Assert
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "http://localhost:8080/r/AAAA1111", result[0].RedeemURL)
	assert.Equal(t, "http://localhost:8080/r/BBBB2222", result[1].RedeemURL)
}

func TestIssueRewardsBatch_InvalidSize(t *testing.T) {
	for _, count := range []int{-1, 0, MaxBatchSize + 1} {
		t.Run(fmt.Sprintf("count %d", count), func(t *testing.T) {
			usecase, _, mockService := newTestUsecase(t)

			result, err := usecase.IssueRewardsBatch(context.Background(), "Free dessert", count, "staff-1")

			assert.ErrorIs(t, err, ErrInvalidBatchSize)
			assert.Nil(t, result)
			mockService.AssertNotCalled(t, "IssueRewardsBatch", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestIssueRewardsBatch_Exhausted(t *testing.T) {
	usecase, _, mockService := newTestUsecase(t)

	mockService.EXPECT().
		IssueRewardsBatch(mock.Anything, mock.Anything, 5).
		Return(nil, service.ErrGenerationExhausted).
		Once()

	_, err := usecase.IssueRewardsBatch(context.Background(), "Free dessert", 5, "staff-1")

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
