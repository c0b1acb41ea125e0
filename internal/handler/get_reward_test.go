package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/rewards/internal/mocks"
	"github.com/avc-dev/rewards/internal/model"
	"github.com/avc-dev/rewards/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetReward(t *testing.T) {
	stored := issuedReward("ABCD1234").RewardEntry

	tests := []struct {
		name           string
		code           string
		err            error
		expectedStatus int
	}{
		{name: "Found", code: "abcd1234", expectedStatus: http.StatusOK},
		{name: "Malformed code", code: "abc", err: usecase.ErrInvalidCode, expectedStatus: http.StatusBadRequest},
		{name: "Not found", code: "ZZZZ9999", err: fmt.Errorf("%w: ZZZZ9999", usecase.ErrRewardNotFound), expectedStatus: http.StatusNotFound},
		{name: "Storage failure", code: "ZZZZ9999", err: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockRewardUsecase(t)
			mockUsecase.EXPECT().GetReward(mock.Anything, tt.code).Return(stored, tt.err).Once()

			handler := New(mockUsecase, zap.NewNop(), nil)
			req := withCodeParam(t, httptest.NewRequest(http.MethodGet, "/r/"+tt.code, nil), tt.code)
			w := httptest.NewRecorder()

			// Act
			handler.GetReward(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.err == nil {
				var response model.RewardEntry
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
				assert.Equal(t, stored, response)
			}
		})
	}
}

func TestGetPublicReward(t *testing.T) {
	// Arrange
	stored := issuedReward("ABCD1234").RewardEntry
	stored.CustomerEmail = "guest@example.com"
	stored.RedeemedAt = &createdAt
	mockUsecase := mocks.NewMockRewardUsecase(t)
	mockUsecase.EXPECT().GetReward(mock.Anything, "abcd1234").Return(stored, nil).Once()

	handler := New(mockUsecase, zap.NewNop(), nil)
	req := withCodeParam(t, httptest.NewRequest(http.MethodGet, "/r/abcd1234", nil), "abcd1234")
	w := httptest.NewRecorder()

	// Act
	handler.GetPublicReward(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "customer_email")
	assert.NotContains(t, raw, "issued_by")
	assert.NotContains(t, raw, "id")

	var response model.PublicReward
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, stored.Public(), response)
	assert.True(t, response.Redeemed)
}

func TestRedeemReward(t *testing.T) {
	redeemed := issuedReward("ABCD1234").RewardEntry
	redeemed.RedeemedAt = &createdAt

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "Redeemed", expectedStatus: http.StatusOK},
		{name: "Already redeemed", err: fmt.Errorf("%w: ABCD1234", usecase.ErrAlreadyRedeemed), expectedStatus: http.StatusConflict},
		{name: "Not found", err: usecase.ErrRewardNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockRewardUsecase(t)
			mockUsecase.EXPECT().RedeemReward(mock.Anything, "ABCD1234").Return(redeemed, tt.err).Once()

			handler := New(mockUsecase, zap.NewNop(), nil)
			req := newStaffRequest(http.MethodPost, "/api/rewards/ABCD1234/redeem", nil)
			req = withCodeParam(t, req, "ABCD1234")
			w := httptest.NewRecorder()

			// Act
			handler.RedeemReward(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.err == nil {
				var response model.RewardEntry
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
				require.NotNil(t, response.RedeemedAt)
				assert.True(t, createdAt.Equal(*response.RedeemedAt))
			}
		})
	}
}
