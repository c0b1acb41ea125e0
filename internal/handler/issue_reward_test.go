package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/rewards/internal/mocks"
	"github.com/avc-dev/rewards/internal/model"
	"github.com/avc-dev/rewards/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var createdAt = time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)

func issuedReward(code string) model.IssuedReward {
	return model.IssuedReward{
		RewardEntry: model.RewardEntry{
			ID:          "id-" + code,
			Code:        model.Code(code),
			Description: "Free dessert",
			IssuedBy:    "staff-1",
			CreatedAt:   createdAt,
		},
		RedeemURL: "http://localhost:8080/r/" + code,
	}
}

// TestIssueReward_Success проверяет выдачу награды через JSON API
func TestIssueReward_Success(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockRewardUsecase(t)
	expected := issuedReward("ABCD1234")

	mockUsecase.EXPECT().
		IssueReward(mock.Anything, "Free dessert", "guest@example.com", "staff-1").
		Return(expected, nil).
		Once()

	handler := New(mockUsecase, zap.NewNop(), nil)
	body := `{"description":"Free dessert","customer_email":"guest@example.com"}`
	req := newStaffRequest(http.MethodPost, "/api/rewards", strings.NewReader(body))
	w := httptest.NewRecorder()

	// Act
	handler.IssueReward(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var response map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, "ABCD1234", response["code"])
	assert.Equal(t, "http://localhost:8080/r/ABCD1234", response["redeem_url"])
	assert.Equal(t, "staff-1", response["issued_by"])
	assert.NotContains(t, response, "redeemed_at")
}

func TestIssueReward_InvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed JSON", body: `{"description": "Free dessert"`},
		{name: "Empty body", body: ""},
		{name: "Not a JSON", body: "just plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase := mocks.NewMockRewardUsecase(t)
			handler := New(mockUsecase, zap.NewNop(), nil)

			req := newStaffRequest(http.MethodPost, "/api/rewards", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.IssueReward(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockUsecase.AssertNotCalled(t, "IssueReward", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestIssueReward_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Empty description",
			err:            usecase.ErrEmptyDescription,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   usecase.ErrEmptyDescription.Error(),
		},
		{
			name:           "Invalid email",
			err:            fmt.Errorf("%w: mail: missing @ in addr-spec", usecase.ErrInvalidEmail),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid customer email: mail: missing @ in addr-spec",
		},
		{
			name:           "Generation exhausted",
			err:            fmt.Errorf("%w: registry down", usecase.ErrServiceUnavailable),
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   usecase.ErrServiceUnavailable.Error(),
		},
		{
			name:           "Unexpected failure",
			err:            assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   errInternal.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockRewardUsecase(t)
			mockUsecase.EXPECT().
				IssueReward(mock.Anything, mock.Anything, mock.Anything, "staff-1").
				Return(model.IssuedReward{}, tt.err).
				Once()

			handler := New(mockUsecase, zap.NewNop(), nil)
			req := newStaffRequest(http.MethodPost, "/api/rewards", strings.NewReader(`{"description":"x"}`))
			w := httptest.NewRecorder()

			// Act
			handler.IssueReward(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.expectedBody, response.Error)
		})
	}
}

func TestIssueReward_NoStaff(t *testing.T) {
	mockUsecase := mocks.NewMockRewardUsecase(t)
	handler := New(mockUsecase, zap.NewNop(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/rewards", strings.NewReader(`{"description":"x"}`))
	w := httptest.NewRecorder()

	handler.IssueReward(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIssueRewardsBatch_Success(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockRewardUsecase(t)
	expected := []model.IssuedReward{issuedReward("AAAA1111"), issuedReward("BBBB2222")}

	mockUsecase.EXPECT().
		IssueRewardsBatch(mock.Anything, "Free dessert", 2, "staff-1").
		Return(expected, nil).
		Once()

	handler := New(mockUsecase, zap.NewNop(), nil)
	req := newStaffRequest(http.MethodPost, "/api/rewards/batch", strings.NewReader(`{"description":"Free dessert","count":2}`))
	w := httptest.NewRecorder()

	// Act
	handler.IssueRewardsBatch(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)

	var response []model.IssuedReward
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, expected, response)
}

func TestIssueRewardsBatch_InvalidSize(t *testing.T) {
	mockUsecase := mocks.NewMockRewardUsecase(t)
	mockUsecase.EXPECT().
		IssueRewardsBatch(mock.Anything, "Free dessert", 1000, "staff-1").
		Return(nil, usecase.ErrInvalidBatchSize).
		Once()

	handler := New(mockUsecase, zap.NewNop(), nil)
	req := newStaffRequest(http.MethodPost, "/api/rewards/batch", strings.NewReader(`{"description":"Free dessert","count":1000}`))
	w := httptest.NewRecorder()

	handler.IssueRewardsBatch(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
