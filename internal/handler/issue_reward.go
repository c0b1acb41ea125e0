package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type IssueRewardRequest struct {
	Description   string `json:"description"`
	CustomerEmail string `json:"customer_email"`
}

type IssueRewardsBatchRequest struct {
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// IssueReward обрабатывает POST /api/rewards: выдаёт одну награду
func (h *Handler) IssueReward(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.getStaffIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, errNoStaff)
		return
	}

	var request IssueRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", r.RemoteAddr),
		)
		respondError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}

	reward, err := h.usecase.IssueReward(r.Context(), request.Description, request.CustomerEmail, staffID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, reward)
}

// IssueRewardsBatch обрабатывает POST /api/rewards/batch: выдаёт пакет наград для печатных карточек
func (h *Handler) IssueRewardsBatch(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.getStaffIDFromRequest(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, errNoStaff)
		return
	}

	var request IssueRewardsBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", r.RemoteAddr),
		)
		respondError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}

	rewards, err := h.usecase.IssueRewardsBatch(r.Context(), request.Description, request.Count, staffID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, rewards)
}
