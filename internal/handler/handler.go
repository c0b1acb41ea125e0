package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/avc-dev/rewards/internal/config/db"
	"github.com/avc-dev/rewards/internal/middleware"
	"github.com/avc-dev/rewards/internal/model"
	"github.com/avc-dev/rewards/internal/usecase"
	"go.uber.org/zap"
)

//go:generate mockery --name RewardUsecase

// RewardUsecase определяет операции API наград
type RewardUsecase interface {
	IssueReward(ctx context.Context, description, customerEmail, issuedBy string) (model.IssuedReward, error)
	IssueRewardsBatch(ctx context.Context, description string, count int, issuedBy string) ([]model.IssuedReward, error)
	GetReward(ctx context.Context, rawCode string) (model.RewardEntry, error)
	RedeemReward(ctx context.Context, rawCode string) (model.RewardEntry, error)
	ListRewards(ctx context.Context, params model.ListRewardsParams) (model.RewardPage, error)
}

// Handler обрабатывает HTTP запросы API наград
type Handler struct {
	usecase RewardUsecase
	logger  *zap.Logger
	db      db.Database
}

// New создает новый экземпляр Handler. database может быть nil, если БД не настроена
func New(usecase RewardUsecase, logger *zap.Logger, database db.Database) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		db:      database,
	}
}

// handleError сопоставляет ошибки usecase со статусами HTTP
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyDescription),
		errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidCode),
		errors.Is(err, usecase.ErrInvalidBatchSize):
		h.logger.Debug("invalid request", zap.Error(err))
		respondError(w, http.StatusBadRequest, err)
	case errors.Is(err, usecase.ErrRewardNotFound):
		h.logger.Debug("reward not found", zap.Error(err))
		respondError(w, http.StatusNotFound, usecase.ErrRewardNotFound)
	case errors.Is(err, usecase.ErrAlreadyRedeemed):
		respondError(w, http.StatusConflict, usecase.ErrAlreadyRedeemed)
	case errors.Is(err, usecase.ErrServiceUnavailable):
		h.logger.Warn("service unavailable", zap.Error(err))
		respondError(w, http.StatusServiceUnavailable, usecase.ErrServiceUnavailable)
	default:
		h.logger.Error("internal error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, errInternal)
	}
}

// getStaffIDFromRequest извлекает staff_id, выставленный AuthMiddleware
func (h *Handler) getStaffIDFromRequest(r *http.Request) (string, bool) {
	return middleware.GetStaffIDFromContext(r.Context())
}
