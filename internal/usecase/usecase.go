package usecase

import (
	"context"
	"time"

	"github.com/avc-dev/rewards/internal/config"
	"github.com/avc-dev/rewards/internal/model"
	"go.uber.org/zap"
)

const (
	// MaxDescriptionLength максимальная длина описания награды в символах
	MaxDescriptionLength = 200
	// MaxBatchSize максимальное число наград в одном пакете
	MaxBatchSize = 100
)

//go:generate mockery --name RewardQueries
//go:generate mockery --name RewardService

// RewardQueries определяет операции чтения и погашения в реестре наград
type RewardQueries interface {
	GetByCode(ctx context.Context, code model.Code) (model.RewardEntry, error)
	List(ctx context.Context, params model.ListRewardsParams) ([]model.RewardEntry, int64, error)
	Redeem(ctx context.Context, code model.Code, at time.Time) (model.RewardEntry, error)
}

// RewardService определяет интерфейс выдачи наград
type RewardService interface {
	IssueReward(ctx context.Context, draft model.RewardDraft) (model.RewardEntry, error)
	IssueRewardsBatch(ctx context.Context, draft model.RewardDraft, count int) ([]model.RewardEntry, error)
}

// RewardUsecase содержит бизнес-логику работы с наградами
type RewardUsecase struct {
	repo    RewardQueries
	service RewardService
	cfg     *config.Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewRewardUsecase создает новый экземпляр RewardUsecase
func NewRewardUsecase(repo RewardQueries, service RewardService, cfg *config.Config, logger *zap.Logger) *RewardUsecase {
	return &RewardUsecase{
		repo:    repo,
		service: service,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}
