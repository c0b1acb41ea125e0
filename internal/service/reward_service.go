package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/rewards/internal/config"
	"github.com/avc-dev/rewards/internal/model"
	"github.com/google/uuid"
)

// RewardService содержит бизнес-логику выдачи наград
type RewardService struct {
	repo      RewardRepository
	codes     UniqueCodeSource
	processor *BatchProcessor
	cfg       *config.Config
	now       func() time.Time
	newID     func() string
}

// NewRewardService создает новый экземпляр RewardService
func NewRewardService(repo RewardRepository, codes UniqueCodeSource, cfg *config.Config) *RewardService {
	return &RewardService{
		repo:      repo,
		codes:     codes,
		processor: NewBatchProcessor(defaultBatchWorkers),
		cfg:       cfg,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// IssueReward получает проверенный код и атомарно сохраняет награду.
// Если код заняли между проверкой и вставкой, генерация повторяется
func (s *RewardService) IssueReward(ctx context.Context, draft model.RewardDraft) (model.RewardEntry, error) {
	maxAttempts := s.cfg.Retry.MaxAttempts

	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := s.codes.GenerateUniqueCode(ctx, maxAttempts)
		if err != nil {
			return model.RewardEntry{}, fmt.Errorf("failed to generate unique code: %w", err)
		}

		entry := model.RewardEntry{
			ID:            s.newID(),
			Code:          code,
			Description:   draft.Description,
			CustomerEmail: draft.CustomerEmail,
			IssuedBy:      draft.IssuedBy,
			CreatedAt:     s.now().UTC(),
		}

		err = s.repo.Insert(ctx, entry)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, model.ErrAlreadyExists) {
			return model.RewardEntry{}, fmt.Errorf("failed to save reward: %w", err)
		}
	}

	return model.RewardEntry{}, fmt.Errorf("failed to insert reward after %d attempts: %w", maxAttempts, ErrGenerationExhausted)
}

// IssueRewardsBatch выдаёт count одинаковых наград (например, для печатных карточек).
// Награды, выданные до ошибки, остаются в реестре
func (s *RewardService) IssueRewardsBatch(ctx context.Context, draft model.RewardDraft, count int) ([]model.RewardEntry, error) {
	entries, err := s.processor.Process(ctx, count, func(ctx context.Context, _ int) (model.RewardEntry, error) {
		return s.IssueReward(ctx, draft)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue rewards batch: %w", err)
	}

	return entries, nil
}
