package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/rewards/internal/model"
)

// Store реестр выданных кодов (память, файл или PostgreSQL)
type Store interface {
	Lookup(ctx context.Context, code model.Code) (model.RewardEntry, error)
	Insert(ctx context.Context, entry model.RewardEntry) error
	Redeem(ctx context.Context, code model.Code, at time.Time) (model.RewardEntry, error)
	List(ctx context.Context, params model.ListRewardsParams) ([]model.RewardEntry, int64, error)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// Insert сохраняет запись; занятый код возвращает model.ErrAlreadyExists
func (r *Repository) Insert(ctx context.Context, entry model.RewardEntry) error {
	if err := r.underlying.Insert(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert reward: %w", err)
	}
	return nil
}

func (r *Repository) GetByCode(ctx context.Context, code model.Code) (model.RewardEntry, error) {
	entry, err := r.underlying.Lookup(ctx, code)
	if err != nil {
		return model.RewardEntry{}, fmt.Errorf("failed to get reward by code: %w", err)
	}
	return entry, nil
}

func (r *Repository) Redeem(ctx context.Context, code model.Code, at time.Time) (model.RewardEntry, error) {
	entry, err := r.underlying.Redeem(ctx, code, at)
	if err != nil {
		return model.RewardEntry{}, fmt.Errorf("failed to redeem reward: %w", err)
	}
	return entry, nil
}

func (r *Repository) List(ctx context.Context, params model.ListRewardsParams) ([]model.RewardEntry, int64, error) {
	entries, total, err := r.underlying.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rewards: %w", err)
	}
	return entries, total, nil
}
