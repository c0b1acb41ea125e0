package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/avc-dev/rewards/internal/model"
	"github.com/avc-dev/rewards/internal/service"
	"go.uber.org/zap"
)

// IssueReward проверяет ввод, выдаёт награду с уникальным кодом и
// возвращает её вместе со ссылкой для погашения
func (u *RewardUsecase) IssueReward(ctx context.Context, description, customerEmail, issuedBy string) (model.IssuedReward, error) {
	draft, err := newDraft(description, customerEmail, issuedBy)
	if err != nil {
		return model.IssuedReward{}, err
	}

	entry, err := u.service.IssueReward(ctx, draft)
	if err != nil {
		u.logger.Error("failed to issue reward",
			zap.String("issued_by", issuedBy),
			zap.Error(err),
		)
		return model.IssuedReward{}, classifyIssueError(err)
	}

	return u.issued(entry)
}

// IssueRewardsBatch выдаёт count одинаковых наград для печатных карточек
func (u *RewardUsecase) IssueRewardsBatch(ctx context.Context, description string, count int, issuedBy string) ([]model.IssuedReward, error) {
	if count < 1 || count > MaxBatchSize {
		return nil, ErrInvalidBatchSize
	}

	draft, err := newDraft(description, "", issuedBy)
	if err != nil {
		return nil, err
	}

	entries, err := u.service.IssueRewardsBatch(ctx, draft, count)
	if err != nil {
		u.logger.Error("failed to issue rewards batch",
			zap.String("issued_by", issuedBy),
			zap.Int("count", count),
			zap.Error(err),
		)
		return nil, classifyIssueError(err)
	}

	result := make([]model.IssuedReward, 0, len(entries))
	for _, entry := range entries {
		issued, err := u.issued(entry)
		if err != nil {
			return nil, err
		}
		result = append(result, issued)
	}

	u.logger.Info("rewards batch issued",
		zap.String("issued_by", issuedBy),
		zap.Int("count", len(result)),
	)

	return result, nil
}

func newDraft(description, customerEmail, issuedBy string) (model.RewardDraft, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return model.RewardDraft{}, ErrEmptyDescription
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return model.RewardDraft{}, ErrInvalidDescription
	}

	customerEmail = strings.TrimSpace(customerEmail)
	if customerEmail != "" {
		address, err := mail.ParseAddress(customerEmail)
		if err != nil {
			return model.RewardDraft{}, fmt.Errorf("%w: %w", ErrInvalidEmail, err)
		}
		customerEmail = address.Address
	}

	return model.RewardDraft{
		Description:   description,
		CustomerEmail: customerEmail,
		IssuedBy:      issuedBy,
	}, nil
}

// classifyIssueError отличает исчерпание попыток (временная недоступность) от прочих сбоев
func classifyIssueError(err error) error {
	if errors.Is(err, service.ErrGenerationExhausted) {
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return err
}

func (u *RewardUsecase) issued(entry model.RewardEntry) (model.IssuedReward, error) {
	redeemURL, err := url.JoinPath(u.cfg.BaseURL.String(), "r", entry.Code.String())
	if err != nil {
		u.logger.Error("failed to build redeem URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", entry.Code.String()),
			zap.Error(err),
		)
		return model.IssuedReward{}, fmt.Errorf("failed to build redeem URL: %w", err)
	}

	return model.IssuedReward{RewardEntry: entry, RedeemURL: redeemURL}, nil
}
