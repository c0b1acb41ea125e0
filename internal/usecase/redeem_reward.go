package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/rewards/internal/model"
	"go.uber.org/zap"
)

// RedeemReward погашает награду. Повторное погашение возвращает ErrAlreadyRedeemed
func (u *RewardUsecase) RedeemReward(ctx context.Context, rawCode string) (model.RewardEntry, error) {
	code, err := parseCode(rawCode)
	if err != nil {
		return model.RewardEntry{}, err
	}

	entry, err := u.repo.Redeem(ctx, code, u.now().UTC())
	switch {
	case err == nil:
		u.logger.Info("reward redeemed", zap.String("code", code.String()))
		return entry, nil
	case errors.Is(err, model.ErrNotFound):
		return model.RewardEntry{}, fmt.Errorf("%w: %s", ErrRewardNotFound, code)
	case errors.Is(err, model.ErrAlreadyRedeemed):
		return model.RewardEntry{}, fmt.Errorf("%w: %s", ErrAlreadyRedeemed, code)
	default:
		u.logger.Error("failed to redeem reward",
			zap.String("code", code.String()),
			zap.Error(err),
		)
		return model.RewardEntry{}, err
	}
}
