package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/rewards/internal/model"
	"go.uber.org/zap"
)

// GetReward находит награду по коду, введённому вручную или из ссылки
func (u *RewardUsecase) GetReward(ctx context.Context, rawCode string) (model.RewardEntry, error) {
	code, err := parseCode(rawCode)
	if err != nil {
		return model.RewardEntry{}, err
	}

	entry, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.RewardEntry{}, fmt.Errorf("%w: %s", ErrRewardNotFound, code)
		}
		u.logger.Error("failed to get reward by code",
			zap.String("code", code.String()),
			zap.Error(err),
		)
		return model.RewardEntry{}, err
	}

	return entry, nil
}

func parseCode(rawCode string) (model.Code, error) {
	code := model.NormalizeCode(rawCode)
	if !code.Valid() {
		return "", ErrInvalidCode
	}
	return code, nil
}
