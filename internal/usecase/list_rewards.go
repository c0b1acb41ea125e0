package usecase

import (
	"context"
	"strings"

	"github.com/avc-dev/rewards/internal/model"
	"go.uber.org/zap"
)

// ListRewards возвращает страницу наград с метаданными пагинации
func (u *RewardUsecase) ListRewards(ctx context.Context, params model.ListRewardsParams) (model.RewardPage, error) {
	params = normalizeListParams(params)

	items, total, err := u.repo.List(ctx, params)
	if err != nil {
		u.logger.Error("failed to list rewards",
			zap.Int("page", params.Page),
			zap.Int("per_page", params.PerPage),
			zap.Error(err),
		)
		return model.RewardPage{}, err
	}

	return model.NewRewardPage(items, total, params), nil
}

// normalizeListParams приводит параметры к допустимым значениям вместо отказа
func normalizeListParams(params model.ListRewardsParams) model.ListRewardsParams {
	if params.Page < 1 {
		params.Page = model.DefaultPage
	}
	if params.PerPage < 1 {
		params.PerPage = model.DefaultPerPage
	}
	if params.PerPage > model.MaxPerPage {
		params.PerPage = model.MaxPerPage
	}
	params.Page = min(params.Page, params.MaxPage())

	params.Search = strings.TrimSpace(params.Search)

	switch params.Status {
	case model.StatusActive, model.StatusRedeemed:
	default:
		params.Status = ""
	}

	if params.SortDir != model.SortAsc {
		params.SortDir = model.SortDesc
	}

	return params
}
