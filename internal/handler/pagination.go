package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/avc-dev/rewards/internal/model"
)

var allowedStatuses = map[string]bool{
	model.StatusActive:   true,
	model.StatusRedeemed: true,
}

var allowedSortDirs = map[string]bool{
	model.SortAsc:  true,
	model.SortDesc: true,
}

// ParseListRewardsParams разбирает параметры постраничного списка наград.
// Некорректные значения заменяются значениями по умолчанию
func ParseListRewardsParams(r *http.Request) model.ListRewardsParams {
	params := model.DefaultListRewardsParams()
	query := r.URL.Query()

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			page = model.DefaultPage
		}
		params.Page = page
	}

	if perPageStr := query.Get("per_page"); perPageStr != "" {
		perPage, err := strconv.Atoi(perPageStr)
		if err != nil || perPage < 1 {
			perPage = model.DefaultPerPage
		}
		params.PerPage = min(perPage, model.MaxPerPage)
	}

	params.Page = min(params.Page, params.MaxPage())

	if status := strings.ToLower(strings.TrimSpace(query.Get("status"))); allowedStatuses[status] {
		params.Status = status
	}

	if sortDir := strings.ToLower(strings.TrimSpace(query.Get("sort_dir"))); allowedSortDirs[sortDir] {
		params.SortDir = sortDir
	}

	params.Search = strings.TrimSpace(query.Get("search"))

	return params
}

// ListRewards обрабатывает GET /api/rewards
func (h *Handler) ListRewards(w http.ResponseWriter, r *http.Request) {
	page, err := h.usecase.ListRewards(r.Context(), ParseListRewardsParams(r))
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}
