package store

import (
	"sort"
	"strings"

	"github.com/avc-dev/rewards/internal/model"
)

// filterEntries применяет поиск, фильтр по статусу, сортировку и пагинацию к записям в памяти
func filterEntries(entries []model.RewardEntry, params model.ListRewardsParams) ([]model.RewardEntry, int64) {
	search := strings.ToLower(params.Search)

	matched := entries[:0]
	for _, entry := range entries {
		if !matchesStatus(entry, params.Status) {
			continue
		}
		if search != "" && !matchesSearch(entry, search) {
			continue
		}
		matched = append(matched, entry)
	}

	desc := params.SortDir != model.SortAsc
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if desc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if desc {
			return a.Code > b.Code
		}
		return a.Code < b.Code
	})

	total := int64(len(matched))

	offset := params.Offset()
	if offset < 0 || offset >= len(matched) || params.PerPage <= 0 {
		return []model.RewardEntry{}, total
	}

	end := min(offset+params.PerPage, len(matched))

	page := make([]model.RewardEntry, end-offset)
	copy(page, matched[offset:end])

	return page, total
}

func matchesStatus(entry model.RewardEntry, status string) bool {
	switch status {
	case model.StatusActive:
		return !entry.Redeemed()
	case model.StatusRedeemed:
		return entry.Redeemed()
	default:
		return true
	}
}

func matchesSearch(entry model.RewardEntry, search string) bool {
	return strings.Contains(strings.ToLower(string(entry.Code)), search) ||
		strings.Contains(strings.ToLower(entry.Description), search) ||
		strings.Contains(strings.ToLower(entry.CustomerEmail), search)
}
