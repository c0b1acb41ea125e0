package model

import "math"

// Фильтры по статусу награды
const (
	StatusActive   = "active"
	StatusRedeemed = "redeemed"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100

	// MaxOffset верхняя граница смещения: хранилища принимают int32 без переполнения
	MaxOffset = math.MaxInt32
)

// PaginationMeta содержит метаданные постраничного ответа
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// ListRewardsParams параметры постраничного списка наград
type ListRewardsParams struct {
	Page    int
	PerPage int

	// Search ищет подстроку в коде, описании и email без учёта регистра
	Search string
	// Status пустой, StatusActive или StatusRedeemed
	Status string
	// SortDir направление сортировки по created_at
	SortDir string
}

// DefaultListRewardsParams возвращает параметры списка по умолчанию
func DefaultListRewardsParams() ListRewardsParams {
	return ListRewardsParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortDir: SortDesc,
	}
}

// MaxPage последняя страница, смещение которой не превышает MaxOffset
func (p ListRewardsParams) MaxPage() int {
	if p.PerPage <= 0 {
		return DefaultPage
	}
	return MaxOffset/p.PerPage + 1
}

// Offset вычисляет смещение для текущей страницы, не выходя за MaxOffset
func (p ListRewardsParams) Offset() int {
	if p.Page <= 1 || p.PerPage <= 0 {
		return 0
	}
	if p.Page > p.MaxPage() {
		return (p.MaxPage() - 1) * p.PerPage
	}
	return (p.Page - 1) * p.PerPage
}

// RewardPage страница списка наград
type RewardPage struct {
	Items      []RewardEntry  `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

// NewRewardPage собирает страницу и считает количество страниц
func NewRewardPage(items []RewardEntry, total int64, params ListRewardsParams) RewardPage {
	if items == nil {
		items = []RewardEntry{}
	}
	return RewardPage{
		Items: items,
		Pagination: PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  CalculateTotalPages(total, params.PerPage),
		},
	}
}

// CalculateTotalPages считает количество страниц по общему числу элементов
func CalculateTotalPages(totalItems int64, perPage int) int {
	if totalItems == 0 || perPage <= 0 {
		return 0
	}
	pages := int(totalItems) / perPage
	if int(totalItems)%perPage > 0 {
		pages++
	}
	return pages
}
