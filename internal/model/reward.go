package model

import "time"

// RewardEntry представляет выданную награду в реестре кодов
type RewardEntry struct {
	ID            string     `json:"id"`
	Code          Code       `json:"code"`
	Description   string     `json:"description"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	IssuedBy      string     `json:"issued_by"`
	CreatedAt     time.Time  `json:"created_at"`
	RedeemedAt    *time.Time `json:"redeemed_at,omitempty"`
}

// Redeemed сообщает, была ли награда уже погашена
func (e RewardEntry) Redeemed() bool {
	return e.RedeemedAt != nil
}

// PublicReward то, что видит владелец карточки по публичной ссылке, без данных клиента и сотрудника
type PublicReward struct {
	Code        Code      `json:"code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Redeemed    bool      `json:"redeemed"`
}

// Public возвращает публичное представление записи
func (e RewardEntry) Public() PublicReward {
	return PublicReward{
		Code:        e.Code,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		Redeemed:    e.Redeemed(),
	}
}

// IssuedReward результат выдачи награды вместе со ссылкой для погашения
type IssuedReward struct {
	RewardEntry
	RedeemURL string `json:"redeem_url"`
}

// RewardDraft данные для выдачи новой награды
type RewardDraft struct {
	Description   string
	CustomerEmail string
	IssuedBy      string
}
