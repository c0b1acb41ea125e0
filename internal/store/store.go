package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/rewards/internal/model"
)

// Store хранит реестр выданных кодов в памяти
type Store struct {
	entries map[model.Code]model.RewardEntry
	mutex   sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		entries: make(map[model.Code]model.RewardEntry),
	}
}

// Lookup ищет запись по точному совпадению кода
func (s *Store) Lookup(_ context.Context, code model.Code) (model.RewardEntry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, ok := s.entries[code]
	if !ok {
		return model.RewardEntry{}, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
	}

	return cloneEntry(entry), nil
}

// Insert атомарно добавляет запись, если код ещё не занят
func (s *Store) Insert(_ context.Context, entry model.RewardEntry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.entries[entry.Code]; exists {
		return fmt.Errorf("code %s: %w", entry.Code, model.ErrAlreadyExists)
	}

	s.entries[entry.Code] = cloneEntry(entry)

	return nil
}

// Redeem помечает награду погашенной; повторное погашение возвращает ErrAlreadyRedeemed
func (s *Store) Redeem(_ context.Context, code model.Code, at time.Time) (model.RewardEntry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, ok := s.entries[code]
	if !ok {
		return model.RewardEntry{}, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
	}
	if entry.Redeemed() {
		return model.RewardEntry{}, fmt.Errorf("code %s: %w", code, model.ErrAlreadyRedeemed)
	}

	redeemedAt := at
	entry.RedeemedAt = &redeemedAt
	s.entries[code] = entry

	return cloneEntry(entry), nil
}

// List возвращает страницу записей и общее количество подходящих под фильтр
func (s *Store) List(_ context.Context, params model.ListRewardsParams) ([]model.RewardEntry, int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries := make([]model.RewardEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, cloneEntry(entry))
	}

	page, total := filterEntries(entries, params)

	return page, total, nil
}

// InitializeWith загружает записи без проверки на существование (используется при чтении файла)
func (s *Store) InitializeWith(entries []model.RewardEntry) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, entry := range entries {
		s.entries[entry.Code] = cloneEntry(entry)
	}
}

func (s *Store) remove(code model.Code) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.entries, code)
}

func (s *Store) restore(entry model.RewardEntry) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.entries[entry.Code] = cloneEntry(entry)
}

func cloneEntry(entry model.RewardEntry) model.RewardEntry {
	if entry.RedeemedAt != nil {
		redeemedAt := *entry.RedeemedAt
		entry.RedeemedAt = &redeemedAt
	}
	return entry
}
