package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/rewards/internal/model"
)

// FileStore декоратор над Store, который добавляет персистентность через файл.
// writeMu держит изменение в памяти и запись в файл вместе, поэтому порядок
// снимков в файле совпадает с порядком изменений
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	writeMu     sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

func (fs *FileStore) Lookup(ctx context.Context, code model.Code) (model.RewardEntry, error) {
	return fs.store.Lookup(ctx, code)
}

// Insert добавляет запись в память и дописывает её в файл.
// Если запись в файл не удалась, запись убирается из памяти
func (fs *FileStore) Insert(ctx context.Context, entry model.RewardEntry) error {
	fs.writeMu.Lock()
	defer fs.writeMu.Unlock()

	if err := fs.store.Insert(ctx, entry); err != nil {
		return err
	}

	if err := fs.fileStorage.Append(entry); err != nil {
		fs.store.remove(entry.Code)
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return nil
}

// Redeem гасит награду в памяти и сохраняет новый снимок записи в файл
func (fs *FileStore) Redeem(ctx context.Context, code model.Code, at time.Time) (model.RewardEntry, error) {
	fs.writeMu.Lock()
	defer fs.writeMu.Unlock()

	previous, err := fs.store.Lookup(ctx, code)
	if err != nil {
		return model.RewardEntry{}, err
	}

	entry, err := fs.store.Redeem(ctx, code, at)
	if err != nil {
		return model.RewardEntry{}, err
	}

	if err := fs.fileStorage.Append(entry); err != nil {
		fs.store.restore(previous)
		return model.RewardEntry{}, fmt.Errorf("failed to append to file: %w", err)
	}

	return entry, nil
}

func (fs *FileStore) List(ctx context.Context, params model.ListRewardsParams) ([]model.RewardEntry, int64, error) {
	return fs.store.List(ctx, params)
}

func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	fs.store.InitializeWith(entries)

	return nil
}
