package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/avc-dev/rewards/internal/model"
)

// FileStorage журнал записей в формате JSON lines: каждая строка снимок записи.
// При чтении последняя строка для кода побеждает
type FileStorage struct {
	filePath string
	mutex    sync.Mutex
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load читает все снимки из файла в порядке записи
func (fs *FileStorage) Load() ([]model.RewardEntry, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	file, err := os.Open(fs.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.RewardEntry{}, nil
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var entries []model.RewardEntry

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}

		var entry model.RewardEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return entries, nil
}

// Append дописывает снимок записи в конец файла
func (fs *FileStorage) Append(entry model.RewardEntry) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	file, err := os.OpenFile(fs.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	if err := json.NewEncoder(file).Encode(entry); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode entry: %w", err)
	}

	return file.Close()
}
