package service

import (
	"context"
	"errors"

	"github.com/avc-dev/rewards/internal/model"
)

const defaultBatchWorkers = 4

// IssueTask выдаёт одну награду из пакета
type IssueTask func(ctx context.Context, index int) (model.RewardEntry, error)

type issueResult struct {
	index int
	entry model.RewardEntry
	err   error
}

// BatchProcessor выполняет задачи выдачи параллельно воркерами и сливает результаты (fanIn)
type BatchProcessor struct {
	workers int
}

// NewBatchProcessor создает процессор с заданным числом воркеров
func NewBatchProcessor(workers int) *BatchProcessor {
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	return &BatchProcessor{workers: workers}
}

// Process выполняет count задач и возвращает результаты в порядке индексов.
// Ошибки всех неудачных задач объединяются через errors.Join
func (p *BatchProcessor) Process(ctx context.Context, count int, task IssueTask) ([]model.RewardEntry, error) {
	if count <= 0 {
		return []model.RewardEntry{}, nil
	}

	numWorkers := min(p.workers, count)

	indexes := make(chan int, count)
	go func() {
		defer close(indexes)
		for i := 0; i < count; i++ {
			indexes <- i
		}
	}()

	// Отдельный канал результатов на каждого воркера
	workerChannels := make([]chan issueResult, numWorkers)
	for i := range workerChannels {
		workerChannels[i] = make(chan issueResult, count/numWorkers+1)
	}

	for i := 0; i < numWorkers; i++ {
		go func(input <-chan int, output chan<- issueResult) {
			defer close(output)
			for index := range input {
				if err := ctx.Err(); err != nil {
					output <- issueResult{index: index, err: err}
					continue
				}
				entry, err := task(ctx, index)
				output <- issueResult{index: index, entry: entry, err: err}
			}
		}(indexes, workerChannels[i])
	}

	// FanIn: сливаем результаты всех воркеров в один канал
	merged := make(chan issueResult, count)
	go func() {
		defer close(merged)
		for _, workerChan := range workerChannels {
			for result := range workerChan {
				merged <- result
			}
		}
	}()

	entries := make([]model.RewardEntry, count)
	var errs []error
	for result := range merged {
		if result.err != nil {
			errs = append(errs, result.err)
			continue
		}
		entries[result.index] = result.entry
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return entries, nil
}
