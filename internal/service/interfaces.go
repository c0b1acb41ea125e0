package service

import (
	"context"

	"github.com/avc-dev/rewards/internal/model"
)

//go:generate mockery --name CodeGenerator
//go:generate mockery --name RewardRepository
//go:generate mockery --name UniqueCodeSource

// CodeGenerator синтезирует случайный код
type CodeGenerator interface {
	GenerateCode() (model.Code, error)
}

// CodeRegistry проверяет код по реестру выданных кодов (точное совпадение, без побочных эффектов)
type CodeRegistry interface {
	Exists(ctx context.Context, code model.Code) (bool, error)
}

// RewardRepository реестр кодов с атомарной вставкой
type RewardRepository interface {
	CodeRegistry
	// Insert возвращает model.ErrAlreadyExists, если код уже занят
	Insert(ctx context.Context, entry model.RewardEntry) error
}

// UniqueCodeSource выдаёт код, отсутствующий в реестре на момент проверки
type UniqueCodeSource interface {
	GenerateUniqueCode(ctx context.Context, maxAttempts int) (model.Code, error)
}
