package service

import (
	"context"

	"github.com/avc-dev/rewards/internal/model"
	"go.uber.org/zap"
)

// GenerationObserver получает диагностические события генератора кодов
type GenerationObserver interface {
	Collision(ctx context.Context, attempt int, code model.Code)
	LookupFailed(ctx context.Context, attempt int, code model.Code, err error)
	GenerateFailed(ctx context.Context, attempt int, err error)
	Exhausted(ctx context.Context, attempts int)
}

// NopObserver игнорирует все события
type NopObserver struct{}

func (NopObserver) Collision(context.Context, int, model.Code)           {}
func (NopObserver) LookupFailed(context.Context, int, model.Code, error) {}
func (NopObserver) GenerateFailed(context.Context, int, error)           {}
func (NopObserver) Exhausted(context.Context, int)                       {}

// LogObserver пишет события генератора в zap
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver создает наблюдателя, который логирует события генератора
func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Collision(_ context.Context, attempt int, code model.Code) {
	o.logger.Warn("reward code collision",
		zap.Int("attempt", attempt),
		zap.String("code", code.String()),
	)
}

func (o *LogObserver) LookupFailed(_ context.Context, attempt int, code model.Code, err error) {
	o.logger.Warn("reward code lookup failed",
		zap.Int("attempt", attempt),
		zap.String("code", code.String()),
		zap.Error(err),
	)
}

func (o *LogObserver) GenerateFailed(_ context.Context, attempt int, err error) {
	o.logger.Error("reward code synthesis failed",
		zap.Int("attempt", attempt),
		zap.Error(err),
	)
}

func (o *LogObserver) Exhausted(_ context.Context, attempts int) {
	o.logger.Error("reward code generation exhausted",
		zap.Int("attempts", attempts),
	)
}
