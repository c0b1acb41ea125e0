package service

import (
	"context"
	"fmt"

	"github.com/avc-dev/rewards/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultMaxAttempts число попыток генерации по умолчанию
const DefaultMaxAttempts = 3

const tracerName = "github.com/avc-dev/rewards/internal/service"

// UniqueCodeGenerator генерирует код и проверяет его уникальность по реестру
// с ограниченным числом попыток. Реестр только читается: вставку выполняет вызывающий
type UniqueCodeGenerator struct {
	registry  CodeRegistry
	generator CodeGenerator
	observer  GenerationObserver
	tracer    trace.Tracer
}

// Option настраивает UniqueCodeGenerator
type Option func(*UniqueCodeGenerator)

// WithCodeGenerator заменяет генератор случайных кодов
func WithCodeGenerator(generator CodeGenerator) Option {
	return func(g *UniqueCodeGenerator) {
		g.generator = generator
	}
}

// WithObserver подключает наблюдателя за коллизиями и ошибками реестра
func WithObserver(observer GenerationObserver) Option {
	return func(g *UniqueCodeGenerator) {
		g.observer = observer
	}
}

// WithTracer заменяет глобальный трейсер OpenTelemetry
func WithTracer(tracer trace.Tracer) Option {
	return func(g *UniqueCodeGenerator) {
		g.tracer = tracer
	}
}

// NewUniqueCodeGenerator создает генератор уникальных кодов поверх реестра
func NewUniqueCodeGenerator(registry CodeRegistry, opts ...Option) *UniqueCodeGenerator {
	g := &UniqueCodeGenerator{
		registry:  registry,
		generator: NewCodeGenerator(),
		observer:  NopObserver{},
		tracer:    otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GenerateUniqueCode делает до maxAttempts циклов "сгенерировать, проверить".
// Коллизия и ошибка реестра одинаково расходуют попытку, пауз между попытками нет.
// Единственная ошибка результата ErrGenerationExhausted; отменённый контекст
// тоже считается исчерпанием и дополнительно оборачивает ctx.Err()
func (g *UniqueCodeGenerator) GenerateUniqueCode(ctx context.Context, maxAttempts int) (model.Code, error) {
	ctx, span := g.tracer.Start(ctx, "GenerateUniqueCode",
		trace.WithAttributes(attribute.Int("rewards.max_attempts", maxAttempts)),
	)
	defer span.End()

	if maxAttempts <= 0 {
		return "", g.exhausted(ctx, span, 0, nil)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", g.exhausted(ctx, span, attempt, err)
		}

		code, err := g.generator.GenerateCode()
		if err != nil {
			g.observer.GenerateFailed(ctx, attempt, err)
			span.AddEvent("generate_failed", trace.WithAttributes(
				attribute.Int("rewards.attempt", attempt),
				attribute.String("error", err.Error()),
			))
			continue
		}

		exists, err := g.registry.Exists(ctx, code)
		switch {
		case err != nil:
			g.observer.LookupFailed(ctx, attempt, code, err)
			span.AddEvent("lookup_failed", trace.WithAttributes(
				attribute.Int("rewards.attempt", attempt),
				attribute.String("rewards.code", code.String()),
				attribute.String("error", err.Error()),
			))
		case exists:
			g.observer.Collision(ctx, attempt, code)
			span.AddEvent("collision", trace.WithAttributes(
				attribute.Int("rewards.attempt", attempt),
				attribute.String("rewards.code", code.String()),
			))
		default:
			span.SetAttributes(attribute.Int("rewards.attempts", attempt+1))
			return code, nil
		}
	}

	return "", g.exhausted(ctx, span, maxAttempts, nil)
}

func (g *UniqueCodeGenerator) exhausted(ctx context.Context, span trace.Span, attempts int, cause error) error {
	g.observer.Exhausted(ctx, attempts)

	err := fmt.Errorf("failed to generate unique code after %d attempts: %w", attempts, ErrGenerationExhausted)
	if cause != nil {
		err = fmt.Errorf("%w: %w", err, cause)
	}

	span.SetAttributes(attribute.Int("rewards.attempts", attempts))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
