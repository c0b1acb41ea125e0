package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serviceName   = "rewards"
	traceToStdout = "stdout"
)

// initTracing регистрирует глобальный TracerProvider со stdout-экспортером.
// Пустой output оставляет трейсинг выключенным (no-op провайдер otel)
func initTracing(output string) (func(ctx context.Context) error, error) {
	if output == "" {
		return func(context.Context) error { return nil }, nil
	}

	var w io.Writer = os.Stdout
	var file *os.File
	if output != traceToStdout {
		f, err := os.Create(output)
		if err != nil {
			return nil, fmt.Errorf("failed to create trace output: %w", err)
		}
		w, file = f, f
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return func(ctx context.Context) error {
		err := provider.Shutdown(ctx)
		if file != nil {
			err = errors.Join(err, file.Close())
		}
		return err
	}, nil
}
