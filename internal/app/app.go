package app

import (
	"context"

	"github.com/avc-dev/rewards/internal/config"
	"github.com/avc-dev/rewards/internal/config/db"
	"github.com/avc-dev/rewards/internal/handler"
	"go.uber.org/zap"
)

// App представляет сервис наград ресторана
type App struct {
	config        *config.Config
	logger        *zap.Logger
	handler       *handler.Handler
	dbPool        db.Database
	traceShutdown func(ctx context.Context) error
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	traceShutdown, err := initTracing(cfg.TraceOutput)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	h, dbPool, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		traceShutdown(ctx)
		logger.Sync()
		return nil, err
	}

	return &App{
		config:        cfg,
		logger:        logger,
		handler:       h,
		dbPool:        dbPool,
		traceShutdown: traceShutdown,
	}, nil
}

// Run запускает приложение и блокируется до остановки сервера
func Run(ctx context.Context) error {
	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start(ctx)
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
	}

	if a.traceShutdown != nil {
		if err := a.traceShutdown(context.Background()); err != nil {
			a.logger.Warn("failed to shutdown tracing", zap.Error(err))
		}
	}
}
