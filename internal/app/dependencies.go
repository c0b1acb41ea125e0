package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/rewards/internal/config"
	"github.com/avc-dev/rewards/internal/config/db"
	"github.com/avc-dev/rewards/internal/handler"
	"github.com/avc-dev/rewards/internal/migrations"
	"github.com/avc-dev/rewards/internal/repository"
	"github.com/avc-dev/rewards/internal/service"
	"github.com/avc-dev/rewards/internal/store"
	"github.com/avc-dev/rewards/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения.
// Возвращаемая БД равна nil, если DATABASE_DSN не задан
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*handler.Handler, db.Database, error) {
	storage, dbAdapter, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)
	codes := service.NewUniqueCodeGenerator(repo,
		service.WithObserver(service.NewLogObserver(logger)),
	)
	rewardService := service.NewRewardService(repo, codes, cfg)
	rewardUsecase := usecase.NewRewardUsecase(repo, rewardService, cfg, logger)

	// Интерфейс с nil-указателем внутри не равен nil, поэтому возвращаем явный nil
	if dbAdapter == nil {
		return handler.New(rewardUsecase, logger, nil), nil, nil
	}
	return handler.New(rewardUsecase, logger, dbAdapter), dbAdapter, nil
}

// initStorage выбирает хранилище: PostgreSQL, затем файл, затем память
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, *db.DBAdapter, error) {
	if cfg.DatabaseDSN != "" {
		dbAdapter, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := migrations.NewMigrator(dbAdapter.DB(), logger).RunUp(); err != nil {
			dbAdapter.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		logger.Info("Using database storage")
		return store.NewDatabaseStore(dbAdapter.Pool), dbAdapter, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil, nil
}
