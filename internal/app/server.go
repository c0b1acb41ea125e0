package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// start запускает HTTP сервер и корректно останавливает его при отмене ctx
func (a *App) start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.ServerAddress.String(),
		Handler: newRouter(a.handler, a.logger, a.config),
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", zap.String("address", server.Addr))
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server", zap.Duration("timeout", a.config.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	a.logger.Info("Server stopped")
	return nil
}
