package app

import (
	"context"
	"testing"

	"github.com/avc-dev/rewards/internal/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestApp_Close(t *testing.T) {
	t.Run("database pool exists", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		mockDB.EXPECT().Close().Once()

		app := &App{
			logger: zap.NewNop(),
			dbPool: mockDB,
		}

		app.Close()
	})

	t.Run("database pool is nil", func(t *testing.T) {
		app := &App{
			logger: zap.NewNop(),
			dbPool: nil,
		}

		assert.NotPanics(t, app.Close)
	})

	t.Run("tracing is shut down", func(t *testing.T) {
		called := false
		app := &App{
			logger: zap.NewNop(),
			traceShutdown: func(context.Context) error {
				called = true
				return nil
			},
		}

		app.Close()

		assert.True(t, called)
	})
}
