package app

import (
	"net/http"

	"github.com/avc-dev/rewards/internal/config"
	"github.com/avc-dev/rewards/internal/handler"
	"github.com/avc-dev/rewards/internal/middleware"
	"github.com/avc-dev/rewards/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Gzip(logger))

	authMiddleware := middleware.NewAuthMiddleware(service.NewAuthService(cfg.JWTSecret), logger)

	r.Get("/ping", h.Ping)

	// Публичная проверка кода с печатной карточки
	r.Get("/r/{code}", h.GetPublicReward)

	r.Route("/api/rewards", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/", h.IssueReward)
		r.Get("/", h.ListRewards)
		r.Post("/batch", h.IssueRewardsBatch)
		r.Get("/{code}", h.GetReward)
		r.Post("/{code}/redeem", h.RedeemReward)
	})

	return r
}
