package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping проверяет подключение к базе данных
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		h.logger.Debug("database is not configured")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("database ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
