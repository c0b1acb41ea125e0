package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetReward обрабатывает GET /api/rewards/{code}
func (h *Handler) GetReward(w http.ResponseWriter, r *http.Request) {
	entry, err := h.usecase.GetReward(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

// GetPublicReward обрабатывает публичный GET /r/{code}.
// Отдаёт только статус карточки: email клиента и выдавший сотрудник не раскрываются
func (h *Handler) GetPublicReward(w http.ResponseWriter, r *http.Request) {
	entry, err := h.usecase.GetReward(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entry.Public())
}

// RedeemReward обрабатывает POST /api/rewards/{code}/redeem
func (h *Handler) RedeemReward(w http.ResponseWriter, r *http.Request) {
	entry, err := h.usecase.RedeemReward(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}
