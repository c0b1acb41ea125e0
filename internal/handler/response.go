package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	errInternal    = errors.New("internal server error")
	errInvalidJSON = errors.New("invalid JSON body")
	errNoStaff     = errors.New("staff is not authenticated")
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError отдаёт только текст sentinel-ошибки, без деталей хранилища
func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, ErrorResponse{Error: err.Error()})
}
