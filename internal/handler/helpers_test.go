package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/rewards/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// newStaffRequest создает запрос от аутентифицированного сотрудника
func newStaffRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.StaffIDContextKey, "staff-1")
	return req.WithContext(ctx)
}

// withCodeParam добавляет {code} в контекст маршрута chi
func withCodeParam(t *testing.T, req *http.Request, code string) *http.Request {
	t.Helper()

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("code", code)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
