package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// StaffIDKey тип ключа контекста для идентификатора сотрудника
type StaffIDKey string

const (
	// StaffIDContextKey ключ контекста с идентификатором сотрудника
	StaffIDContextKey StaffIDKey = "staff_id"
)

// StaffResolver извлекает идентификатор сотрудника из куки или выдаёт новый
type StaffResolver interface {
	GetOrCreateStaffFromCookie(r *http.Request, w http.ResponseWriter) (string, error)
}

// AuthMiddleware помечает запросы сессией сотрудника.
// Это не проверка прав: любой клиент без куки получает новый staff_id,
// поэтому /api/rewards закрывается только на уровне сети заведения
type AuthMiddleware struct {
	resolver StaffResolver
	logger   *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(resolver StaffResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// Authenticate добавляет staff_id сессии в контекст запроса, при необходимости выдавая новую куку
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID, err := am.resolver.GetOrCreateStaffFromCookie(r, w)
		if err != nil {
			am.logger.Error("failed to resolve staff session", zap.Error(err))
			http.Error(w, "Session failed", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), StaffIDContextKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffIDFromContext извлекает staff_id из контекста запроса
func GetStaffIDFromContext(ctx context.Context) (string, bool) {
	staffID, ok := ctx.Value(StaffIDContextKey).(string)
	return staffID, ok && staffID != ""
}
