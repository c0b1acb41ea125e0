package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// StaffCookieName имя куки с JWT сотрудника
	StaffCookieName = "staff_token"

	tokenTTL = 24 * time.Hour
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrStaffIDMissing = errors.New("staff_id not found in token")
)

// AuthService выдаёт и проверяет JWT сессии сотрудника. Кука только связывает выданные
// награды с устройством, личность сотрудника не проверяется
type AuthService struct {
	jwtSecret []byte
	now       func() time.Time
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// GenerateStaffID генерирует идентификатор сотрудника
func (a *AuthService) GenerateStaffID() string {
	return uuid.New().String()
}

// GenerateJWT создает JWT токен для сотрудника
func (a *AuthService) GenerateJWT(staffID string) (string, error) {
	now := a.now()
	claims := jwt.MapClaims{
		"staff_id": staffID,
		"exp":      now.Add(tokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateJWT проверяет JWT токен и извлекает staff_id
func (a *AuthService) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	staffID, ok := claims["staff_id"].(string)
	if !ok || staffID == "" {
		return "", ErrStaffIDMissing
	}

	return staffID, nil
}

// GetOrCreateStaffFromCookie извлекает staff_id из куки или выдаёт новый идентификатор
func (a *AuthService) GetOrCreateStaffFromCookie(r *http.Request, w http.ResponseWriter) (string, error) {
	if cookie, err := r.Cookie(StaffCookieName); err == nil && cookie.Value != "" {
		if staffID, err := a.ValidateJWT(cookie.Value); err == nil {
			return staffID, nil
		}
	}

	// Куки нет или токен недействителен: выдаём новый идентификатор
	staffID := a.GenerateStaffID()
	token, err := a.GenerateJWT(staffID)
	if err != nil {
		return "", fmt.Errorf("failed to generate JWT: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     StaffCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(tokenTTL.Seconds()),
	})

	return staffID, nil
}
