package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

// Заголовки, которые проставляет внешний identity-провайдер после
// аутентификации. Сам сервис токены не проверяет.
const (
	headerUserID = "X-User-ID"
	headerRole   = "X-User-Role"
)

const msgMissingUserID = "требуется заголовок X-User-ID"

// Auth проверяет наличие идентификатора пользователя и кладет его
// вместе с ролью в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		role := domain.RoleUser
		if domain.Role(r.Header.Get(headerRole)) == domain.RoleAdmin {
			role = domain.RoleAdmin
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetRole извлекает роль пользователя из контекста запроса
func GetRole(ctx context.Context) domain.Role {
	if role, ok := ctx.Value(roleKey).(domain.Role); ok {
		return role
	}
	return domain.RoleUser
}
