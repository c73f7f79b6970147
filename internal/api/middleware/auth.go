// Package middleware HTTP-middleware сервиса: аутентификация и метрики.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fitbrawl/GMS-BookingService/internal/api/handlers"
)

type contextKey string

const (
	// userIDKey ключ контекста с ID аутентифицированного пользователя
	userIDKey contextKey = "userID"
	// isAdminKey ключ контекста с признаком администратора
	isAdminKey contextKey = "isAdmin"

	headerUserID = "X-User-ID"
	headerRole   = "X-User-Role"

	roleAdmin = "admin"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

// Auth проверяет наличие заголовка X-User-ID и кладет ID пользователя в контекст
// Аутентификацию выполняет API-гейтвей, сервис доверяет его заголовкам
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawUserID := r.Header.Get(headerUserID)
		if rawUserID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, isAdminKey, r.Header.Get(headerRole) == roleAdmin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext извлекает ID пользователя из контекста
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsAdminFromContext извлекает признак администратора из контекста
func IsAdminFromContext(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(isAdminKey).(bool)
	return isAdmin
}
