package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// UserIDHeader заголовок с идентификатором аутентифицированного пользователя
// Аутентификация и выпуск токенов выполняются внешним сервисом; сюда
// личность действующего лица приходит уже проверенной
const UserIDHeader = "X-User-ID"

type userIDKey struct{}

// Auth извлекает идентификатор действующего лица из заголовка X-User-ID
// и кладет его в контекст запроса. Запрос без корректного заголовка
// отклоняется с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"ok":      false,
				"message": "требуется аутентификация",
			})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID достает идентификатор действующего лица из контекста
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
