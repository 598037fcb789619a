package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SFB-ReservationBroker/pkg/requestid"
)

// RequestID присваивает каждому запросу сквозной идентификатор.
// Пришедший X-Request-ID сохраняется, отсутствующий - генерируется.
// Идентификатор кладется в контекст и возвращается в заголовке ответа;
// клиент Data Layer пробрасывает его дальше
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestid.Header)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestid.Header, id)
		ctx := requestid.NewContext(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
